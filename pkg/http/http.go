package http

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/goto/workforce/pkg/opentelemetry/otelhttpclient"
	defaults "github.com/mcuadros/go-defaults"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const (
	AuthTypeBasic         = "basic"
	AuthTypeAPIKey        = "api_key"
	AuthTypeBearer        = "bearer"
	AuthTypeGoogleIDToken = "google_idtoken"
	AuthTypeGoogleOAuth2  = "google_oauth2"
)

type HTTPAuthConfig struct {
	Type string `mapstructure:"type" json:"type" yaml:"type" validate:"required,oneof=basic api_key bearer google_idtoken google_oauth2"`

	// basic auth
	Username string `mapstructure:"username,omitempty" json:"username,omitempty" yaml:"username,omitempty" validate:"required_if=Type basic"`
	Password string `mapstructure:"password,omitempty" json:"password,omitempty" yaml:"password,omitempty" validate:"required_if=Type basic"`

	// api key
	In    string `mapstructure:"in,omitempty" json:"in,omitempty" yaml:"in,omitempty" validate:"required_if=Type api_key,omitempty,oneof=query header"`
	Key   string `mapstructure:"key,omitempty" json:"key,omitempty" yaml:"key,omitempty" validate:"required_if=Type api_key"`
	Value string `mapstructure:"value,omitempty" json:"value,omitempty" yaml:"value,omitempty" validate:"required_if=Type api_key"`

	// bearer
	Token string `mapstructure:"token,omitempty" json:"token,omitempty" yaml:"token,omitempty" validate:"required_if=Type bearer"`

	// google_idtoken
	Audience string `mapstructure:"audience,omitempty" json:"audience,omitempty" yaml:"audience,omitempty" validate:"required_if=Type google_idtoken"`
	// CredentialsJSONBase64 accept a base64 encoded JSON stringified credentials
	CredentialsJSONBase64 string `mapstructure:"credentials_json_base64,omitempty" json:"credentials_json_base64,omitempty" yaml:"credentials_json_base64,omitempty"`
}

// HTTPClientConfig describes how to reach the HR backend
type HTTPClientConfig struct {
	URL     string            `mapstructure:"url" json:"url" yaml:"url" validate:"required,url"`
	Headers map[string]string `mapstructure:"headers,omitempty" json:"headers,omitempty" yaml:"headers,omitempty"`
	Auth    *HTTPAuthConfig   `mapstructure:"auth,omitempty" json:"auth,omitempty" yaml:"auth,omitempty" validate:"omitempty,dive"`
	Timeout time.Duration     `mapstructure:"timeout" json:"timeout" yaml:"timeout" default:"30s"`
	// TraceName names the spans of outgoing requests
	TraceName  string       `mapstructure:"trace_name" json:"trace_name" yaml:"trace_name" default:"hrms"`
	HTTPClient *http.Client `mapstructure:"-" json:"-" yaml:"-"`
}

// HTTPClient sends requests to a single base URL with the configured headers and credentials
type HTTPClient struct {
	httpClient *http.Client
	config     *HTTPClientConfig
	url        string
}

type HttpClientCreatorStruct struct{}

type HttpClientCreator interface {
	GetHttpClientForGoogleOAuth2(ctx context.Context, creds []byte) (*http.Client, error)
	GetHttpClientForGoogleIdToken(ctx context.Context, creds []byte, audience string) (*http.Client, error)
}

func NewHTTPClient(config *HTTPClientConfig, clientCreator HttpClientCreator) (*HTTPClient, error) {
	defaults.SetDefaults(config)
	if err := validator.New().Struct(config); err != nil {
		return nil, err
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = otelhttpclient.New(config.TraceName, &http.Client{Timeout: config.Timeout})
	}

	if config.Auth != nil && (config.Auth.Type == AuthTypeGoogleIDToken || config.Auth.Type == AuthTypeGoogleOAuth2) {
		if clientCreator == nil {
			clientCreator = &HttpClientCreatorStruct{}
		}
		if config.Auth.CredentialsJSONBase64 == "" {
			return nil, fmt.Errorf("missing credentials for google_idtoken or google_oauth2 auth")
		}
		creds, err := decodeCredentials(config.Auth.CredentialsJSONBase64)
		if err != nil {
			return nil, err
		}

		ctx := context.Background()
		if config.Auth.Type == AuthTypeGoogleIDToken {
			httpClient, err = clientCreator.GetHttpClientForGoogleIdToken(ctx, creds, config.Auth.Audience)
		} else {
			httpClient, err = clientCreator.GetHttpClientForGoogleOAuth2(ctx, creds)
		}
		if err != nil {
			return nil, err
		}
	}

	return &HTTPClient{
		httpClient: httpClient,
		config:     config,
		url:        config.URL,
	}, nil
}

func (c *HTTPClient) BaseURL() string {
	return c.url
}

func (c *HttpClientCreatorStruct) GetHttpClientForGoogleOAuth2(ctx context.Context, creds []byte) (*http.Client, error) {
	credsConfig, err := google.CredentialsFromJSON(ctx, creds, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, credsConfig.TokenSource), nil
}

func (c *HttpClientCreatorStruct) GetHttpClientForGoogleIdToken(ctx context.Context, creds []byte, audience string) (*http.Client, error) {
	ts, err := idtoken.NewTokenSource(ctx, audience, idtoken.WithCredentialsJSON(creds))
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, ts), nil
}

func decodeCredentials(encodedCreds string) ([]byte, error) {
	v, err := base64.StdEncoding.DecodeString(encodedCreds)
	if err != nil {
		return nil, fmt.Errorf("decoding credentials_json_base64: %w", err)
	}
	return v, nil
}

func (c *HTTPClient) setAuth(req *http.Request) {
	if c.config.Auth == nil {
		return
	}
	switch c.config.Auth.Type {
	case AuthTypeBasic:
		req.SetBasicAuth(c.config.Auth.Username, c.config.Auth.Password)
	case AuthTypeAPIKey:
		switch c.config.Auth.In {
		case "query":
			q := req.URL.Query()
			q.Add(c.config.Auth.Key, c.config.Auth.Value)
			req.URL.RawQuery = q.Encode()
		case "header":
			req.Header.Set(c.config.Auth.Key, c.config.Auth.Value)
		}
	case AuthTypeBearer:
		req.Header.Set("Authorization", "Bearer "+c.config.Auth.Token)
	}
}

// Do sends req after applying the configured headers and credentials.
// Headers already present on req are kept.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	for k, v := range c.config.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
	c.setAuth(req)

	return c.httpClient.Do(req)
}
