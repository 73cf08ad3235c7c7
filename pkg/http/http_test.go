package http

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, method, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), method, url, nil)
	require.NoError(t, err)
	return req
}

func TestDoWithQueryAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test_value", r.URL.Query().Get("test_key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "success"}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(&HTTPClientConfig{
		URL: server.URL,
		Auth: &HTTPAuthConfig{
			Type:  AuthTypeAPIKey,
			In:    "query",
			Key:   "test_key",
			Value: "test_value",
		},
	}, nil)
	require.NoError(t, err)

	resp, err := client.Do(newRequest(t, http.MethodGet, server.URL+"/team-requests/"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, `{"message": "success"}`, string(body))
}

func TestDoWithHeaderAPIKeyAndStaticHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test_value", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "console", r.Header.Get("X-Client"))
		assert.Equal(t, "override", r.Header.Get("X-Per-Request"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := NewHTTPClient(&HTTPClientConfig{
		URL: server.URL,
		Headers: map[string]string{
			"X-Client":      "console",
			"X-Per-Request": "static",
		},
		Auth: &HTTPAuthConfig{
			Type:  AuthTypeAPIKey,
			In:    "header",
			Key:   "X-Api-Key",
			Value: "test_value",
		},
	}, nil)
	require.NoError(t, err)

	req := newRequest(t, http.MethodPost, server.URL)
	req.Header.Set("X-Per-Request", "override")
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestDoWithBasicAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "test", username)
		assert.Equal(t, "secret", password)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewHTTPClient(&HTTPClientConfig{
		URL:  server.URL,
		Auth: &HTTPAuthConfig{Type: AuthTypeBasic, Username: "test", Password: "secret"},
	}, nil)
	require.NoError(t, err)

	resp, err := client.Do(newRequest(t, http.MethodGet, server.URL))
	require.NoError(t, err)
	resp.Body.Close()
}

func TestDoWithBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewHTTPClient(&HTTPClientConfig{
		URL:  server.URL,
		Auth: &HTTPAuthConfig{Type: AuthTypeBearer, Token: "test_token"},
	}, nil)
	require.NoError(t, err)

	resp, err := client.Do(newRequest(t, http.MethodGet, server.URL))
	require.NoError(t, err)
	resp.Body.Close()
}

func TestNewHTTPClient_Defaults(t *testing.T) {
	config := &HTTPClientConfig{URL: "https://hr.example.com/api"}

	client, err := NewHTTPClient(config, nil)

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Equal(t, "hrms", config.TraceName)
	assert.Equal(t, "https://hr.example.com/api", client.BaseURL())
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestNewHTTPClient_InvalidConfig(t *testing.T) {
	t.Run("missing url", func(t *testing.T) {
		_, err := NewHTTPClient(&HTTPClientConfig{}, nil)
		assert.Error(t, err)
	})

	t.Run("bearer without token", func(t *testing.T) {
		_, err := NewHTTPClient(&HTTPClientConfig{URL: "https://example.com", Auth: &HTTPAuthConfig{Type: AuthTypeBearer}}, nil)
		assert.Error(t, err)
	})
}

type MockHttpClientCreator struct {
	mock.Mock
}

func (m *MockHttpClientCreator) GetHttpClientForGoogleOAuth2(ctx context.Context, creds []byte) (*http.Client, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Client), args.Error(1)
}

func (m *MockHttpClientCreator) GetHttpClientForGoogleIdToken(ctx context.Context, creds []byte, audience string) (*http.Client, error) {
	args := m.Called(ctx, creds, audience)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Client), args.Error(1)
}

func TestNewHTTPClient_GoogleOAuth2(t *testing.T) {
	credsJSON := `{"type":"service_account"}`
	encodedCreds := base64.StdEncoding.EncodeToString([]byte(credsJSON))
	expectedClient := &http.Client{}

	mockCreator := new(MockHttpClientCreator)
	mockCreator.On("GetHttpClientForGoogleOAuth2", mock.Anything, []byte(credsJSON)).Return(expectedClient, nil)

	client, err := NewHTTPClient(&HTTPClientConfig{
		URL: "https://example.com",
		Auth: &HTTPAuthConfig{
			Type:                  AuthTypeGoogleOAuth2,
			CredentialsJSONBase64: encodedCreds,
		},
	}, mockCreator)

	assert.NoError(t, err)
	assert.Equal(t, expectedClient, client.httpClient)
	mockCreator.AssertExpectations(t)
}

func TestNewHTTPClient_GoogleOAuth2WithEmptyCredentialJson(t *testing.T) {
	mockCreator := new(MockHttpClientCreator)

	client, err := NewHTTPClient(&HTTPClientConfig{
		URL:  "https://example.com",
		Auth: &HTTPAuthConfig{Type: AuthTypeGoogleOAuth2},
	}, mockCreator)

	assert.EqualError(t, err, "missing credentials for google_idtoken or google_oauth2 auth")
	assert.Nil(t, client)
	mockCreator.AssertExpectations(t)
}

func TestNewHTTPClient_GoogleIdToken(t *testing.T) {
	credsJSON := `{"type":"service_account"}`
	encodedCreds := base64.StdEncoding.EncodeToString([]byte(credsJSON))
	expectedClient := &http.Client{}

	mockCreator := new(MockHttpClientCreator)
	mockCreator.On("GetHttpClientForGoogleIdToken", mock.Anything, []byte(credsJSON), "audience").Return(expectedClient, nil)

	client, err := NewHTTPClient(&HTTPClientConfig{
		URL: "https://example.com",
		Auth: &HTTPAuthConfig{
			Type:                  AuthTypeGoogleIDToken,
			CredentialsJSONBase64: encodedCreds,
			Audience:              "audience",
		},
	}, mockCreator)

	assert.NoError(t, err)
	assert.Equal(t, expectedClient, client.httpClient)
	mockCreator.AssertExpectations(t)
}

func TestNewHTTPClient_GoogleIdTokenErrorScenario(t *testing.T) {
	credsJSON := `{"type":"service_account"}`
	encodedCreds := base64.StdEncoding.EncodeToString([]byte(credsJSON))

	mockCreator := new(MockHttpClientCreator)
	mockCreator.On("GetHttpClientForGoogleIdToken", mock.Anything, []byte(credsJSON), "audience").Return(nil, fmt.Errorf("error creating http client for google_idtoken"))

	_, err := NewHTTPClient(&HTTPClientConfig{
		URL: "https://example.com",
		Auth: &HTTPAuthConfig{
			Type:                  AuthTypeGoogleIDToken,
			CredentialsJSONBase64: encodedCreds,
			Audience:              "audience",
		},
	}, mockCreator)

	assert.EqualError(t, err, "error creating http client for google_idtoken")
	mockCreator.AssertExpectations(t)
}

func TestNewHTTPClient_GoogleOAuth2ErrorScenario(t *testing.T) {
	credsJSON := `{"type":"service_account"}`
	encodedCreds := base64.StdEncoding.EncodeToString([]byte(credsJSON))

	mockCreator := new(MockHttpClientCreator)
	mockCreator.On("GetHttpClientForGoogleOAuth2", mock.Anything, []byte(credsJSON)).Return(nil, fmt.Errorf("error creating http client for google_oauth2"))

	_, err := NewHTTPClient(&HTTPClientConfig{
		URL: "https://example.com",
		Auth: &HTTPAuthConfig{
			Type:                  AuthTypeGoogleOAuth2,
			CredentialsJSONBase64: encodedCreds,
		},
	}, mockCreator)

	assert.EqualError(t, err, "error creating http client for google_oauth2")
	mockCreator.AssertExpectations(t)
}
