package hrms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goto/workforce/domain"
	"github.com/mitchellh/mapstructure"
)

// Client talks to the HR backend REST API
type Client struct {
	baseURL *url.URL
	options *options
}

func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	client := &Client{
		baseURL: u,
		options: &options{
			httpClient:   http.DefaultClient,
			viewerHeader: DefaultViewerHeader,
		},
	}
	for _, o := range opts {
		o(client.options)
	}
	return client, nil
}

func (c *Client) ListTeamRequests(ctx context.Context, viewer domain.Viewer) ([]domain.RawRecord, error) {
	return c.list(ctx, viewer, pathTeamRequests, nil)
}

func (c *Client) ListLeaveTeamHistory(ctx context.Context, viewer domain.Viewer) ([]domain.RawRecord, error) {
	return c.list(ctx, viewer, pathLeaveTeamHistory, nil)
}

func (c *Client) ListSubstitutePending(ctx context.Context, viewer domain.Viewer) (*domain.SubstitutePendingPayload, error) {
	var body map[string]interface{}
	if err := c.get(ctx, viewer, pathSubstitutePending, nil, &body); err != nil {
		return nil, err
	}

	payload := new(domain.SubstitutePendingPayload)
	if err := mapstructure.Decode(body, payload); err != nil {
		return nil, fmt.Errorf("decoding substitute pending requests: %w", err)
	}
	return payload, nil
}

func (c *Client) GetSubordinates(ctx context.Context, viewer domain.Viewer) (*domain.Hierarchy, error) {
	var body subordinatesResponse
	if err := c.get(ctx, viewer, pathSubordinates, nil, &body); err != nil {
		return nil, err
	}

	h := domain.NewHierarchy(viewer.ID)
	for _, id := range body.Direct {
		if s := idString(id); s != "" {
			h.Direct[s] = true
			h.Extended[s] = true
		}
	}
	for _, id := range body.Indirect {
		if s := idString(id); s != "" {
			h.Extended[s] = true
		}
	}
	return h, nil
}

// GetRequest reads a single request from its own collection
func (c *Client) GetRequest(ctx context.Context, viewer domain.Viewer, key domain.RequestKey) (domain.RawRecord, error) {
	path := fmt.Sprintf("%s/%s/", strings.TrimPrefix(key.Type.ResourcePath(), "/"), url.PathEscape(key.ID))

	var body domain.RawRecord
	if err := c.get(ctx, viewer, path, nil, &body); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) ListDecisionHistory(ctx context.Context, viewer domain.Viewer, key domain.HistoryKey) ([]domain.RawRecord, error) {
	q := url.Values{}
	q.Set("content_type", key.ContentType)
	q.Set("object_id", key.ObjectID)
	return c.list(ctx, viewer, pathDecisionHistory, q)
}

// Dispatch sends one mutating call. It is never retried.
func (c *Client) Dispatch(ctx context.Context, viewer domain.Viewer, call *domain.BackendCall) (map[string]interface{}, error) {
	r, err := c.newRequest(ctx, viewer, call.Method, strings.TrimPrefix(call.Path, "/"), call.Body)
	if err != nil {
		return nil, err
	}

	res, err := c.options.httpClient.Do(r)
	if err != nil {
		return nil, err
	}

	var body map[string]interface{}
	if err := parseResponseBody(res, &body); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) list(ctx context.Context, viewer domain.Viewer, path string, query url.Values) ([]domain.RawRecord, error) {
	var raw json.RawMessage
	if err := c.get(ctx, viewer, path, query, &raw); err != nil {
		return nil, err
	}
	return decodeList(raw)
}

func (c *Client) get(ctx context.Context, viewer domain.Viewer, path string, query url.Values, v interface{}) error {
	r, err := c.newRequest(ctx, viewer, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if query != nil {
		r.URL.RawQuery = query.Encode()
	}

	res, err := c.options.httpClient.Do(r)
	if err != nil {
		return err
	}
	return parseResponseBody(res, v)
}

func (c *Client) newRequest(ctx context.Context, viewer domain.Viewer, method, path string, body interface{}) (*http.Request, error) {
	u, err := c.baseURL.Parse(path)
	if err != nil {
		return nil, err
	}

	var reqBody io.ReadWriter
	if body != nil {
		reqBody = new(bytes.Buffer)
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if viewer.ID != "" && c.options.viewerHeader != "" {
		req.Header.Set(c.options.viewerHeader, viewer.ID)
	}

	return req, nil
}

func parseResponseBody(res *http.Response, v interface{}) error {
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return newBackendError(res)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

// newBackendError extracts the message as error, then detail, then a generic text
func newBackendError(res *http.Response) *domain.BackendError {
	be := &domain.BackendError{StatusCode: res.StatusCode}

	var body errorResponse
	if data, err := io.ReadAll(res.Body); err == nil && json.Unmarshal(data, &body) == nil {
		be.Message = messageString(body.Error)
		if be.Message == "" {
			be.Message = messageString(body.Detail)
		}
	}
	if be.Message == "" {
		be.Message = fmt.Sprintf("request failed with status %d", res.StatusCode)
	}
	return be
}

func decodeList(raw json.RawMessage) ([]domain.RawRecord, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []domain.RawRecord{}, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	if trimmed[0] == '[' {
		var records []domain.RawRecord
		if err := decoder.Decode(&records); err != nil {
			return nil, fmt.Errorf("decoding list: %w", err)
		}
		return records, nil
	}

	var envelope listEnvelope
	if err := decoder.Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding list: %w", err)
	}
	if envelope.Results != nil {
		return envelope.Results, nil
	}
	if envelope.Data != nil {
		return envelope.Data, nil
	}
	return []domain.RawRecord{}, nil
}

func messageString(v interface{}) string {
	switch m := v.(type) {
	case nil:
		return ""
	case string:
		return m
	case []interface{}:
		parts := make([]string, 0, len(m))
		for _, p := range m {
			if s := messageString(p); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprint(m)
	}
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	case float64:
		return fmt.Sprintf("%.0f", id)
	default:
		return ""
	}
}
