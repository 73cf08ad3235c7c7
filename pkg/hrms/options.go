package hrms

import (
	"net/http"
)

// Doer sends a prepared request. *http.Client and the configured pkg/http client both satisfy it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type options struct {
	httpClient   Doer
	viewerHeader string
}

type ClientOption func(*options)

func WithHTTPClient(httpClient Doer) ClientOption {
	return func(opts *options) {
		opts.httpClient = httpClient
	}
}

// WithViewerHeader sets the header carrying the acting viewer's id on every call
func WithViewerHeader(name string) ClientOption {
	return func(opts *options) {
		opts.viewerHeader = name
	}
}
