package otelhttpclient

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewHTTPTransport wraps base with client spans and metrics named after name.
// A nil base uses http.DefaultTransport.
func NewHTTPTransport(base http.RoundTripper, name string) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return otelhttp.NewTransport(base,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return fmt.Sprintf("%s %s %s", name, r.Method, r.URL.Path)
		}),
	)
}
