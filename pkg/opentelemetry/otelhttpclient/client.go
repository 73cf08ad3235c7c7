package otelhttpclient

import (
	"net/http"
)

// New returns a copy of client whose requests are traced as name.
// The given client is left untouched; nil starts from a zero http.Client.
func New(name string, client *http.Client) *http.Client {
	c := &http.Client{}
	if client != nil {
		*c = *client
	}
	c.Transport = NewHTTPTransport(c.Transport, name)
	return c
}
