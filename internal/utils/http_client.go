// Package utils provides general-purpose helper utilities shared by both
// binaries: the resty-based HTTP client, JSON response writing and trace id
// generation.
package utils

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// The same client serves short JSON requests and long-lived event streams,
// so no request timeout is configured on it; callers bound requests through
// their context instead.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithUserAgent("AdminAssistant", "1.0.0"))
//	resp, err := client.R().SetContext(ctx).Get("http://localhost:3000/sse")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption customises a client built by NewHTTPClient.
type HTTPClientOption func(*resty.Client)

// WithUserAgent sets the User-Agent header to "<name>/<version>".
func WithUserAgent(name, version string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetHeader("User-Agent", fmt.Sprintf("%s/%s", name, version))
	}
}

// WithHeader sets a header sent with every request.
func WithHeader(key, value string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetHeader(key, value)
	}
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New()
	for _, opt := range opts {
		opt(c)
	}
	return &HTTPClient{Client: c}
}

// StdClient returns a plain *http.Client for libraries that take one, such as
// the MCP SDK transports. It shares the resty client's transport and sends
// the headers configured by the options on every request that does not set
// them itself.
func (c *HTTPClient) StdClient() *http.Client {
	std := *c.GetClient()
	base := std.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	std.Transport = &headerTransport{base: base, header: c.Header.Clone()}
	return &std
}

type headerTransport struct {
	base   http.RoundTripper
	header http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var cloned bool
	for key, values := range t.header {
		if req.Header.Get(key) != "" {
			continue
		}
		// RoundTrip must not modify the caller's request
		if !cloned {
			req = req.Clone(req.Context())
			cloned = true
		}
		req.Header[key] = append([]string(nil), values...)
	}
	return t.base.RoundTrip(req)
}
