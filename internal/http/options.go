package http

import (
	"net/http"
	"time"

	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger xminds.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// WithTimeout sets a per-request timeout. The underlying HTTP client is
// copied first so a caller-supplied client is left untouched.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout <= 0 {
			return
		}

		httpClient := *c.httpClient.HTTPClient
		httpClient.Timeout = timeout
		c.httpClient.HTTPClient = &httpClient
	}
}

// WithToken binds the client to an access token at construction.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}
