package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers use the resty API directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an [HTTPClient] at construction.
type HTTPClientOption func(*resty.Client)

// WithTimeout sets the per-request timeout. Non-positive values keep resty's
// default of no timeout.
func WithTimeout(d time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if d > 0 {
			c.SetTimeout(d)
		}
	}
}

// WithBasicAuth sends HTTP basic auth on every request. It is ignored unless
// both user and password are set.
func WithBasicAuth(user, password string) HTTPClientOption {
	return func(c *resty.Client) {
		if user != "" && password != "" {
			c.SetBasicAuth(user, password)
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetHeader("User-Agent", ua)
	}
}

// NewHTTPClient returns a client with its own connection pool. JSON is
// accepted by default.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New().SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(c)
	}
	return &HTTPClient{Client: c}
}
