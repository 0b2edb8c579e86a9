package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so provider adapters can call its methods
// directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption customizes a client built by NewHTTPClient.
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the base URL every relative request path is resolved
// against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		if baseURL != "" {
			c.SetBaseURL(baseURL)
		}
	}
}

// WithTimeout bounds the total duration of each request.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) HTTPClientOption {
	return func(c *resty.Client) {
		if userAgent != "" {
			c.SetHeader("User-Agent", userAgent)
		}
	}
}

// WithBearerToken authenticates every request with token.
func WithBearerToken(token string) HTTPClientOption {
	return func(c *resty.Client) {
		if token != "" {
			c.SetAuthToken(token)
		}
	}
}

// NewHTTPClient returns an independent client with its own connection pool.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
