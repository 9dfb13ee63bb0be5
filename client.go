package cryptonews

import (
	"context"
	"net/http"

	"github.com/freecryptonews/client-go/internal/api"
)

// RateLimitInfo is a snapshot of the rate-limit headers from the most
// recent successful response.
type RateLimitInfo = api.RateLimitInfo

// Client is the Free Crypto News API client.
//
// A zero-configuration client uses the hosted free tier. All methods are
// safe for concurrent use; the API key and the rate-limit snapshot are the
// only mutable state, and the snapshot is overwritten whole after each
// successful response that carries rate-limit headers.
type Client struct {
	apiClient *api.Client
}

// New creates a new client. All configuration is optional: by default the
// client targets the hosted endpoint with no API key and a 30s timeout.
func New(opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     cfg.apiKey,
		UserAgent:  cfg.userAgent,
		Timeout:    cfg.timeout,
		HTTPClient: cfg.httpClient,
	})

	return &Client{apiClient: apiClient}
}

// SetAPIKey replaces the API key used for all subsequent requests.
// No validation is performed.
func (c *Client) SetAPIKey(key string) {
	c.apiClient.SetAPIKey(key)
}

// SetHTTPClient replaces the underlying HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.apiClient.SetHTTPClient(client)
}

// RateLimitInfo returns the rate-limit snapshot from the most recent
// successful request, or nil if no request has completed with rate-limit
// headers yet.
func (c *Client) RateLimitInfo() *RateLimitInfo {
	return c.apiClient.RateLimit()
}

// get delegates to the shared request primitive and converts internal
// errors to their public counterparts.
func (c *Client) get(ctx context.Context, path string, payment string, out any) error {
	return wrapError(c.apiClient.Get(ctx, path, payment, out))
}
