package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Default configuration values.
const (
	// DefaultBaseURL is the hosted Free Crypto News endpoint.
	DefaultBaseURL = "https://free-crypto-news.vercel.app"
	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 30 * time.Second
)

// Request and response header names used by the API.
const (
	HeaderAPIKey             = "X-API-Key"
	HeaderPayment            = "X-PAYMENT"
	HeaderPaymentRequired    = "X-PAYMENT-REQUIRED"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
)

// Config configures the API client. The zero value is usable: all fields
// have defaults applied by NewClient.
type Config struct {
	// BaseURL is the API endpoint. Defaults to DefaultBaseURL.
	BaseURL string
	// APIKey is the optional API key sent as X-API-Key.
	APIKey string
	// UserAgent identifies the client. Defaults to a SDK version string.
	UserAgent string
	// Timeout is the per-request timeout. Defaults to DefaultTimeout.
	// Ignored when HTTPClient is set.
	Timeout time.Duration
	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client
}

// Client is the HTTP API client. All methods are safe for concurrent use;
// the API key and the rate-limit snapshot are the only mutable state.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client

	mu        sync.RWMutex
	apiKey    string
	rateLimit *RateLimitInfo
}

// NewClient creates a new API client, applying defaults for unset fields.
func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		apiKey:    cfg.APIKey,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	if cfg.HTTPClient != nil {
		c.httpClient = cfg.HTTPClient
	} else {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	}
	return c
}

// defaultUserAgent identifies the SDK in requests.
const defaultUserAgent = "CryptoNewsSDK-Go/1.0"

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// SetHTTPClient replaces the underlying HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// SetAPIKey replaces the API key used for subsequent requests.
// No validation is performed.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	c.apiKey = key
	c.mu.Unlock()
}

// APIKey returns the currently configured API key, or "" if none is set.
func (c *Client) APIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

// RateLimit returns a copy of the rate-limit snapshot from the most recent
// successful response, or nil if no response has carried rate-limit headers.
func (c *Client) RateLimit() *RateLimitInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.rateLimit == nil {
		return nil
	}
	info := *c.rateLimit
	return &info
}

// Get issues a single GET request against path and decodes the JSON response
// body into out. payment, when non-empty, is an opaque x402 payment token
// forwarded verbatim as the X-PAYMENT header.
//
// There are no retries: 402 becomes *PaymentRequiredError, 429 becomes
// *RateLimitError, any other non-2xx status becomes *APIError, and
// network or decoding failures become *TransportError.
func (c *Client) Get(ctx context.Context, path string, payment string, out any) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &TransportError{URL: url, Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if key := c.APIKey(); key != "" {
		req.Header.Set(HeaderAPIKey, key)
	}
	if payment != "" {
		req.Header.Set(HeaderPayment, payment)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyStatus(resp)
	}

	c.captureRateLimit(resp.Header)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{URL: url, Err: err}
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return &TransportError{URL: url, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

// classifyStatus maps a non-2xx response to a typed error.
func classifyStatus(resp *http.Response) error {
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusPaymentRequired:
		return &PaymentRequiredError{
			PaymentHeader: resp.Header.Get(HeaderPaymentRequired),
		}
	case http.StatusTooManyRequests:
		return &RateLimitError{
			ResetAt: parseIntHeader(resp.Header, HeaderRateLimitReset),
		}
	default:
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
		}
	}
}

// captureRateLimit records the rate-limit headers from a successful response.
// The snapshot is all-or-nothing: both remaining and limit must be present
// and numeric, reset is optional within that. Partial headers leave the
// previous snapshot untouched; a complete set overwrites it.
func (c *Client) captureRateLimit(h http.Header) {
	remaining, okRemaining := intHeader(h, HeaderRateLimitRemaining)
	limit, okLimit := intHeader(h, HeaderRateLimitLimit)
	if !okRemaining || !okLimit {
		return
	}

	info := &RateLimitInfo{
		Remaining: remaining,
		Limit:     limit,
		ResetAt:   parseIntHeader(h, HeaderRateLimitReset),
	}

	c.mu.Lock()
	c.rateLimit = info
	c.mu.Unlock()
}
