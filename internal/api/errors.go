package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrPaymentRequired indicates the endpoint requires an x402 payment.
	ErrPaymentRequired = errors.New("payment required")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// PaymentRequiredError is returned for HTTP 402 responses. PaymentHeader
// carries the raw, still base64-encoded X-PAYMENT-REQUIRED header value
// for the caller to decode; it is empty when the server sent no header.
type PaymentRequiredError struct {
	PaymentHeader string
}

func (e *PaymentRequiredError) Error() string {
	return "payment required"
}

// Is implements errors.Is for sentinel error matching.
func (e *PaymentRequiredError) Is(target error) bool {
	return target == ErrPaymentRequired
}

// RateLimitError is returned for HTTP 429 responses. ResetAt is the Unix
// timestamp at which the limit resets, or 0 when the server did not say.
type RateLimitError struct {
	ResetAt int64
}

func (e *RateLimitError) Error() string {
	if e.ResetAt > 0 {
		return fmt.Sprintf("rate limit exceeded, resets at %d", e.ResetAt)
	}
	return "rate limit exceeded"
}

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// APIError represents any other non-2xx HTTP response.
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// TransportError represents a network-level or decoding failure.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}
