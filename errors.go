package cryptonews

import (
	"errors"
	"fmt"

	"github.com/freecryptonews/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when an operation requires an API key
	// and none is set. Raised before any network call.
	ErrMissingAPIKey = errors.New("API key required, call SetAPIKey first")

	// ErrPaymentRequired is returned when an endpoint requires an x402 payment.
	ErrPaymentRequired = errors.New("payment required")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// CryptoNewsError is implemented by all SDK errors.
type CryptoNewsError interface {
	error
	CryptoNewsError() // marker method
}

// PaymentRequiredError represents an HTTP 402 response. PaymentHeader is
// the raw, still base64-encoded X-PAYMENT-REQUIRED header value; decode it
// with DecodePaymentRequirements. It is empty when the server sent no header.
type PaymentRequiredError struct {
	PaymentHeader string
}

func (e *PaymentRequiredError) Error() string {
	return "payment required"
}

// CryptoNewsError implements the CryptoNewsError interface.
func (e *PaymentRequiredError) CryptoNewsError() {}

// Is implements errors.Is for sentinel error matching.
func (e *PaymentRequiredError) Is(target error) bool {
	return target == ErrPaymentRequired
}

// RateLimitError represents an HTTP 429 response. ResetAt is the Unix
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

// CryptoNewsError implements the CryptoNewsError interface.
func (e *RateLimitError) CryptoNewsError() {}

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

// CryptoNewsError implements the CryptoNewsError interface.
func (e *APIError) CryptoNewsError() {}

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

// CryptoNewsError implements the CryptoNewsError interface.
func (e *TransportError) CryptoNewsError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var payErr *api.PaymentRequiredError
	if errors.As(err, &payErr) {
		return &PaymentRequiredError{PaymentHeader: payErr.PaymentHeader}
	}

	var rateErr *api.RateLimitError
	if errors.As(err, &rateErr) {
		return &RateLimitError{ResetAt: rateErr.ResetAt}
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{StatusCode: apiErr.StatusCode, Status: apiErr.Status}
	}

	var transportErr *api.TransportError
	if errors.As(err, &transportErr) {
		return &TransportError{URL: transportErr.URL, Err: transportErr.Err}
	}

	return err
}
