package cryptonews

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freecryptonews/client-go/internal/api"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrMissingAPIKey", ErrMissingAPIKey},
		{"ErrPaymentRequired", ErrPaymentRequired},
		{"ErrRateLimited", ErrRateLimited},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "payment required",
			err:      &PaymentRequiredError{PaymentHeader: "abc"},
			expected: "payment required",
		},
		{
			name:     "rate limit with reset",
			err:      &RateLimitError{ResetAt: 1700000000},
			expected: "rate limit exceeded, resets at 1700000000",
		},
		{
			name:     "rate limit without reset",
			err:      &RateLimitError{},
			expected: "rate limit exceeded",
		},
		{
			name:     "api error",
			err:      &APIError{StatusCode: 503, Status: "Service Unavailable"},
			expected: "HTTP 503: Service Unavailable",
		},
		{
			name:     "api error without status text",
			err:      &APIError{StatusCode: 599},
			expected: "HTTP 599",
		},
		{
			name:     "transport error",
			err:      &TransportError{Err: fmt.Errorf("dial tcp: connection refused")},
			expected: "transport error: dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name  string
		in    error
		check func(t *testing.T, out error)
	}{
		{
			name: "payment required",
			in:   &api.PaymentRequiredError{PaymentHeader: "b64"},
			check: func(t *testing.T, out error) {
				var payErr *PaymentRequiredError
				if !errors.As(out, &payErr) {
					t.Fatalf("expected *PaymentRequiredError, got %T", out)
				}
				if payErr.PaymentHeader != "b64" {
					t.Errorf("PaymentHeader = %s, want b64", payErr.PaymentHeader)
				}
				if !errors.Is(out, ErrPaymentRequired) {
					t.Error("should match ErrPaymentRequired")
				}
			},
		},
		{
			name: "rate limited",
			in:   &api.RateLimitError{ResetAt: 1700000000},
			check: func(t *testing.T, out error) {
				var rateErr *RateLimitError
				if !errors.As(out, &rateErr) {
					t.Fatalf("expected *RateLimitError, got %T", out)
				}
				if rateErr.ResetAt != 1700000000 {
					t.Errorf("ResetAt = %d, want 1700000000", rateErr.ResetAt)
				}
				if !errors.Is(out, ErrRateLimited) {
					t.Error("should match ErrRateLimited")
				}
			},
		},
		{
			name: "api error",
			in:   &api.APIError{StatusCode: 500, Status: "Internal Server Error"},
			check: func(t *testing.T, out error) {
				var apiErr *APIError
				if !errors.As(out, &apiErr) {
					t.Fatalf("expected *APIError, got %T", out)
				}
				if apiErr.StatusCode != 500 {
					t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
				}
			},
		},
		{
			name: "transport error",
			in:   &api.TransportError{URL: "https://x", Err: fmt.Errorf("timeout")},
			check: func(t *testing.T, out error) {
				var transportErr *TransportError
				if !errors.As(out, &transportErr) {
					t.Fatalf("expected *TransportError, got %T", out)
				}
				if transportErr.URL != "https://x" {
					t.Errorf("URL = %s, want https://x", transportErr.URL)
				}
			},
		},
		{
			name: "nil stays nil",
			in:   nil,
			check: func(t *testing.T, out error) {
				if out != nil {
					t.Errorf("wrapError(nil) = %v, want nil", out)
				}
			},
		},
		{
			name: "unknown errors pass through",
			in:   fmt.Errorf("something else"),
			check: func(t *testing.T, out error) {
				if out == nil || out.Error() != "something else" {
					t.Errorf("wrapError() = %v, want passthrough", out)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, wrapError(tt.in))
		})
	}
}

func TestClient_PaymentRequiredSurfaced(t *testing.T) {
	const encoded = "eyJhY2NlcHRzIjpbXX0="

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-PAYMENT-REQUIRED", encoded)
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))

	_, err := client.GetPremiumCoins(context.Background(), CoinsParams{}, "")
	var payErr *PaymentRequiredError
	if !errors.As(err, &payErr) {
		t.Fatalf("expected *PaymentRequiredError, got %T (%v)", err, err)
	}
	if payErr.PaymentHeader != encoded {
		t.Errorf("PaymentHeader = %s, want %s unmodified", payErr.PaymentHeader, encoded)
	}
}

func TestClient_RateLimitSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Reset", "1700000000")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))

	_, err := client.GetLatest(context.Background(), 10, "")
	var rateErr *RateLimitError
	if !errors.As(err, &rateErr) {
		t.Fatalf("expected *RateLimitError, got %T (%v)", err, err)
	}
	if rateErr.ResetAt != 1700000000 {
		t.Errorf("ResetAt = %d, want 1700000000", rateErr.ResetAt)
	}
}
