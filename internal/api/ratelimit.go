package api

import (
	"net/http"
	"strconv"
)

// RateLimitInfo is a snapshot of the rate-limit headers from the most
// recent successful response.
type RateLimitInfo struct {
	// Remaining is the number of requests left in the current window.
	Remaining int
	// Limit is the total request allowance for the window.
	Limit int
	// ResetAt is the Unix timestamp at which the window resets,
	// or 0 when the server did not send X-RateLimit-Reset.
	ResetAt int64
}

// intHeader parses a header as an int, reporting whether it was present
// and well-formed.
func intHeader(h http.Header, name string) (int, bool) {
	v := h.Get(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseIntHeader parses an optional int64 header, returning 0 when the
// header is absent or malformed.
func parseIntHeader(h http.Header, name string) int64 {
	v := h.Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
