// Package api implements the raw HTTP client for the Free Crypto News API.
//
// It owns the single request primitive shared by every SDK operation:
// URL composition, request headers (API key, x402 payment token), rate-limit
// header capture, JSON decoding, and classification of HTTP failures into
// typed errors. Higher-level behavior lives in the root cryptonews package.
package api
