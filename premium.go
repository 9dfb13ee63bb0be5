package cryptonews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
)

// Defaults for the premium endpoints.
const (
	defaultCoinsPage    = 1
	defaultCoinsPerPage = 100
	defaultCoinsOrder   = "market_cap_desc"
	defaultHistoryDays  = 30
	defaultExportFormat = "json"
)

// GetUsage returns usage statistics for the configured API key: tier,
// usage today and this month, limit, remaining and reset time.
//
// Returns ErrMissingAPIKey without issuing a network call when no API
// key is set.
func (c *Client) GetUsage(ctx context.Context) (map[string]any, error) {
	if c.apiClient.APIKey() == "" {
		return nil, ErrMissingAPIKey
	}
	var result map[string]any
	if err := c.get(ctx, "/api/v1/usage", "", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetPremiumCoin returns premium market data for a single coin.
//
// Premium endpoints require either an API key or an x402 payment: payment
// is an opaque token produced by external signing tooling and forwarded
// verbatim as the X-PAYMENT header; pass "" when authenticating by key.
func (c *Client) GetPremiumCoin(ctx context.Context, coinID string, payment string) (map[string]any, error) {
	endpoint := fmt.Sprintf("/api/v1/coins/%s", url.PathEscape(coinID))
	var result map[string]any
	if err := c.get(ctx, endpoint, payment, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CoinsParams pages and filters the premium coins listing.
type CoinsParams struct {
	// Page is the page number. Default 1.
	Page int
	// PerPage is the page size, max 250. Default 100.
	PerPage int
	// Order is the sort order. Default market_cap_desc.
	Order string
	// IDs optionally restricts to comma-separated coin IDs.
	IDs string
}

// GetPremiumCoins returns a page of premium coin market data.
// See GetPremiumCoin for the payment parameter.
func (c *Client) GetPremiumCoins(ctx context.Context, params CoinsParams, payment string) (map[string]any, error) {
	order := params.Order
	if order == "" {
		order = defaultCoinsOrder
	}
	endpoint := fmt.Sprintf("/api/v1/coins?page=%d&per_page=%d&order=%s",
		orDefault(params.Page, defaultCoinsPage),
		orDefault(params.PerPage, defaultCoinsPerPage), order)
	if params.IDs != "" {
		endpoint += "&ids=" + url.QueryEscape(params.IDs)
	}
	var result map[string]any
	if err := c.get(ctx, endpoint, payment, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetHistorical returns historical price data for a coin over the given
// number of days (default 30). See GetPremiumCoin for the payment parameter.
func (c *Client) GetHistorical(ctx context.Context, coinID string, days int, payment string) (map[string]any, error) {
	endpoint := fmt.Sprintf("/api/v1/historical/%s?days=%d",
		url.PathEscape(coinID), orDefault(days, defaultHistoryDays))
	var result map[string]any
	if err := c.get(ctx, endpoint, payment, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ExportData exports coin data in the given format ("json" or "csv",
// default json) over the given number of days (default 30).
// See GetPremiumCoin for the payment parameter.
func (c *Client) ExportData(ctx context.Context, coinID, format string, days int, payment string) (map[string]any, error) {
	if format == "" {
		format = defaultExportFormat
	}
	endpoint := fmt.Sprintf("/api/v1/export?coin=%s&format=%s&days=%d",
		coinID, format, orDefault(days, defaultHistoryDays))
	var result map[string]any
	if err := c.get(ctx, endpoint, payment, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ExportDataToFile fetches an export and writes it to filePath as indented
// JSON with secure permissions (0600).
func (c *Client) ExportDataToFile(ctx context.Context, filePath, coinID, format string, days int, payment string) error {
	result, err := c.ExportData(ctx, coinID, format, days, payment)
	if err != nil {
		return err
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export data: %w", err)
	}

	if err := os.WriteFile(filePath, jsonData, 0600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
