package cryptonews

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Default query values applied when the caller passes zero values.
const (
	defaultArticleLimit  = 10
	defaultBreakingLimit = 5
	defaultAnalyzeLimit  = 20
	defaultArchiveLimit  = 50
	defaultOriginsLimit  = 20
	defaultTrendingHours = 24
)

func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

// GetLatest returns the latest crypto news. limit caps the number of
// articles (default 10); source optionally filters by feed name
// (coindesk, theblock, decrypt, ...).
func (c *Client) GetLatest(ctx context.Context, limit int, source string) ([]Article, error) {
	endpoint := fmt.Sprintf("/api/news?limit=%d", orDefault(limit, defaultArticleLimit))
	if source != "" {
		endpoint += "&source=" + source
	}
	var resp articlesResponse
	if err := c.get(ctx, endpoint, "", &resp); err != nil {
		return nil, err
	}
	return resp.Articles, nil
}

// Search returns articles matching the comma-separated keywords.
func (c *Client) Search(ctx context.Context, keywords string, limit int) ([]Article, error) {
	endpoint := fmt.Sprintf("/api/search?q=%s&limit=%d",
		url.QueryEscape(keywords), orDefault(limit, defaultArticleLimit))
	var resp articlesResponse
	if err := c.get(ctx, endpoint, "", &resp); err != nil {
		return nil, err
	}
	return resp.Articles, nil
}

// GetDeFi returns DeFi-specific news.
func (c *Client) GetDeFi(ctx context.Context, limit int) ([]Article, error) {
	return c.articles(ctx, "/api/defi", orDefault(limit, defaultArticleLimit))
}

// GetBitcoin returns Bitcoin-specific news.
func (c *Client) GetBitcoin(ctx context.Context, limit int) ([]Article, error) {
	return c.articles(ctx, "/api/bitcoin", orDefault(limit, defaultArticleLimit))
}

// GetBreaking returns breaking news from the last two hours.
func (c *Client) GetBreaking(ctx context.Context, limit int) ([]Article, error) {
	return c.articles(ctx, "/api/breaking", orDefault(limit, defaultBreakingLimit))
}

func (c *Client) articles(ctx context.Context, path string, limit int) ([]Article, error) {
	var resp articlesResponse
	if err := c.get(ctx, fmt.Sprintf("%s?limit=%d", path, limit), "", &resp); err != nil {
		return nil, err
	}
	return resp.Articles, nil
}

// GetSources returns the list of aggregated news sources.
func (c *Client) GetSources(ctx context.Context) ([]Source, error) {
	var resp sourcesResponse
	if err := c.get(ctx, "/api/sources", "", &resp); err != nil {
		return nil, err
	}
	return resp.Sources, nil
}

// GetTrending returns trending topics with sentiment over the given window
// (default 24 hours).
func (c *Client) GetTrending(ctx context.Context, limit, hours int) (*TrendingResult, error) {
	endpoint := fmt.Sprintf("/api/trending?limit=%d&hours=%d",
		orDefault(limit, defaultArticleLimit), orDefault(hours, defaultTrendingHours))
	var result TrendingResult
	if err := c.get(ctx, endpoint, "", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetStats returns API statistics and analytics.
func (c *Client) GetStats(ctx context.Context) (map[string]any, error) {
	var result map[string]any
	if err := c.get(ctx, "/api/stats", "", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetHealth checks API health status.
func (c *Client) GetHealth(ctx context.Context) (map[string]any, error) {
	var result map[string]any
	if err := c.get(ctx, "/api/health", "", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// AnalyzeParams filters the analyze endpoint.
type AnalyzeParams struct {
	// Limit caps the number of analyzed articles. Default 20.
	Limit int
	// Topic filters by classified topic (free text).
	Topic string
	// Sentiment filters by sentiment label.
	Sentiment string
}

// Analyze returns news with topic classification and sentiment analysis.
func (c *Client) Analyze(ctx context.Context, params AnalyzeParams) (map[string]any, error) {
	endpoint := fmt.Sprintf("/api/analyze?limit=%d", orDefault(params.Limit, defaultAnalyzeLimit))
	if params.Topic != "" {
		endpoint += "&topic=" + url.QueryEscape(params.Topic)
	}
	if params.Sentiment != "" {
		endpoint += "&sentiment=" + params.Sentiment
	}
	var result map[string]any
	if err := c.get(ctx, endpoint, "", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ArchiveParams filters the archive endpoint.
type ArchiveParams struct {
	// Limit caps the number of archived articles. Default 50.
	Limit int
	// Date selects a specific day (YYYY-MM-DD).
	Date string
	// Query filters by keywords (free text).
	Query string
}

// GetArchive returns archived historical news.
func (c *Client) GetArchive(ctx context.Context, params ArchiveParams) (map[string]any, error) {
	endpoint := fmt.Sprintf("/api/archive?limit=%d", orDefault(params.Limit, defaultArchiveLimit))
	if params.Date != "" {
		endpoint += "&date=" + params.Date
	}
	if params.Query != "" {
		endpoint += "&q=" + url.QueryEscape(params.Query)
	}
	var result map[string]any
	if err := c.get(ctx, endpoint, "", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// OriginsParams filters the origins endpoint.
type OriginsParams struct {
	// Limit caps the number of results. Default 20.
	Limit int
	// Query filters by keywords (free text).
	Query string
	// Category filters by source category.
	Category string
}

// GetOrigins finds the original sources of news stories.
func (c *Client) GetOrigins(ctx context.Context, params OriginsParams) (map[string]any, error) {
	endpoint := fmt.Sprintf("/api/origins?limit=%d", orDefault(params.Limit, defaultOriginsLimit))
	if params.Query != "" {
		endpoint += "&q=" + url.QueryEscape(params.Query)
	}
	if params.Category != "" {
		endpoint += "&category=" + params.Category
	}
	var result map[string]any
	if err := c.get(ctx, endpoint, "", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetPortfolio returns news for the given coins, optionally with prices.
// coins are comma-joined and percent-encoded into a single parameter.
func (c *Client) GetPortfolio(ctx context.Context, coins []string, limit int, includePrices bool) (map[string]any, error) {
	endpoint := fmt.Sprintf("/api/portfolio?coins=%s&limit=%d&prices=%t",
		url.QueryEscape(strings.Join(coins, ",")),
		orDefault(limit, defaultArticleLimit), includePrices)
	var result map[string]any
	if err := c.get(ctx, endpoint, "", &result); err != nil {
		return nil, err
	}
	return result, nil
}
