package cryptonews

// Article is a single aggregated news article.
type Article struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Source      string `json:"source"`
	Description string `json:"description"`
	PubDate     string `json:"pubDate"`
	TimeAgo     string `json:"timeAgo"`
}

// Source describes one of the aggregated news feeds.
type Source struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// TrendingTopic is a topic extracted from recent articles with its
// mention count and aggregate sentiment (bullish, bearish or neutral).
type TrendingTopic struct {
	Topic     string `json:"topic"`
	Count     int    `json:"count"`
	Sentiment string `json:"sentiment"`
}

// TrendingResult is the response body of the trending endpoint.
type TrendingResult struct {
	Trending []TrendingTopic `json:"trending"`
}

// articlesResponse is the envelope used by the article endpoints.
type articlesResponse struct {
	Articles []Article `json:"articles"`
}

// sourcesResponse is the envelope used by the sources endpoint.
type sourcesResponse struct {
	Sources []Source `json:"sources"`
}
