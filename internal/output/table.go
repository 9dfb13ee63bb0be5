// Package output renders API results as ASCII tables for the CLI.
package output

import (
	"github.com/jedib0t/go-pretty/v6/table"

	cryptonews "github.com/freecryptonews/client-go"
)

// Articles renders a list of articles as a table.
func Articles(articles []cryptonews.Article) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Title", "Source", "Age", "Link"})

	for _, a := range articles {
		t.AppendRow(table.Row{a.Title, a.Source, a.TimeAgo, a.Link})
	}

	return t.Render()
}

// Sources renders the news source list as a table.
func Sources(sources []cryptonews.Source) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Name", "Category", "URL"})

	for _, s := range sources {
		t.AppendRow(table.Row{s.Name, s.Category, s.URL})
	}

	return t.Render()
}

// Trending renders trending topics as a table.
func Trending(topics []cryptonews.TrendingTopic) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Topic", "Mentions", "Sentiment"})

	for _, topic := range topics {
		t.AppendRow(table.Row{topic.Topic, topic.Count, sentimentLabel(topic.Sentiment)})
	}

	return t.Render()
}

func sentimentLabel(sentiment string) string {
	switch sentiment {
	case "bullish":
		return "🟢 bullish"
	case "bearish":
		return "🔴 bearish"
	default:
		return "⚪ " + sentiment
	}
}
