// Package cryptonews provides a Go client SDK for the Free Crypto News API,
// a crypto-news aggregation service.
//
// The free tier requires no API key. An API key raises rate limits and
// unlocks the premium /api/v1 endpoints; those endpoints alternatively
// accept an x402 micropayment token produced by external signing tooling
// and forwarded verbatim by this SDK.
//
// Basic usage:
//
//	client := cryptonews.New()
//
//	articles, err := client.GetLatest(ctx, 10, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, article := range articles {
//	    fmt.Printf("%s - %s\n", article.Title, article.Source)
//	}
//
// With an API key:
//
//	client := cryptonews.New(cryptonews.WithAPIKey("cda_free_xxx"))
package cryptonews
