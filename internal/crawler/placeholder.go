package crawler

import (
	"context"

	"github.com/rs/zerolog/log"
)

// placeholderPrices is a fixed, obviously synthetic sample. It is not market
// data.
var placeholderPrices = PriceList{99.99, 149.99, 49.99, 89.99, 119.99}

// PlaceholderFetcher stands in for a marketplace that blocks scraping. It never
// touches the network and always flags its sample as placeholder data, so
// callers can tell it apart from scraped prices.
type PlaceholderFetcher struct {
	Marketplace Marketplace
}

func NewPlaceholderFetcher(m Marketplace) *PlaceholderFetcher {
	return &PlaceholderFetcher{Marketplace: m}
}

func (f *PlaceholderFetcher) Name() string { return f.Marketplace.Name }

func (f *PlaceholderFetcher) SearchURL(query string) string {
	return f.Marketplace.SearchURL(query)
}

func (f *PlaceholderFetcher) Fetch(_ context.Context, query string) Sample {
	log.Warn().Str("marketplace", f.Marketplace.Name).Str("query", query).
		Msg("using placeholder prices, results are not authoritative")

	prices := make(PriceList, len(placeholderPrices))
	copy(prices, placeholderPrices)
	return Sample{
		Marketplace: f.Marketplace.Name,
		Prices:      prices,
		Placeholder: true,
	}
}
