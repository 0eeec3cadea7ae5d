package crawler

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"pricelens/internal/model"
	"pricelens/internal/observability"
)

// PriceList holds parsed prices from a single marketplace response.
type PriceList []float64

// Sample is what one fetcher contributes to an estimate.
type Sample struct {
	Marketplace string
	Prices      PriceList
	// Placeholder marks synthetic prices that did not come from a live page.
	Placeholder bool
}

func (s Sample) Source() model.Source {
	switch {
	case s.Placeholder:
		return model.SourcePlaceholder
	case len(s.Prices) > 0:
		return model.SourceScraped
	default:
		return model.SourceEmpty
	}
}

// Fetcher looks up prices for a search query on one marketplace.
// Fetch never fails: any problem yields an empty Sample.
type Fetcher interface {
	Name() string
	SearchURL(query string) string
	Fetch(ctx context.Context, query string) Sample
}

// HTMLFetcher scrapes a marketplace's search-results page.
type HTMLFetcher struct {
	Marketplace Marketplace
	Timeout     time.Duration
}

func NewHTMLFetcher(m Marketplace, timeout time.Duration) *HTMLFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTMLFetcher{Marketplace: m, Timeout: timeout}
}

func (f *HTMLFetcher) Name() string { return f.Marketplace.Name }

func (f *HTMLFetcher) SearchURL(query string) string {
	return f.Marketplace.SearchURL(query)
}

func (f *HTMLFetcher) Fetch(ctx context.Context, query string) Sample {
	sample := Sample{Marketplace: f.Marketplace.Name, Prices: PriceList{}}
	url := f.SearchURL(query)
	logger := log.With().Str("marketplace", f.Marketplace.Name).Str("url", url).Logger()

	// A fresh client per request: nothing is pooled between estimates.
	client := resty.New().
		SetTimeout(f.Timeout).
		SetHeaders(f.Marketplace.Headers).
		SetCloseConnection(true)

	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		logger.Warn().Err(err).Msg("marketplace request failed")
		observability.FetchTotal.WithLabelValues(f.Marketplace.Name, "transport_error").Inc()
		return sample
	}

	if resp.StatusCode() != http.StatusOK {
		logger.Warn().Int("status", resp.StatusCode()).Msg("marketplace returned non-200 status")
		observability.FetchTotal.WithLabelValues(f.Marketplace.Name, "bad_status").Inc()
		return sample
	}

	prices, err := ParsePrices(bytes.NewReader(resp.Body()), f.Marketplace.Selector, MaxPricesPerMarketplace)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to parse marketplace page")
		observability.FetchTotal.WithLabelValues(f.Marketplace.Name, "parse_error").Inc()
		return sample
	}

	observability.FetchTotal.WithLabelValues(f.Marketplace.Name, "ok").Inc()
	observability.PricesParsed.WithLabelValues(f.Marketplace.Name).Add(float64(len(prices)))
	logger.Debug().Int("prices", len(prices)).Msg("marketplace page parsed")

	sample.Prices = prices
	return sample
}

// NewFetchers builds one fetcher per marketplace. Marketplaces named in
// placeholder get a PlaceholderFetcher instead of a live scraper.
func NewFetchers(markets []Marketplace, placeholder map[string]bool, opts FetcherOptions) []Fetcher {
	fetchers := make([]Fetcher, 0, len(markets))
	for _, m := range markets {
		if placeholder[m.Name] {
			fetchers = append(fetchers, NewPlaceholderFetcher(m))
			continue
		}
		fetchers = append(fetchers, NewHTMLFetcher(m, opts.Timeout))
	}
	return fetchers
}

// FetcherOptions carries the settings shared by live fetchers.
type FetcherOptions struct {
	Timeout time.Duration
}
