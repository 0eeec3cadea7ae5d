package pricing

import (
	"pricelens/internal/config"
	"pricelens/internal/crawler"
)

// NewFromConfig builds an Aggregator over every known marketplace.
func NewFromConfig(cfg *config.Config) *Aggregator {
	fetchers := crawler.NewFetchers(
		crawler.Marketplaces(),
		cfg.PlaceholderMarketplaces,
		crawler.FetcherOptions{Timeout: cfg.FetchTimeout},
	)
	return NewAggregator(fetchers, WithWorkers(cfg.WorkerCount))
}
