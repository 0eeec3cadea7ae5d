package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"pricelens/internal/crawler"
	"pricelens/internal/model"
	"pricelens/internal/observability"
)

const defaultWorkers = 2

// Estimator produces a price estimate for one item.
type Estimator interface {
	Estimate(ctx context.Context, item model.Item) model.PriceEstimate
}

// Aggregator fans a search query out to every fetcher, merges what comes back
// and splits the result into new and used price bands. It keeps no state
// between calls.
type Aggregator struct {
	fetchers []crawler.Fetcher
	workers  int
}

type Option func(*Aggregator)

// WithWorkers sets the fetch pool size. It is never allowed below the number
// of fetchers.
func WithWorkers(n int) Option {
	return func(a *Aggregator) {
		a.workers = n
	}
}

func NewAggregator(fetchers []crawler.Fetcher, opts ...Option) *Aggregator {
	a := &Aggregator{fetchers: fetchers, workers: defaultWorkers}
	for _, opt := range opts {
		opt(a)
	}
	if a.workers < len(a.fetchers) {
		a.workers = len(a.fetchers)
	}
	return a
}

// Estimate never fails. When no marketplace yields a usable price both ranges
// are model.Unavailable; the marketplace links are filled in either way.
func (a *Aggregator) Estimate(ctx context.Context, item model.Item) model.PriceEstimate {
	start := time.Now()
	defer func() {
		observability.EstimateDuration.Observe(time.Since(start).Seconds())
	}()

	query := BuildQuery(item)
	requestID, ok := observability.RequestID(ctx)
	if !ok {
		requestID = uuid.New().String()
	}
	logger := log.With().
		Str("request_id", requestID).
		Str("query", query).
		Logger()

	est := model.PriceEstimate{
		NewPriceRange:    model.Unavailable,
		UsedPriceRange:   model.Unavailable,
		SearchQuery:      query,
		MarketplaceLinks: make(map[string]string, len(a.fetchers)),
		Sources:          make(map[string]model.Source, len(a.fetchers)),
	}
	for _, f := range a.fetchers {
		est.MarketplaceLinks[f.Name()] = f.SearchURL(query)
	}

	samples := a.collect(ctx, query, logger)
	for _, s := range samples {
		est.Sources[s.Marketplace] = s.Source()
		if s.Placeholder && len(s.Prices) > 0 {
			est.Placeholder = true
		}
	}

	newRange, usedRange, err := summarize(samples)
	if err != nil {
		logger.Warn().Err(err).Msg("no price estimate available")
		observability.EstimatesTotal.WithLabelValues("unavailable").Inc()
		return est
	}

	est.NewPriceRange = newRange
	est.UsedPriceRange = usedRange
	observability.EstimatesTotal.WithLabelValues("ok").Inc()
	logger.Info().
		Str("new", newRange).
		Str("used", usedRange).
		Bool("placeholder", est.Placeholder).
		Dur("took", time.Since(start)).
		Msg("price estimate ready")
	return est
}

// collect runs all fetchers on the pool and waits for every one of them.
func (a *Aggregator) collect(ctx context.Context, query string, logger zerolog.Logger) []crawler.Sample {
	samples := make([]crawler.Sample, len(a.fetchers))

	g := new(errgroup.Group)
	g.SetLimit(a.workers)
	for i, f := range a.fetchers {
		g.Go(func() error {
			samples[i] = safeFetch(ctx, f, query, logger)
			return nil
		})
	}
	_ = g.Wait()

	return samples
}

func safeFetch(ctx context.Context, f crawler.Fetcher, query string, logger zerolog.Logger) (s crawler.Sample) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Str("marketplace", f.Name()).Interface("panic", r).Msg("fetcher panicked")
			s = crawler.Sample{Marketplace: f.Name(), Prices: crawler.PriceList{}}
		}
	}()

	s = f.Fetch(ctx, query)
	s.Marketplace = f.Name()
	return s
}

var errNoPrices = errors.New("no prices found")

func summarize(samples []crawler.Sample) (newRange, usedRange string, err error) {
	defer func() {
		if r := recover(); r != nil {
			newRange, usedRange = "", ""
			err = fmt.Errorf("summarize prices: %v", r)
		}
	}()

	combined := Combine(samples)
	if len(combined) == 0 {
		return "", "", errNoPrices
	}

	used, fresh := SplitBands(combined)
	return FormatRange(fresh), FormatRange(used), nil
}
