package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	FetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_fetch_total",
			Help: "Marketplace search-page fetches by outcome",
		},
		[]string{"marketplace", "outcome"},
	)

	PricesParsed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_prices_parsed_total",
			Help: "Prices extracted from marketplace pages",
		},
		[]string{"marketplace"},
	)

	EstimatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_estimates_total",
			Help: "Price estimates produced, by result",
		},
		[]string{"result"},
	)

	EstimateDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "price_estimate_duration_seconds",
			Help:    "Time spent producing one price estimate",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Register adds the service collectors to reg.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(FetchTotal, PricesParsed, EstimatesTotal, EstimateDuration)
}

// Start exposes /metrics on port in the background.
func Start(port string) {
	Register(prometheus.DefaultRegisterer)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":"+port, mux); err != nil {
			log.Error().Err(err).Str("port", port).Msg("metrics server stopped")
		}
	}()
}
