package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"pricelens/internal/config"
	"pricelens/internal/observability"
	"pricelens/internal/pricing"
	"pricelens/internal/vision"
)

// Serve starts the metrics endpoint and blocks serving the API on
// cfg.HTTPPort.
func Serve(ctx context.Context, cfg *config.Config) error {
	analyzer, err := vision.New(ctx, cfg.VisionProvider, cfg.GeminiKey, cfg.OpenAIKey)
	if err != nil {
		return fmt.Errorf("set up vision analyzer: %w", err)
	}

	observability.Start(cfg.MetricsPort)

	log.Info().
		Str("port", cfg.HTTPPort).
		Str("vision", cfg.VisionProvider).
		Interface("placeholder", cfg.PlaceholderMarketplaces).
		Msg("price estimation API listening")
	return http.ListenAndServe(":"+cfg.HTTPPort, NewRouter(analyzer, pricing.NewFromConfig(cfg), cfg.ItemWorkers))
}
