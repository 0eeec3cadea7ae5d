package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"pricelens/internal/api"
	"pricelens/internal/config"
	"pricelens/internal/observability"
)

func main() {
	cfg := config.Load()
	observability.SetupLogger(cfg.LogLevel)

	if err := api.Serve(context.Background(), cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
