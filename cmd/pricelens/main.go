// pricelens estimates market prices for items, either described on the
// command line or recognised in an image.
//
// Usage:
//
//	pricelens estimate --name "Air Max 90" --type sneakers --brand Nike
//	pricelens analyze --image photo.jpg
//	pricelens serve --port 8080
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"pricelens/internal/api"
	"pricelens/internal/config"
	"pricelens/internal/model"
	"pricelens/internal/observability"
	"pricelens/internal/pricing"
	"pricelens/internal/vision"
)

func main() {
	if err := newApp(config.Load()).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(cfg *config.Config) *cli.App {
	return &cli.App{
		Name:  "pricelens",
		Usage: "Estimate new and used market prices from marketplace listings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   cfg.LogLevel,
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringSliceFlag{
				Name:  "placeholder",
				Usage: "Marketplaces to serve from placeholder prices (not real data)",
			},
		},
		Before: func(c *cli.Context) error {
			observability.SetupLogger(c.String("log-level"))
			for _, m := range c.StringSlice("placeholder") {
				cfg.PlaceholderMarketplaces[strings.ToLower(m)] = true
			}
			return nil
		},
		Commands: []*cli.Command{
			estimateCommand(cfg),
			analyzeCommand(cfg),
			serveCommand(cfg),
		},
	}
}

func estimateCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "Estimate prices for one item",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "Item name"},
			&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "Item type or category"},
			&cli.StringFlag{Name: "brand", Aliases: []string{"b"}, Usage: "Brand, if known"},
		},
		Action: func(c *cli.Context) error {
			item := model.Item{
				Name:  c.String("name"),
				Type:  c.String("type"),
				Brand: c.String("brand"),
			}
			est := pricing.NewFromConfig(cfg).Estimate(c.Context, item)
			return printJSON(est)
		},
	}
}

func analyzeCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Detect items in an image and estimate prices for each",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "image", Aliases: []string{"i"}, Required: true, Usage: "Path to a png or jpeg image"},
			&cli.StringFlag{Name: "provider", Value: cfg.VisionProvider, Usage: "Vision provider (gemini, openai)"},
		},
		Action: func(c *cli.Context) error {
			data, err := os.ReadFile(c.String("image"))
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}
			mimeType := http.DetectContentType(data)
			if mimeType != "image/png" && mimeType != "image/jpeg" {
				return fmt.Errorf("unsupported image type %s", mimeType)
			}

			analyzer, err := vision.New(c.Context, c.String("provider"), cfg.GeminiKey, cfg.OpenAIKey)
			if err != nil {
				return err
			}
			items, err := analyzer.Analyze(c.Context, data, mimeType)
			if err != nil {
				return fmt.Errorf("analyze image: %w", err)
			}

			return printJSON(pricing.EstimateAll(c.Context, pricing.NewFromConfig(cfg), items, cfg.ItemWorkers))
		},
	}
}

func serveCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API and the metrics endpoint",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Aliases: []string{"p"}, Value: cfg.HTTPPort, Usage: "API port"},
			&cli.StringFlag{Name: "metrics-port", Value: cfg.MetricsPort, Usage: "Prometheus /metrics port"},
			&cli.StringFlag{Name: "provider", Value: cfg.VisionProvider, Usage: "Vision provider (gemini, openai)"},
		},
		Action: func(c *cli.Context) error {
			cfg.HTTPPort = c.String("port")
			cfg.MetricsPort = c.String("metrics-port")
			cfg.VisionProvider = c.String("provider")
			return api.Serve(c.Context, cfg)
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
