package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	OpenAIKey      string
	GeminiKey      string
	VisionProvider string
	HTTPPort       string
	MetricsPort    string
	LogLevel       string
	// WorkerCount sizes the marketplace fetch pool.
	WorkerCount int
	// ItemWorkers sizes the pool that prices the items found in one image.
	ItemWorkers  int
	FetchTimeout time.Duration
	// PlaceholderMarketplaces lists marketplaces served from synthetic,
	// non-authoritative prices instead of a live scrape.
	PlaceholderMarketplaces map[string]bool
}

func Load() *Config {
	// .env from the project root, then the current directory
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()
	return &Config{
		OpenAIKey:               os.Getenv("OPENAI_API_KEY"),
		GeminiKey:               os.Getenv("GEMINI_API_KEY"),
		VisionProvider:          getEnv("VISION_PROVIDER", "gemini"),
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		MetricsPort:             getEnv("METRICS_PORT", "9090"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		WorkerCount:             getInt("WORKER_COUNT", 2),
		ItemWorkers:             getInt("ITEM_WORKERS", 4),
		FetchTimeout:            getDuration("FETCH_TIMEOUT", 10*time.Second),
		PlaceholderMarketplaces: parseSet(os.Getenv("PLACEHOLDER_MARKETPLACES")),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getInt(k string, d int) int {
	n, err := strconv.Atoi(os.Getenv(k))
	if err != nil || n <= 0 {
		return d
	}
	return n
}

func getDuration(k string, d time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(k))
	if err != nil || v <= 0 {
		return d
	}
	return v
}

func parseSet(s string) map[string]bool {
	set := map[string]bool{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			set[p] = true
		}
	}
	return set
}
