package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricelens/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		VisionProvider:          "gemini",
		HTTPPort:                "8080",
		MetricsPort:             "9090",
		LogLevel:                "error",
		PlaceholderMarketplaces: map[string]bool{},
	}
}

func TestAppRegistersCommands(t *testing.T) {
	app := newApp(testConfig())
	for _, name := range []string{"estimate", "analyze", "serve"} {
		assert.NotNil(t, app.Command(name), name)
	}
}

func TestServeAppliesFlags(t *testing.T) {
	cfg := testConfig()

	err := newApp(cfg).Run([]string{"pricelens", "serve", "--port", "9999", "--metrics-port", "9998", "--provider", "bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown vision provider")
	assert.Equal(t, "9999", cfg.HTTPPort)
	assert.Equal(t, "9998", cfg.MetricsPort)
	assert.Equal(t, "bogus", cfg.VisionProvider)
}
