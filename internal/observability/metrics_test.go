package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegisterAndCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	assert.NotPanics(t, func() { Register(reg) })

	before := testutil.ToFloat64(FetchTotal.WithLabelValues("ebay", "ok"))
	FetchTotal.WithLabelValues("ebay", "ok").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(FetchTotal.WithLabelValues("ebay", "ok")))

	n, err := testutil.GatherAndCount(reg, "marketplace_fetch_total")
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)
}

func TestSetupLoggerAcceptsBadLevel(t *testing.T) {
	assert.NotPanics(t, func() { SetupLogger("loud") })
	assert.NotPanics(t, func() { SetupLogger("debug") })
}
