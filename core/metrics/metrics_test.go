package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"market-sync/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(metrics.BatchesPushed.WithLabelValues("12345", metrics.KindStocks))

	metrics.BatchesPushed.WithLabelValues("12345", metrics.KindStocks).Inc()
	metrics.BatchesPushed.WithLabelValues("12345", metrics.KindStocks).Inc()

	after := testutil.ToFloat64(metrics.BatchesPushed.WithLabelValues("12345", metrics.KindStocks))
	assert.Equal(t, before+2, after)
}

func TestHandler(t *testing.T) {
	metrics.SyncRuns.WithLabelValues(metrics.ResultSuccess).Inc()

	app := fiber.New()
	app.Get("/metrics", metrics.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "market_sync_runs_total")
}
