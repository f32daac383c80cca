package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dinner/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.OrdersCreated.Inc()
	m.OrderChanges.WithLabelValues("Confirmed").Inc()
	m.OrderChanges.WithLabelValues("Confirmed").Inc()
	m.LatencyMS.WithLabelValues("GET", "/api/v1/dinners", "200").Observe(12)

	assert.InDelta(t, 1, testutil.ToFloat64(m.OrdersCreated), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.OrderChanges.WithLabelValues("Confirmed")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.LatencyMS))
}

func TestNew_TwiceOnSameRegistry_Panics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)

	assert.Panics(t, func() { metrics.New(reg) })
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.OrdersCreated.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "dinner_orders_created_total 1"))
}
