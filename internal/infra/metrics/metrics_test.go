package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pantry/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ReservationCounters(t *testing.T) {
	m := New()

	m.ObserveOperation("reserve", service.OutcomeSuccess, 10*time.Millisecond)
	m.ObserveOperation("reserve", service.OutcomeSuccess, 20*time.Millisecond)
	m.ObserveOperation("reserve", service.OutcomeRejected, time.Millisecond)
	m.IncRetry("reserve")

	assert.InDelta(t, 2, testutil.ToFloat64(m.reservationOps.WithLabelValues("reserve", service.OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.reservationOps.WithLabelValues("reserve", service.OutcomeRejected)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.reservationRetries.WithLabelValues("reserve")), 0)
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	m := New()

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/offers/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/offers/abc", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues("/offers/:id", http.MethodGet, "200")), 0)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "pantry_http_requests_total")
}

func TestMetrics_EventAudits(t *testing.T) {
	m := New()

	m.ObserveAudit(service.TransactionEventReserved, "consistent")
	m.ObserveAudit(service.TransactionEventReserved, "consistent")
	m.ObserveAudit(service.TransactionEventCancelled, "inconsistent")

	assert.InDelta(t, 2, testutil.ToFloat64(m.eventAudits.WithLabelValues(service.TransactionEventReserved, "consistent")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.eventAudits.WithLabelValues(service.TransactionEventCancelled, "inconsistent")), 0)
}
