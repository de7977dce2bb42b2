package metrics

import (
	"net/http"
	"strconv"
	"time"

	"pantry/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "pantry"

// Metrics owns the Prometheus registry of the service.
type Metrics struct {
	registry *prometheus.Registry

	reservationOps      *prometheus.CounterVec
	reservationDuration *prometheus.HistogramVec
	reservationRetries  *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	eventAudits *prometheus.CounterVec
}

// New creates and registers all collectors on a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reservationOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reservation",
			Name:      "operations_total",
			Help:      "Reservation engine operations segmented by operation and outcome.",
		}, []string{"operation", "outcome"}),
		reservationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reservation",
			Name:      "operation_duration_seconds",
			Help:      "Latency of reservation engine operations including retries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		reservationRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reservation",
			Name:      "retries_total",
			Help:      "Attempts retried after a storage serialization conflict.",
		}, []string{"operation"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests segmented by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		eventAudits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "audited_total",
			Help:      "Transaction events re-checked by the worker, segmented by event type and verdict.",
		}, []string{"type", "result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.reservationOps,
		m.reservationDuration,
		m.reservationRetries,
		m.httpRequests,
		m.httpDuration,
		m.eventAudits,
	)

	return m
}

// ObserveOperation implements service.ReservationMetrics.
func (m *Metrics) ObserveOperation(operation, outcome string, elapsed time.Duration) {
	m.reservationOps.WithLabelValues(operation, outcome).Inc()
	m.reservationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// IncRetry implements service.ReservationMetrics.
func (m *Metrics) IncRetry(operation string) {
	m.reservationRetries.WithLabelValues(operation).Inc()
}

// ObserveAudit implements service.EventAuditMetrics.
func (m *Metrics) ObserveAudit(eventType, result string) {
	m.eventAudits.WithLabelValues(eventType, result).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request counts and latencies keyed by the matched route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
			m.httpDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

func asReservationMetrics(m *Metrics) service.ReservationMetrics {
	return m
}

func asEventAuditMetrics(m *Metrics) service.EventAuditMetrics {
	return m
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		asReservationMetrics,
		asEventAuditMetrics,
	),
)
