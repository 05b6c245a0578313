package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "brand_dashboard",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brand_dashboard",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "brand_dashboard",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brand_dashboard",
			Subsystem: "lifecycle",
			Name:      "transitions_total",
			Help:      "Status transitions applied, by aggregate and resulting status.",
		},
		[]string{"aggregate", "action", "to"},
	)

	schedulerRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brand_dashboard",
			Subsystem: "scheduler",
			Name:      "job_records_total",
			Help:      "Records touched by scheduler jobs.",
		},
		[]string{"job", "outcome"},
	)

	eventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brand_dashboard",
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Domain events published, by type and outcome.",
		},
		[]string{"type", "outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		transitions,
		schedulerRuns,
		eventsPublished,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency labelled by the matched route
// pattern, so ids in paths do not explode cardinality.
func Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if ctx.Path() == "/metrics" {
			return ctx.Next()
		}

		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		route := ctx.Route().Path
		httpRequests.WithLabelValues(ctx.Method(), route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(ctx.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

func RecordTransition(aggregate, action, to string) {
	transitions.WithLabelValues(aggregate, action, to).Inc()
}

func RecordSchedulerJob(job, outcome string, count int) {
	if count <= 0 {
		return
	}
	schedulerRuns.WithLabelValues(job, outcome).Add(float64(count))
}

func RecordEvent(eventType string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	eventsPublished.WithLabelValues(eventType, outcome).Inc()
}
