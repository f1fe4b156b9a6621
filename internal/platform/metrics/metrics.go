// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes Prometheus collectors for the HTTP layer and the
marketplace ledger.

Every [Metrics] value owns a private registry, so tests can build as many as
they need without tripping duplicate-registration panics. All recording methods
are safe to call on a nil receiver, which lets services run without metrics.
*/
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "animelar"

// Metrics bundles the registry with every collector the service records into.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	registrations prometheus.Counter
	purchases     *prometheus.CounterVec
	revenue       *prometheus.CounterVec
	adsCreated    prometheus.Counter
	storeOps      *prometheus.HistogramVec
}

// New builds a [Metrics] with a fresh registry and the Go/process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		}, []string{"method", "route"}),

		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "registrations_total",
			Help:      "Total number of registered users.",
		}),
		purchases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "purchases_total",
			Help:      "Total number of anime purchases by outcome.",
		}, []string{"outcome"}),
		revenue: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "revenue_units_total",
			Help:      "Currency units collected, by source.",
		}, []string{"source"}),
		adsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "ads_created_total",
			Help:      "Total number of paid advertisements.",
		}),
		storeOps: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Duration of document load/save operations.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"operation", "success"}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.registrations,
		m.purchases,
		m.revenue,
		m.adsCreated,
		m.storeOps,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// Registry exposes the underlying registry (used by tests to gather samples).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// # HTTP Instrumentation

// Instrument wraps the handler chain with request count, latency and in-flight metrics.
//
// Routes are labelled by their chi pattern (e.g. /anime/{id}/purchase) to keep
// label cardinality bounded.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	if m == nil {
		return next
	}

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path == "/metrics" {
			next.ServeHTTP(writer, request)
			return
		}

		recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
		start := time.Now()

		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()

		next.ServeHTTP(recorder, request)

		route := routePattern(request)
		method := strings.ToUpper(request.Method)

		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(recorder.status)).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

// # Ledger Events

// RecordRegistration counts a new user account.
func (m *Metrics) RecordRegistration() {
	if m == nil {
		return
	}
	m.registrations.Inc()
}

// RecordPurchase counts a purchase attempt outcome and, when paid, its revenue.
func (m *Metrics) RecordPurchase(outcome string, price int64) {
	if m == nil {
		return
	}
	m.purchases.WithLabelValues(outcome).Inc()
	if price > 0 {
		m.revenue.WithLabelValues("purchase").Add(float64(price))
	}
}

// RecordAd counts a paid advertisement and its fee.
func (m *Metrics) RecordAd(fee int64) {
	if m == nil {
		return
	}
	m.adsCreated.Inc()
	m.revenue.WithLabelValues("ad").Add(float64(fee))
}

// ObserveStore records the duration of one document load or save.
func (m *Metrics) ObserveStore(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.storeOps.WithLabelValues(operation, strconv.FormatBool(err == nil)).Observe(duration.Seconds())
}

// # Helpers

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// routePattern prefers the matched chi pattern over the raw path.
func routePattern(request *http.Request) string {
	if routeContext := chi.RouteContext(request.Context()); routeContext != nil {
		if pattern := routeContext.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
