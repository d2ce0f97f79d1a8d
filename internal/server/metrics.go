// Package server exposes Prometheus metrics for self-test runs over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/mulcalc/internal/logging"
)

// Metrics bundles the instrumentation of the multiplier: trial counters,
// mismatch counters, and the multiply-duration histogram, all registered
// on a private registry so that repeated construction (e.g. in tests)
// never collides.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	multiplications prometheus.Counter
	mismatches      prometheus.Counter
	duration        prometheus.Histogram
}

// NewMetrics creates and registers the multiplier metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		multiplications: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mulcalc_multiplications_total",
			Help: "Total number of 8192-bit multiplications performed.",
		}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mulcalc_selftest_mismatches_total",
			Help: "Self-test trials that disagreed with the reference multiplier.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mulcalc_multiply_duration_seconds",
			Help:    "Wall time of a single schoolbook multiplication.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
	}

	registry.MustRegister(
		m.multiplications,
		m.mismatches,
		m.duration,
		collectors.NewGoCollector(),
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// ObserveMultiplication records one completed multiplication.
func (m *Metrics) ObserveMultiplication(d time.Duration) {
	m.multiplications.Inc()
	m.duration.Observe(d.Seconds())
}

// IncrementMismatches records a self-test disagreement.
func (m *Metrics) IncrementMismatches() {
	m.mismatches.Inc()
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// Serve exposes /metrics on addr until ctx is canceled. Intended to run
// alongside a self-test; listen errors are logged, not fatal, since
// metrics are auxiliary to the run.
func (m *Metrics) Serve(ctx context.Context, addr string, logger logging.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", m.WritePrometheus)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics server listening", logging.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("metrics server failed", err)
	}
}
