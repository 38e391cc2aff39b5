package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records cart and wishlist mutation outcomes.
type StoreMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_mutation_duration_seconds",
		Help:    "Duration of cart/wishlist mutations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"collection", "op"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_mutation_success",
		Help: "Successful cart/wishlist mutations.",
	}, []string{"collection", "op"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_mutation_failure",
		Help: "Failed cart/wishlist mutations.",
	}, []string{"collection", "op"})
	reg.MustRegister(duration, success, failure)
	return &StoreMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named mutation.
func (s *StoreMetrics) ObserveDuration(collection, op string, duration time.Duration) {
	if s == nil || s.duration == nil {
		return
	}
	s.duration.WithLabelValues(normalizeLabel(collection), normalizeLabel(op)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named mutation.
func (s *StoreMetrics) IncSuccess(collection, op string) {
	if s == nil || s.success == nil {
		return
	}
	s.success.WithLabelValues(normalizeLabel(collection), normalizeLabel(op)).Inc()
}

// IncFailure increments the failure counter for the named mutation.
func (s *StoreMetrics) IncFailure(collection, op string) {
	if s == nil || s.failure == nil {
		return
	}
	s.failure.WithLabelValues(normalizeLabel(collection), normalizeLabel(op)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
