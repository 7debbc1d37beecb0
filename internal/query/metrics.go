package query

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts cache behaviour per module.
type Metrics struct {
	hits          *prometheus.CounterVec
	misses        *prometheus.CounterVec
	fetchErrors   *prometheus.CounterVec
	invalidations *prometheus.CounterVec
}

// NewMetrics registers the query counters on reg. Collectors that are
// already registered are reused.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "supplyhub_query_cache_hits_total",
			Help: "Query reads answered from a fresh cache entry.",
		}, []string{"module"}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "supplyhub_query_cache_miss_total",
			Help: "Query reads that required a fetch.",
		}, []string{"module"}),
		fetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "supplyhub_query_fetch_errors_total",
			Help: "Fetches that failed.",
		}, []string{"module"}),
		invalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "supplyhub_query_invalidations_total",
			Help: "Cache keys marked stale.",
		}, []string{"module"}),
	}
	m.hits = register(reg, m.hits)
	m.misses = register(reg, m.misses)
	m.fetchErrors = register(reg, m.fetchErrors)
	m.invalidations = register(reg, m.invalidations)
	return m
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return c
}

func (m *Metrics) hit(module string) {
	if m != nil {
		m.hits.WithLabelValues(module).Inc()
	}
}

func (m *Metrics) miss(module string) {
	if m != nil {
		m.misses.WithLabelValues(module).Inc()
	}
}

func (m *Metrics) fetchError(module string) {
	if m != nil {
		m.fetchErrors.WithLabelValues(module).Inc()
	}
}

func (m *Metrics) invalidated(module string) {
	if m != nil {
		m.invalidations.WithLabelValues(module).Inc()
	}
}
