package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the collectors the evaluator and bench driver report to.
// A nil *Metrics is valid everywhere and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
	CacheSize   prometheus.Gauge
	Generations prometheus.Counter
}

// New constructs a Metrics with its own registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quadlife_cache_hits_total",
			Help: "Interning lookups that found an existing canonical node.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quadlife_cache_misses_total",
			Help: "Interning lookups that inserted a new canonical node.",
		}),
		CacheSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "quadlife_cache_nodes",
			Help: "Canonical nodes currently interned.",
		}),
		Generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quadlife_generations_total",
			Help: "Virtual generations advanced across all Life instances.",
		}),
	}
	m.Registry.MustRegister(m.CacheHits, m.CacheMisses, m.CacheSize, m.Generations)
	return m
}

// Hit records an interning hit.
func (m *Metrics) Hit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}

// Miss records an interning miss and the resulting table growth.
func (m *Metrics) Miss(size int) {
	if m != nil {
		m.CacheMisses.Inc()
		m.CacheSize.Set(float64(size))
	}
}

// Reset clears the size gauge after a cache clear.
func (m *Metrics) Reset() {
	if m != nil {
		m.CacheSize.Set(0)
	}
}

// AddGenerations records virtual generations advanced by a step.
func (m *Metrics) AddGenerations(n int64) {
	if m != nil {
		m.Generations.Add(float64(n))
	}
}
