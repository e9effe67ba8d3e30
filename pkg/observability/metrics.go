package observability

import (
	"time"

	"github.com/aretw0/sbmlexport/internal/builder"
	"github.com/prometheus/client_golang/prometheus"
)

// Export results used as the "result" label.
const (
	ResultOK      = "ok"
	ResultError   = "error"
	ResultSkipped = "skipped"
)

// Metrics holds the exporter's collectors.
type Metrics struct {
	Exports        *prometheus.CounterVec
	ExportDuration *prometheus.HistogramVec
	CacheLookups   *prometheus.CounterVec
	Elements       *prometheus.CounterVec
	Skipped        prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sbmlexport_exports_total",
				Help: "Total number of exported models",
			},
			[]string{"format", "result"},
		),
		ExportDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sbmlexport_export_duration_seconds",
				Help:    "Duration of single model exports",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format"},
		),
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sbmlexport_cache_lookups_total",
				Help: "Export cache lookups by outcome",
			},
			[]string{"outcome"},
		),
		Elements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sbmlexport_model_elements_total",
				Help: "Model elements written, by kind",
			},
			[]string{"kind"},
		),
		Skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sbmlexport_skipped_contributions_total",
			Help: "Source contributions dropped because the graph was incomplete",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Exports, m.ExportDuration, m.CacheLookups, m.Elements, m.Skipped)
	}
	return m
}

// ObserveExport records one finished export. Safe on a nil receiver.
func (m *Metrics) ObserveExport(format, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.Exports.WithLabelValues(format, result).Inc()
	if result == ResultOK {
		m.ExportDuration.WithLabelValues(format).Observe(d.Seconds())
	}
}

// ObserveBuild adds the counts of one model build.
func (m *Metrics) ObserveBuild(s builder.Stats) {
	if m == nil {
		return
	}
	m.Elements.WithLabelValues("reaction").Add(float64(s.Reactions))
	m.Elements.WithLabelValues("species").Add(float64(s.Species))
	m.Elements.WithLabelValues("compartment").Add(float64(s.Compartments))
	m.Elements.WithLabelValues("role_link").Add(float64(s.RoleLinks))
	m.Skipped.Add(float64(s.Skipped))
}

// ObserveCache records a cache hit or miss.
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.CacheLookups.WithLabelValues(outcome).Inc()
}
