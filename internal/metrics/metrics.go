// Package metrics backs ports.MetricsCollector with Prometheus collectors on a
// private registry.
package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

// Recorder owns themekit's collectors. The zero value is not usable; call New.
type Recorder struct {
	registry *prometheus.Registry

	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	histograms map[string]*prometheus.HistogramVec

	mu      sync.Mutex
	dropped int
}

// New registers every standard themekit metric on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	r := &Recorder{
		registry: reg,
		counters: map[string]*prometheus.CounterVec{
			ports.MetricImportsTotal: factory.NewCounterVec(prometheus.CounterOpts{
				Name: ports.MetricImportsTotal,
				Help: "Theme import attempts by source and outcome",
			}, []string{"source", "outcome"}),
			ports.MetricImportRejectionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
				Name: ports.MetricImportRejectionsTotal,
				Help: "Rejected theme imports by source and reason",
			}, []string{"source", "reason"}),
			ports.MetricExportsTotal: factory.NewCounterVec(prometheus.CounterOpts{
				Name: ports.MetricExportsTotal,
				Help: "Theme exports by target and format",
			}, []string{"target", "format"}),
			ports.MetricAuditsTotal: factory.NewCounterVec(prometheus.CounterOpts{
				Name: ports.MetricAuditsTotal,
				Help: "Accessibility audits by outcome",
			}, []string{"accessible"}),
		},
		gauges: map[string]*prometheus.GaugeVec{
			ports.MetricLastAuditIssues: factory.NewGaugeVec(prometheus.GaugeOpts{
				Name: ports.MetricLastAuditIssues,
				Help: "Issues found by the most recent audit",
			}, []string{}),
		},
		histograms: map[string]*prometheus.HistogramVec{
			ports.MetricImportBytes: factory.NewHistogramVec(prometheus.HistogramOpts{
				Name:    ports.MetricImportBytes,
				Help:    "Size of imported theme documents",
				Buckets: prometheus.ExponentialBuckets(16, 4, 8),
			}, []string{"source"}),
			ports.MetricContrastRatio: factory.NewHistogramVec(prometheus.HistogramOpts{
				Name:    ports.MetricContrastRatio,
				Help:    "Contrast ratios of evaluated critical pairs",
				Buckets: []float64{1.5, 3, 4.5, 7, 10, 15, 21},
			}, []string{}),
		},
	}
	return r
}

// Registry exposes the private registry for scraping or testing.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Dropped reports how many observations named an unknown metric or label set.
func (r *Recorder) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// IncCounter implements ports.MetricsCollector.
func (r *Recorder) IncCounter(_ context.Context, name string, labels map[string]string) {
	vec, ok := r.counters[name]
	if !ok {
		r.drop()
		return
	}
	c, err := vec.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		r.drop()
		return
	}
	c.Inc()
}

// SetGauge implements ports.MetricsCollector.
func (r *Recorder) SetGauge(_ context.Context, name string, value float64, labels map[string]string) {
	vec, ok := r.gauges[name]
	if !ok {
		r.drop()
		return
	}
	g, err := vec.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		r.drop()
		return
	}
	g.Set(value)
}

// ObserveHistogram implements ports.MetricsCollector.
func (r *Recorder) ObserveHistogram(_ context.Context, name string, value float64, labels map[string]string) {
	vec, ok := r.histograms[name]
	if !ok {
		r.drop()
		return
	}
	h, err := vec.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		r.drop()
		return
	}
	h.Observe(value)
}

func (r *Recorder) drop() {
	r.mu.Lock()
	r.dropped++
	r.mu.Unlock()
}

// NoOp discards every observation.
type NoOp struct{}

// IncCounter implements ports.MetricsCollector.
func (NoOp) IncCounter(context.Context, string, map[string]string) {}

// SetGauge implements ports.MetricsCollector.
func (NoOp) SetGauge(context.Context, string, float64, map[string]string) {}

// ObserveHistogram implements ports.MetricsCollector.
func (NoOp) ObserveHistogram(context.Context, string, float64, map[string]string) {}

var (
	_ ports.MetricsCollector = (*Recorder)(nil)
	_ ports.MetricsCollector = NoOp{}
)
