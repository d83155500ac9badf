package server

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

// Metrics collects the server's prometheus instruments on a private
// registry so tests can run several servers without collisions.
type Metrics struct {
	registry *prom.Registry

	PageViews          *prom.CounterVec
	Generations        *prom.CounterVec
	GenerationDuration prom.Histogram
	StreamedBytes      prom.Counter
}

// NewMetrics constructs and registers the instruments; a nil registry
// gets a fresh private one.
func NewMetrics(reg *prom.Registry) *Metrics {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	m := &Metrics{registry: reg}
	m.PageViews = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "fromblank",
		Name:      "page_views_total",
		Help:      "Page views by render outcome",
	}, []string{"outcome"})
	m.Generations = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "fromblank",
		Name:      "generations_total",
		Help:      "Generation requests by result",
	}, []string{"result"})
	m.GenerationDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "fromblank",
		Name:      "generation_duration_seconds",
		Help:      "Duration of successful generations",
		Buckets:   prom.DefBuckets,
	})
	m.StreamedBytes = prom.NewCounter(prom.CounterOpts{
		Namespace: "fromblank",
		Name:      "streamed_bytes_total",
		Help:      "Bytes streamed to generate clients",
	})
	reg.MustRegister(m.PageViews, m.Generations, m.GenerationDuration, m.StreamedBytes)
	return m
}

func (m *Metrics) Registry() *prom.Registry { return m.registry }
