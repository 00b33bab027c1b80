package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all library-level metrics
type Metrics struct {
	// Resolution metrics
	ResolutionsTotal   *prometheus.CounterVec
	ResolutionDuration prometheus.Histogram
	DefinitionsLoaded  prometheus.Counter

	// Transport metrics
	MessagesPublished *prometheus.CounterVec
	MessagesReceived  *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all library metrics
func NewMetrics() *Metrics {
	return &Metrics{
		ResolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "variant",
				Subsystem: "resolver",
				Name:      "resolutions_total",
				Help:      "Total number of message type resolutions by outcome",
			},
			[]string{"status"},
		),

		ResolutionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "variant",
				Subsystem: "resolver",
				Name:      "resolution_duration_seconds",
				Help:      "Time spent resolving a message type including all dependency loads",
				Buckets:   prometheus.DefBuckets,
			},
		),

		DefinitionsLoaded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "variant",
				Subsystem: "resolver",
				Name:      "definitions_loaded_total",
				Help:      "Total number of raw definition resources loaded",
			},
		),

		MessagesPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "variant",
				Subsystem: "transport",
				Name:      "messages_published_total",
				Help:      "Total number of messages published by topic",
			},
			[]string{"topic"},
		),

		MessagesReceived: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "variant",
				Subsystem: "transport",
				Name:      "messages_received_total",
				Help:      "Total number of messages received by topic",
			},
			[]string{"topic"},
		),
	}
}

// Register registers all metrics with the given Prometheus registerer
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.ResolutionsTotal,
		m.ResolutionDuration,
		m.DefinitionsLoaded,
		m.MessagesPublished,
		m.MessagesReceived,
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister registers all metrics and panics on registration failure
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	if err := m.Register(reg); err != nil {
		panic(err)
	}
}
