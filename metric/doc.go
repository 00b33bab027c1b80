// Package metric defines the Prometheus instrumentation for the variant
// library: resolution outcomes and durations, definition loads, and
// transport traffic counters.
//
// All metrics live under the "variant" namespace. A Metrics struct is
// built once with NewMetrics, registered against a Prometheus registry,
// and handed to the components that record into it:
//
//	m := metric.NewMetrics()
//	if err := m.Register(prometheus.DefaultRegisterer); err != nil {
//	    return err
//	}
//	resolver := msgtype.NewResolver(reg, ix, ix, msgtype.WithMetrics(m))
//
// Components treat the metrics handle as optional and skip recording
// when none is configured.
package metric
