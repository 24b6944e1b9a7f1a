// Package metric provides a Prometheus-backed registry for component metrics.
//
// MetricsRegistry wraps a private *prometheus.Registry and tracks every collector
// under a "component.metric" key, so a component can register its metrics on
// construction and remove exactly those metrics on shutdown:
//
//	registry := metric.NewMetricsRegistry()
//
//	store, err := ringstore.New[[]byte](4096,
//		ringstore.WithMetrics(registry, "udp_input"),
//	)
//	if err != nil {
//		return err
//	}
//	defer store.Close() // unregisters udp_input.* metrics
//
// Registering the same component/metric pair twice returns an invalid-class
// error wrapping errors.ErrDuplicateMetric. Conflicts detected by Prometheus
// itself (same fully-qualified name and labels) are also reported as invalid.
//
// Exposition is left to the caller, typically via promhttp:
//
//	http.Handle("/metrics", promhttp.HandlerFor(registry.PrometheusRegistry(), promhttp.HandlerOpts{}))
package metric
