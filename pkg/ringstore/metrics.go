package ringstore

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/ringstore/metric"
)

// storeMetrics holds Prometheus metrics for store operations.
type storeMetrics struct {
	registry *metric.MetricsRegistry
	prefix   string

	writes         prometheus.Counter
	reads          prometheus.Counter
	peeks          prometheus.Counter
	rejectedWrites prometheus.Counter
	emptyReads     prometheus.Counter
	clears         prometheus.Counter

	size        prometheus.Gauge
	utilization prometheus.Gauge

	// registration keys, in registration order, for unregister
	registered []string
}

func newCounter(prefix, name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   "ringstore",
		Subsystem:   "store",
		Name:        name,
		ConstLabels: prometheus.Labels{"component": prefix},
		Help:        help,
	})
}

func newGauge(prefix, name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   "ringstore",
		Subsystem:   "store",
		Name:        name,
		ConstLabels: prometheus.Labels{"component": prefix},
		Help:        help,
	})
}

// newStoreMetrics creates and registers store metrics with the provided registry.
// On failure, metrics registered so far are removed again.
func newStoreMetrics(registry *metric.MetricsRegistry, prefix string) (*storeMetrics, error) {
	m := &storeMetrics{
		registry:       registry,
		prefix:         prefix,
		writes:         newCounter(prefix, "writes_total", "Total number of elements written"),
		reads:          newCounter(prefix, "reads_total", "Total number of elements read"),
		peeks:          newCounter(prefix, "peeks_total", "Total number of elements peeked"),
		rejectedWrites: newCounter(prefix, "rejected_writes_total", "Total number of writes rejected because the store was full"),
		emptyReads:     newCounter(prefix, "empty_reads_total", "Total number of reads or peeks rejected for lack of elements"),
		clears:         newCounter(prefix, "clears_total", "Total number of clear operations"),
		size:           newGauge(prefix, "size", "Current number of stored elements"),
		utilization:    newGauge(prefix, "utilization", "Store utilization as a fraction of capacity (0.0 to 1.0)"),
	}

	counters := []struct {
		name    string
		counter prometheus.Counter
	}{
		{"ringstore_writes", m.writes},
		{"ringstore_reads", m.reads},
		{"ringstore_peeks", m.peeks},
		{"ringstore_rejected_writes", m.rejectedWrites},
		{"ringstore_empty_reads", m.emptyReads},
		{"ringstore_clears", m.clears},
	}
	for _, c := range counters {
		if err := registry.RegisterCounter(prefix, c.name, c.counter); err != nil {
			m.unregister()
			return nil, err
		}
		m.registered = append(m.registered, c.name)
	}

	gauges := []struct {
		name  string
		gauge prometheus.Gauge
	}{
		{"ringstore_size", m.size},
		{"ringstore_utilization", m.utilization},
	}
	for _, g := range gauges {
		if err := registry.RegisterGauge(prefix, g.name, g.gauge); err != nil {
			m.unregister()
			return nil, err
		}
		m.registered = append(m.registered, g.name)
	}

	return m, nil
}

func (m *storeMetrics) recordWrites(n, size, capacity int) {
	m.writes.Add(float64(n))
	m.updateSize(size, capacity)
}

func (m *storeMetrics) recordReads(n, size, capacity int) {
	m.reads.Add(float64(n))
	m.updateSize(size, capacity)
}

func (m *storeMetrics) recordPeeks(n int) {
	m.peeks.Add(float64(n))
}

func (m *storeMetrics) recordRejectedWrite() {
	m.rejectedWrites.Inc()
}

func (m *storeMetrics) recordEmptyRead() {
	m.emptyReads.Inc()
}

func (m *storeMetrics) recordClear(capacity int) {
	m.clears.Inc()
	m.updateSize(0, capacity)
}

func (m *storeMetrics) updateSize(size, capacity int) {
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}

func (m *storeMetrics) unregister() {
	for _, name := range m.registered {
		m.registry.Unregister(m.prefix, name)
	}
	m.registered = nil
}
