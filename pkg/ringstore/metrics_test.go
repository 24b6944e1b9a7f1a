package ringstore

import (
	stderrors "errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ringstore/errors"
	"github.com/c360/ringstore/metric"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, g.Write(m))
	return m.GetGauge().GetValue()
}

func TestMetrics_Recorded(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	rs := newStore[int](t, 4, WithMetrics(registry, "test_store"))
	defer rs.Close()

	require.NotNil(t, rs.metrics)

	require.NoError(t, rs.WriteMany([]int{1, 2, 3}))
	require.NoError(t, rs.Write(4))
	assert.Error(t, rs.Write(5))

	_, err := rs.PeekMany(2)
	require.NoError(t, err)
	_, err = rs.Read()
	require.NoError(t, err)

	m := rs.metrics
	assert.Equal(t, 4.0, counterValue(t, m.writes))
	assert.Equal(t, 1.0, counterValue(t, m.reads))
	assert.Equal(t, 2.0, counterValue(t, m.peeks))
	assert.Equal(t, 1.0, counterValue(t, m.rejectedWrites))
	assert.Equal(t, 3.0, gaugeValue(t, m.size))
	assert.InDelta(t, 0.75, gaugeValue(t, m.utilization), 1e-9)

	_, err = rs.ReadMany(5)
	assert.Error(t, err)
	assert.Equal(t, 1.0, counterValue(t, m.emptyReads))

	rs.Clear()
	assert.Equal(t, 1.0, counterValue(t, m.clears))
	assert.Equal(t, 0.0, gaugeValue(t, m.size))
	assert.Equal(t, 0.0, gaugeValue(t, m.utilization))
}

func TestMetrics_Exported(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	rs := newStore[int](t, 2, WithMetrics(registry, "exported"))
	defer rs.Close()

	require.NoError(t, rs.Write(1))

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	found := map[string]*dto.MetricFamily{}
	for _, mf := range families {
		found[mf.GetName()] = mf
	}

	for _, name := range []string{
		"ringstore_store_writes_total",
		"ringstore_store_reads_total",
		"ringstore_store_peeks_total",
		"ringstore_store_rejected_writes_total",
		"ringstore_store_empty_reads_total",
		"ringstore_store_clears_total",
		"ringstore_store_size",
		"ringstore_store_utilization",
	} {
		mf, ok := found[name]
		if !assert.True(t, ok, "metric %s should be exported", name) {
			continue
		}
		labels := mf.GetMetric()[0].GetLabel()
		require.Len(t, labels, 1)
		assert.Equal(t, "component", labels[0].GetName())
		assert.Equal(t, "exported", labels[0].GetValue())
	}
}

func TestMetrics_DuplicatePrefix(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	first := newStore[int](t, 2, WithMetrics(registry, "shared"))
	defer first.Close()

	second, err := New[int](2, WithMetrics(registry, "shared"))
	require.Error(t, err)
	assert.Nil(t, second)
	assert.True(t, errors.IsInvalid(err))
	assert.True(t, stderrors.Is(err, errors.ErrDuplicateMetric))
	assert.Contains(t, err.Error(), "RingStore.New: metrics registration failed")

	// The first store's metrics are intact
	assert.True(t, registry.Registered("shared", "ringstore_writes"))
	assert.True(t, registry.Registered("shared", "ringstore_utilization"))
}

func TestMetrics_PartialRegistrationRolledBack(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	// Occupy one key so registration fails midway
	blocker := prometheus.NewGauge(prometheus.GaugeOpts{Name: "blocker", Help: "blocks size"})
	require.NoError(t, registry.RegisterGauge("partial", "ringstore_size", blocker))

	_, err := New[int](2, WithMetrics(registry, "partial"))
	require.Error(t, err)

	assert.False(t, registry.Registered("partial", "ringstore_writes"))
	assert.False(t, registry.Registered("partial", "ringstore_clears"))
	assert.True(t, registry.Registered("partial", "ringstore_size"))
}

func TestMetrics_CloseUnregisters(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	rs := newStore[int](t, 2, WithMetrics(registry, "closing"))

	require.NoError(t, rs.Close())
	assert.False(t, registry.Registered("closing", "ringstore_writes"))
	assert.Nil(t, rs.metrics)

	// Idempotent, and the store keeps working
	require.NoError(t, rs.Close())
	require.NoError(t, rs.Write(1))

	// The prefix can be reused
	again := newStore[int](t, 2, WithMetrics(registry, "closing"))
	require.NoError(t, again.Close())
}

func TestMetrics_IgnoredWithoutRegistryOrPrefix(t *testing.T) {
	rs := newStore[int](t, 2, WithMetrics(nil, "name"))
	assert.Nil(t, rs.metrics)

	rs = newStore[int](t, 2, WithMetrics(metric.NewMetricsRegistry(), ""))
	assert.Nil(t, rs.metrics)
	require.NoError(t, rs.Close())
}
