package metric

import (
	stderrors "errors"
	"fmt"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ringstore/errors"
)

func gatheredNames(t *testing.T, registry *MetricsRegistry) map[string]bool {
	t.Helper()
	metricFamilies, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(metricFamilies))
	for _, mf := range metricFamilies {
		names[mf.GetName()] = true
	}
	return names
}

func TestNewMetricsRegistry(t *testing.T) {
	registry := NewMetricsRegistry()

	assert.NotNil(t, registry)
	assert.NotNil(t, registry.PrometheusRegistry())
}

func TestNewMetricsRegistryFrom(t *testing.T) {
	reg := prometheus.NewRegistry()
	registry := NewMetricsRegistryFrom(reg)

	assert.Same(t, reg, registry.PrometheusRegistry())
}

func TestMetricsRegistry_RegisterCounter(t *testing.T) {
	registry := NewMetricsRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_counter",
		Help: "A test counter",
	})

	err := registry.RegisterCounter("test-store", "test_counter", counter)
	require.NoError(t, err)

	counter.Inc()

	assert.True(t, gatheredNames(t, registry)["test_counter"], "Counter should be registered in Prometheus registry")
	assert.True(t, registry.Registered("test-store", "test_counter"))
}

func TestMetricsRegistry_RegisterGauge(t *testing.T) {
	registry := NewMetricsRegistry()

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "test_gauge",
		Help: "A test gauge",
	})

	err := registry.RegisterGauge("test-store", "test_gauge", gauge)
	require.NoError(t, err)

	gauge.Set(42.0)

	assert.True(t, gatheredNames(t, registry)["test_gauge"], "Gauge should be registered in Prometheus registry")
}

func TestMetricsRegistry_DuplicateRegistration(t *testing.T) {
	registry := NewMetricsRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "dup_counter", Help: "dup"})
	require.NoError(t, registry.RegisterCounter("store", "dup_counter", counter))

	other := prometheus.NewCounter(prometheus.CounterOpts{Name: "dup_counter_other", Help: "dup"})
	err := registry.RegisterCounter("store", "dup_counter", other)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
	assert.True(t, stderrors.Is(err, errors.ErrDuplicateMetric))
}

func TestMetricsRegistry_PrometheusConflict(t *testing.T) {
	registry := NewMetricsRegistry()

	first := prometheus.NewGauge(prometheus.GaugeOpts{Name: "same_name", Help: "first"})
	second := prometheus.NewGauge(prometheus.GaugeOpts{Name: "same_name", Help: "first"})

	require.NoError(t, registry.RegisterGauge("store-a", "size", first))

	err := registry.RegisterGauge("store-b", "size", second)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
	assert.Contains(t, err.Error(), "MetricsRegistry.RegisterGauge")
	assert.False(t, registry.Registered("store-b", "size"))
}

func TestMetricsRegistry_Unregister(t *testing.T) {
	registry := NewMetricsRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "gone_counter", Help: "gone"})
	require.NoError(t, registry.RegisterCounter("store", "gone_counter", counter))

	assert.True(t, registry.Unregister("store", "gone_counter"))
	assert.False(t, registry.Registered("store", "gone_counter"))
	assert.False(t, gatheredNames(t, registry)["gone_counter"])

	// Second unregister is a no-op
	assert.False(t, registry.Unregister("store", "gone_counter"))

	// Name is free again
	require.NoError(t, registry.RegisterCounter("store", "gone_counter", counter))
}

func TestMetricsRegistry_ConcurrentRegistration(t *testing.T) {
	registry := NewMetricsRegistry()

	var wg sync.WaitGroup
	errs := make(chan error, 20)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			counter := prometheus.NewCounter(prometheus.CounterOpts{
				Name: fmt.Sprintf("concurrent_counter_%d", i),
				Help: "concurrent",
			})
			errs <- registry.RegisterCounter(fmt.Sprintf("store-%d", i), "writes", counter)
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, gatheredNames(t, registry), 20)
}
