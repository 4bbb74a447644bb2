package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/partgen/types"
)

func TestPrometheusCollectorImplementsMetricsCollector(_ *testing.T) {
	var _ types.MetricsCollector = (*PrometheusCollector)(nil)
}

func TestNewPrometheusDefaults(t *testing.T) {
	t.Parallel()

	// nil registerer and empty namespace fall back to defaults; construction
	// alone must not register anything.
	p := NewPrometheus(nil, "")
	require.NotNil(t, p)
	require.Equal(t, "partgen", p.namespace)
}

func TestPrometheusCollectorRecords(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "test")

	p.RecordInput(10)
	p.RecordPartitions(42)
	p.RecordPartitions(5)
	p.RecordPoolGet(true)
	p.RecordPoolGet(false)
	p.RecordPoolGet(false)
	p.RecordPoolPut(true)
	p.RecordPoolPut(false)

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range m.GetLabel() {
				name += "/" + lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				byName[name] = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				byName[name] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}

	require.Equal(t, float64(47), byName["test_generator_partitions_total"])
	require.Equal(t, float64(1), byName["test_generator_input_size"])
	require.Equal(t, float64(1), byName["test_pool_gets_total/hit"])
	require.Equal(t, float64(2), byName["test_pool_gets_total/miss"])
	require.Equal(t, float64(1), byName["test_pool_puts_total/kept"])
	require.Equal(t, float64(1), byName["test_pool_puts_total/dropped"])
}

func TestPrometheusCollectorRegistersOnce(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "once")

	// Repeated records must not attempt duplicate registration.
	require.NotPanics(t, func() {
		for range 10 {
			p.RecordPoolGet(true)
			p.RecordPartitions(1)
		}
	})
}
