package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/partgen/types"
)

func TestNewNop(t *testing.T) {
	t.Parallel()

	m := NewNop()

	require.NotNil(t, m)
	require.IsType(t, &NopMetrics{}, m)
}

func TestNopMetricsDiscardsEverything(t *testing.T) {
	t.Parallel()

	m := NewNop()

	// Should not panic with any inputs
	require.NotPanics(t, func() {
		m.RecordInput(0)
		m.RecordInput(1000)
		m.RecordInput(-1)
		m.RecordPartitions(0)
		m.RecordPartitions(204226)
		m.RecordPoolGet(true)
		m.RecordPoolGet(false)
		m.RecordPoolPut(true)
		m.RecordPoolPut(false)
	})
}

func TestNopMetricsImplementsMetricsCollector(_ *testing.T) {
	var _ types.MetricsCollector = (*NopMetrics)(nil)
}
