// Package metrics provides metrics collector implementations for the
// partgen library.
package metrics

import "github.com/arloliu/partgen/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the default collector for a Pool created
// without WithMetrics.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// GeneratorMetrics implementation

// RecordInput discards the generator input size metric.
func (n *NopMetrics) RecordInput(_ /* n */ int) {
	// No-op
}

// RecordPartitions discards the partitions-produced metric.
func (n *NopMetrics) RecordPartitions(_ /* count */ int) {
	// No-op
}

// PoolMetrics implementation

// RecordPoolGet discards the pool acquisition metric.
func (n *NopMetrics) RecordPoolGet(_ /* hit */ bool) {
	// No-op
}

// RecordPoolPut discards the pool return metric.
func (n *NopMetrics) RecordPoolPut(_ /* kept */ bool) {
	// No-op
}
