package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and must be safe for concurrent
// use; Pool calls them under load from whichever goroutines acquire and
// release generators.
//
// The interface composes smaller, domain-focused interfaces.
type MetricsCollector interface {
	GeneratorMetrics
	PoolMetrics
}

// GeneratorMetrics defines metrics about generator lifetimes.
type GeneratorMetrics interface {
	// RecordInput records the n a generator was created for.
	//
	// Parameters:
	//   - n: The integer being partitioned
	RecordInput(n int)

	// RecordPartitions records how many partitions a generator emitted over
	// its whole lifetime, observed when it is released.
	//
	// Parameters:
	//   - count: Partitions emitted by the released generator
	RecordPartitions(count int)
}

// PoolMetrics defines metrics for buffer pool traffic.
type PoolMetrics interface {
	// RecordPoolGet records a buffer acquisition.
	//
	// Parameters:
	//   - hit: true when a pooled buffer was reused, false when a fresh
	//     allocation was needed
	RecordPoolGet(hit bool)

	// RecordPoolPut records a buffer being returned.
	//
	// Parameters:
	//   - kept: true when the buffer was retained for reuse, false when the
	//     pool was full and the buffer was dropped
	RecordPoolPut(kept bool)
}
