package partgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/partgen/internal/logger"
)

// captureMetrics records every collector call for assertions.
type captureMetrics struct {
	mu         sync.Mutex
	inputs     []int
	partitions []int
	gets       []bool
	puts       []bool
}

func (c *captureMetrics) RecordInput(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inputs = append(c.inputs, n)
}

func (c *captureMetrics) RecordPartitions(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.partitions = append(c.partitions, count)
}

func (c *captureMetrics) RecordPoolGet(hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets = append(c.gets, hit)
}

func (c *captureMetrics) RecordPoolPut(kept bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts = append(c.puts, kept)
}

func TestPoolAcquireReleaseFidelity(t *testing.T) {
	t.Parallel()

	pool := NewPool(WithLogger(logger.NewTest(t)))

	// A pooled generator must produce the identical sequence as a fresh one,
	// including after buffer reuse across different n.
	for _, n := range []int{12, 0, 7, 20, 7} {
		g := pool.Acquire(n)
		require.Equal(t, collect(New(n)), collect(g), "n=%d", n)
		pool.Release(g)
	}
}

func TestPoolReusesBuffers(t *testing.T) {
	t.Parallel()

	m := &captureMetrics{}
	pool := NewPool(WithMetrics(m))

	g := pool.Acquire(10)
	pool.Release(g)
	require.Equal(t, 1, pool.Idle())

	g = pool.Acquire(8)
	require.Equal(t, 0, pool.Idle())
	pool.Release(g)

	require.Equal(t, []bool{false, true}, m.gets)
	require.Equal(t, []bool{true, true}, m.puts)
	require.Equal(t, []int{10, 8}, m.inputs)
}

func TestPoolRecordsPartitions(t *testing.T) {
	t.Parallel()

	m := &captureMetrics{}
	pool := NewPool(WithMetrics(m))

	g := pool.Acquire(10)
	for _, ok := g.Next(); ok; _, ok = g.Next() {
	}
	pool.Release(g)

	// p(10) = 42.
	require.Equal(t, []int{42}, m.partitions)

	// Releasing a half-drained generator records what it actually emitted.
	g = pool.Acquire(10)
	g.Next()
	g.Next()
	pool.Release(g)
	require.Equal(t, []int{42, 2}, m.partitions)
}

func TestPoolMaxBuffers(t *testing.T) {
	t.Parallel()

	m := &captureMetrics{}
	pool := NewPool(WithMaxBuffers(2), WithMetrics(m))

	gens := []*Generator{pool.Acquire(5), pool.Acquire(5), pool.Acquire(5)}
	for _, g := range gens {
		pool.Release(g)
	}

	require.Equal(t, 2, pool.Idle())
	require.Equal(t, []bool{true, true, false}, m.puts)
}

func TestPoolDefaultOptions(t *testing.T) {
	t.Parallel()

	// Nop logger and metrics by default; invalid max falls back.
	pool := NewPool(WithMaxBuffers(0))
	require.Equal(t, DefaultPoolSize, pool.max)

	g := pool.Acquire(3)
	require.Equal(t, collect(New(3)), collect(g))
	pool.Release(g)
}

func TestPoolConcurrentUse(t *testing.T) {
	t.Parallel()

	pool := NewPool()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, n := range []int{4, 9, 16} {
				g := pool.Acquire(n)
				count := 0
				for _, ok := g.Next(); ok; _, ok = g.Next() {
					count++
				}
				require.Equal(t, a000041[n], count)
				pool.Release(g)
			}
		}()
	}
	wg.Wait()
}
