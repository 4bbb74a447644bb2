package partgen

import "sync"

// DefaultPoolSize is the default maximum number of idle buffers a Pool
// retains between generator lifetimes.
const DefaultPoolSize = 8

// Pool amortizes working-buffer allocation across many generator lifetimes.
//
// Acquire hands out a generator backed by a pooled buffer when one is
// available; Release ends a generator and keeps its buffer for reuse. The
// pool changes no algorithmic behavior: a generator from Acquire produces
// the identical partition sequence as one from New.
//
// A Pool is safe for concurrent use. The generators it hands out are not;
// each one belongs to a single caller at a time.
type Pool struct {
	mu   sync.Mutex
	bufs [][]int
	max  int

	logger  Logger
	metrics MetricsCollector
}

// NewPool creates a buffer pool.
//
// Parameters:
//   - opts: Functional options (WithLogger, WithMetrics, WithMaxBuffers)
//
// Returns:
//   - *Pool: Initialized empty pool
//
// Example:
//
//	pool := partgen.NewPool(partgen.WithMaxBuffers(4))
//	g := pool.Acquire(30)
//	defer pool.Release(g)
func NewPool(opts ...Option) *Pool {
	o := defaultPoolOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Pool{
		max:     o.maxBuffers,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Acquire returns a generator for the partitions of n, reusing a pooled
// buffer when one is available.
//
// The generator must be handed back with Release when the caller is done
// with it (exhausted or not) for its buffer to be reused. Acquire panics if
// n is negative, like New.
//
// Parameters:
//   - n: The non-negative integer to partition
//
// Returns:
//   - *Generator: Generator positioned before the first partition
func (p *Pool) Acquire(n int) *Generator {
	var buf []int

	p.mu.Lock()
	if l := len(p.bufs); l > 0 {
		buf = p.bufs[l-1]
		p.bufs[l-1] = nil
		p.bufs = p.bufs[:l-1]
	}
	p.mu.Unlock()

	p.metrics.RecordPoolGet(buf != nil)
	p.metrics.RecordInput(n)

	if buf == nil {
		p.logger.Debug("pool miss, allocating buffer", "n", n)

		return New(n)
	}

	if cap(buf) < n+1 {
		p.logger.Debug("pooled buffer too small, growing", "n", n, "cap", cap(buf))
	}

	return Recycle(n, buf)
}

// Release ends a generator and retains its buffer for reuse.
//
// If the pool is already holding its maximum number of idle buffers the
// buffer is dropped instead. The generator must not be used after Release.
//
// Parameters:
//   - g: Generator to tear down (typically obtained from Acquire, but any
//     generator works)
func (p *Pool) Release(g *Generator) {
	produced := g.Produced()
	buf := g.End()

	p.metrics.RecordPartitions(produced)

	p.mu.Lock()
	kept := len(p.bufs) < p.max
	if kept {
		p.bufs = append(p.bufs, buf)
	}
	p.mu.Unlock()

	p.metrics.RecordPoolPut(kept)
}

// Idle reports how many buffers the pool is currently retaining.
func (p *Pool) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.bufs)
}
