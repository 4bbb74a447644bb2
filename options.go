package partgen

import (
	"github.com/arloliu/partgen/internal/logger"
	"github.com/arloliu/partgen/internal/metrics"
)

// Option configures a Pool with optional dependencies.
type Option func(*poolOptions)

// poolOptions holds optional Pool configuration.
type poolOptions struct {
	maxBuffers int
	logger     Logger
	metrics    MetricsCollector
}

func defaultPoolOptions() *poolOptions {
	return &poolOptions{
		maxBuffers: DefaultPoolSize,
		logger:     logger.NewNop(),
		metrics:    metrics.NewNop(),
	}
}

// WithLogger sets a logger for the pool.
//
// Parameters:
//   - l: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewPool
//
// Example:
//
//	pool := partgen.NewPool(partgen.WithLogger(logging.NewSlogDefault()))
func WithLogger(l Logger) Option {
	return func(o *poolOptions) {
		o.logger = l
	}
}

// WithMetrics sets a metrics collector for the pool.
//
// Parameters:
//   - m: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewPool
//
// Example:
//
//	pool := partgen.NewPool(partgen.WithMetrics(metrics.NewPrometheus(nil, "")))
func WithMetrics(m MetricsCollector) Option {
	return func(o *poolOptions) {
		o.metrics = m
	}
}

// WithMaxBuffers sets how many idle buffers the pool retains.
//
// Values below one fall back to DefaultPoolSize.
//
// Parameters:
//   - max: Maximum number of retained idle buffers
//
// Returns:
//   - Option: Functional option for NewPool
func WithMaxBuffers(max int) Option {
	return func(o *poolOptions) {
		if max > 0 {
			o.maxBuffers = max
		}
	}
}
