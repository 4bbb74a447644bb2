// Package partgen enumerates the integer partitions of a non-negative
// integer n: every way of writing n as a sum of positive parts, each
// partition produced exactly once as a non-decreasing sequence.
//
// The enumeration uses Jerome Kelleher's accelerated ascending-composition
// method, which takes amortized constant time per partition by mutating one
// reusable working buffer in place instead of rebuilding each partition from
// scratch.
//
// # Quick Start
//
//	g := partgen.New(4)
//	for p, ok := g.Next(); ok; p, ok = g.Next() {
//	    fmt.Println(p) // [1 1 1 1], [1 1 2], [1 3], [2 2], [4]
//	}
//
// Or with a range-over-func iterator:
//
//	for p := range partgen.All(4) {
//	    fmt.Println(p)
//	}
//
// Next and All yield views into the generator's working buffer, valid only
// until the next step; use NextCopy to retain partitions across steps.
//
// # Buffer Reuse
//
// Enumerations for many values of n can share buffers to avoid per-generator
// allocation, either manually:
//
//	g := partgen.New(20)
//	drain(g)
//	g = partgen.Recycle(30, g.End())
//
// or through a Pool, which also accepts a logger and a metrics collector:
//
//	pool := partgen.NewPool(partgen.WithMetrics(metrics.NewPrometheus(nil, "")))
//	g := pool.Acquire(30)
//	drain(g)
//	pool.Release(g)
//
// # Counting
//
// Count returns the number of partitions p(n) without enumerating them:
//
//	c, err := partgen.Count(50) // 204226
package partgen
