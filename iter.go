package partgen

import "iter"

// All returns an iterator over every partition of n, in the generator's
// emission order.
//
// The yielded slice is the generator's reused working view: it is only valid
// for the duration of the loop body. Callers that retain partitions must
// clone the slice. All panics if n is negative.
//
// Parameters:
//   - n: The non-negative integer to partition
//
// Returns:
//   - iter.Seq[[]int]: Single-use iterator over the partitions of n
//
// Example:
//
//	for p := range partgen.All(5) {
//	    fmt.Println(p)
//	}
func All(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		g := New(n)
		for p, ok := g.Next(); ok; p, ok = g.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
