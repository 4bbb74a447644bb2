package partgen

import "github.com/puzpuzpuz/xsync/v4"

// countCache memoizes partition counts process-wide. Count fills it with
// every intermediate value it computes, so repeated calls for nearby n are
// cheap lookups.
var countCache = xsync.NewMap[int, uint64]()

// Count returns p(n), the number of integer partitions of n, without
// enumerating them.
//
// Counts are computed by dynamic programming over part sizes and memoized,
// so the first call for a given n costs O(n^2) and later calls (for that n
// or anything computed along the way) are constant time. Count is safe for
// concurrent use.
//
// Parameters:
//   - n: The integer to count partitions of
//
// Returns:
//   - uint64: p(n), e.g. p(0) = 1, p(4) = 5, p(50) = 204226
//   - error: ErrNegative for negative n, ErrCountOverflow when p(n)
//     exceeds the uint64 range (n beyond roughly 416)
func Count(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegative
	}

	if c, ok := countCache.Load(n); ok {
		return c, nil
	}

	// ways[m] is the number of partitions of m into parts <= part.
	ways := make([]uint64, n+1)
	ways[0] = 1

	for part := 1; part <= n; part++ {
		for m := part; m <= n; m++ {
			s := ways[m] + ways[m-part]
			if s < ways[m] {
				return 0, ErrCountOverflow
			}
			ways[m] = s
		}
	}

	for i, c := range ways {
		countCache.Store(i, c)
	}

	return ways[n], nil
}
