package partgen

// phase identifies which branch of the state machine produced the last
// partition, and therefore where the next one resumes from.
type phase uint8

const (
	// phaseOuter means no split is in flight; the next step resettles the
	// buffer starting from slot k-1.
	phaseOuter phase = iota

	// phaseInner means the previous step split the remainder across slots
	// k and l; the next step usually advances by a single transfer between
	// those two slots.
	phaseInner
)

// Generator enumerates the integer partitions of a fixed n, one per call,
// without materializing the full result set.
//
// It implements Jerome Kelleher's accelerated ascending-composition method:
// successive partitions are synthesized by mutating a shared working buffer
// in place and resuming from an explicit two-phase state, so the total work
// across the whole enumeration is proportional to the number of partitions
// (amortized O(1) per partition).
//
// Each partition is emitted as a non-decreasing sequence of positive parts.
// The emission order is the order induced by the state transitions (ascending
// compositions), and is part of the contract: consumers may rely on it for
// deduplication-free enumeration.
//
// A Generator is not safe for concurrent use; every call to Next mutates
// internal state.
type Generator struct {
	// a is the working buffer. Only a prefix is live at any step; the tail
	// holds stale values from earlier partitions and must not be read.
	a []int

	// k marks the boundary of the settled portion of the buffer.
	k int

	// y is the residual value not yet assigned to buffer slots.
	y int

	// x and l carry the pending split while phase == phaseInner.
	x int
	l int

	phase phase

	// produced counts partitions emitted so far. Read by Pool on release.
	produced int
}

// New creates a generator for the partitions of n.
//
// The working buffer of n+1 entries is allocated up front and reused for
// every partition. New panics if n is negative.
//
// Parameters:
//   - n: The non-negative integer to partition
//
// Returns:
//   - *Generator: Generator positioned before the first partition
//
// Example:
//
//	g := partgen.New(4)
//	for p, ok := g.Next(); ok; p, ok = g.Next() {
//	    fmt.Println(p)
//	}
func New(n int) *Generator {
	if n < 0 {
		panic("partgen: negative n")
	}

	g := &Generator{a: make([]int, n+1)}
	if n > 0 {
		g.k = 1
		g.y = n - 1
	}

	return g
}

// Recycle creates a generator for the partitions of n on top of a
// caller-supplied buffer, avoiding an allocation when the buffer's capacity
// is at least n+1.
//
// Any buffer can be passed: its contents are discarded and it is zero-filled
// to exactly n+1 entries. The buffer reallocates only if its capacity is
// insufficient. The resulting generator produces the identical sequence of
// partitions as New(n). Recycle panics if n is negative.
//
// Parameters:
//   - n: The non-negative integer to partition
//   - buf: Buffer to take over (typically from a previous generator's End)
//
// Returns:
//   - *Generator: Generator positioned before the first partition
//
// Example:
//
//	g := partgen.New(10)
//	drain(g)
//	g = partgen.Recycle(12, g.End())
func Recycle(n int, buf []int) *Generator {
	if n < 0 {
		panic("partgen: negative n")
	}

	if cap(buf) < n+1 {
		buf = make([]int, n+1)
	} else {
		buf = buf[:n+1]
		clear(buf)
	}

	g := &Generator{a: buf}
	if n > 0 {
		g.k = 1
		g.y = n - 1
	}

	return g
}

// Next advances the generator by exactly one partition.
//
// The returned slice is a view into the generator's working buffer: it is
// valid only until the next call to Next, NextCopy, or End. Callers that
// retain partitions across calls must clone the slice or use NextCopy.
//
// After the final partition ([n] for n > 0, the empty partition for n == 0)
// Next returns (nil, false), and keeps doing so on every subsequent call
// without mutating further.
//
// Returns:
//   - []int: The live prefix holding the next partition (non-decreasing,
//     positive parts summing to n)
//   - bool: false once the enumeration is exhausted
func (g *Generator) Next() ([]int, bool) {
	if g.phase == phaseInner {
		g.x++
		g.y--

		if g.x <= g.y {
			g.a[g.k] = g.x
			g.a[g.l] = g.y
			g.produced++

			return g.a[:g.k+2], true
		}

		g.a[g.k] = g.x + g.y
		g.y = g.x + g.y - 1
		g.phase = phaseOuter
		g.produced++

		return g.a[:g.k+1], true
	}

	if g.k == 0 {
		// Only n = 0 starts here with an untouched buffer of length one;
		// shrinking it to zero both emits the empty partition and marks
		// the generator permanently exhausted.
		if len(g.a) == 1 {
			g.a = g.a[:0]
			g.produced++

			return g.a, true
		}

		return nil, false
	}

	g.k--
	x := g.a[g.k] + 1

	// Settle the longest possible run of equal small parts. Across the whole
	// enumeration this loop's total work is bounded: k only increases here
	// and is decremented once per call.
	for 2*x <= g.y {
		g.a[g.k] = x
		g.y -= x
		g.k++
	}

	l := g.k + 1

	if x <= g.y {
		g.a[g.k] = x
		g.a[l] = g.y
		g.x, g.l = x, l
		g.phase = phaseInner
		g.produced++

		return g.a[:g.k+2], true
	}

	// The remainder cannot be split under the ordering constraint; fold it
	// into one part and carry the residual into the next call.
	g.a[g.k] = x + g.y
	g.y = x + g.y - 1
	g.produced++

	return g.a[:g.k+1], true
}

// NextCopy advances the generator by one partition and returns an owned
// copy of it, safe to retain across further calls.
//
// Returns:
//   - []int: Freshly allocated copy of the next partition
//   - bool: false once the enumeration is exhausted
func (g *Generator) NextCopy() ([]int, bool) {
	p, ok := g.Next()
	if !ok {
		return nil, false
	}

	out := make([]int, len(p))
	copy(out, p)

	return out, true
}

// Produced reports how many partitions the generator has emitted so far.
func (g *Generator) Produced() int {
	return g.produced
}

// End consumes the generator and hands its working buffer back to the
// caller for reuse (typically via Recycle).
//
// The returned buffer's contents are stale algorithm state and must not be
// interpreted. The generator must not be used after End.
//
// Returns:
//   - []int: The working buffer, contents unspecified
func (g *Generator) End() []int {
	a := g.a
	g.a = nil

	return a
}
