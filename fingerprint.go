package partgen

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns a 64-bit xxh3 fingerprint of a partition.
//
// The hash covers the little-endian encoding of the parts in the order
// given, so two partitions have equal fingerprints exactly when their
// canonical (non-decreasing) part sequences are byte-for-byte equal. The
// empty partition hashes to the xxh3 hash of no input.
//
// This is intended for dedup-style consumers that want to track which
// partitions they have seen without retaining the slices themselves.
//
// Parameters:
//   - parts: The partition's parts, in canonical non-decreasing order
//
// Returns:
//   - uint64: Fingerprint of the part sequence
func Fingerprint(parts []int) uint64 {
	h := xxh3.New()

	var buf [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(buf[:], uint64(p))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}
