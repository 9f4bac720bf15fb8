package bag

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// seed is fixed for the process so HashCode is stable across calls.
var seed = maphash.MakeSeed()

// HashCode folds the per-entry hashes into a single value in entry order. It
// is consistent with Equals within one process; values are not meant to be
// persisted.
func (b *Bag[E]) HashCode() uint64 {
	digest := xxhash.New()

	var buf [8]byte
	for _, v := range b.items {
		binary.LittleEndian.PutUint64(buf[:], maphash.Comparable(seed, v))
		// Write on a Digest never fails.
		_, _ = digest.Write(buf[:])
	}

	return digest.Sum64()
}
