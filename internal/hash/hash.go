package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates an xxHash64 over several writes.
//
// It avoids materializing a contiguous buffer when hashing columnar data.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns a Digest ready for writing.
func NewDigest() Digest {
	return Digest{d: xxhash.New()}
}

// Write appends data to the running hash.
func (d Digest) Write(data []byte) {
	_, _ = d.d.Write(data)
}

// Sum64 returns the hash of everything written so far.
func (d Digest) Sum64() uint64 {
	return d.d.Sum64()
}
