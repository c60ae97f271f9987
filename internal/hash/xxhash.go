package hash

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// digestPool recycles digest state across hash computations.
// Acquiring from the pool avoids one allocation per interned value.
var digestPool = sync.Pool{
	New: func() any {
		return xxhash.New()
	},
}

// AcquireDigest returns a reset XXH64 digest from the pool.
// Callers must return it with ReleaseDigest when done.
func AcquireDigest() *xxhash.Digest {
	return digestPool.Get().(*xxhash.Digest)
}

// ReleaseDigest resets d and returns it to the pool.
func ReleaseDigest(d *xxhash.Digest) {
	d.Reset()
	digestPool.Put(d)
}

// Sum64 computes the XXH64 hash of data.
// Uses vectorized assembly on amd64 and arm64.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64String computes the XXH64 hash of s without copying it.
func Sum64String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// WriteUint64 writes v to d in little-endian byte order.
func WriteUint64(d *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = d.Write(buf[:])
}
