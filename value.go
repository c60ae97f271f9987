package interngo

import (
	"bytes"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/hupe1980/interngo/internal/hash"
)

// Value is the capability constraint for internable types.
//
// WriteHash feeds the value's identity bytes into the store's fixed XXH64
// digest; the hash function itself is owned by the library, implementations
// only choose which bytes identify the value. WriteHash must be
// deterministic: equal values must write equal bytes, and the written bytes
// must not change for the lifetime of the value. Interned values are shared
// across goroutines without further synchronization, so they must be
// immutable once interned.
//
// Equal declares value equality for the type. Interning never consults it:
// deduplication is by hash alone, so two distinct values of the same type
// whose WriteHash output collides are permanently unified on first intern
// (see the package documentation). The method exists so that stricter,
// equality-checked variants remain possible without changing this
// constraint.
type Value[T any] interface {
	// WriteHash writes the value's identity bytes to d.
	WriteHash(d *xxhash.Digest)

	// Equal reports whether the value equals other.
	Equal(other T) bool
}

// String is a ready-made internable string.
type String string

// WriteHash implements Value.
func (s String) WriteHash(d *xxhash.Digest) {
	_, _ = d.WriteString(string(s))
}

// Equal implements Value.
func (s String) Equal(other String) bool {
	return s == other
}

// Bytes is a ready-made internable byte slice. The slice must not be
// mutated after interning.
type Bytes []byte

// WriteHash implements Value.
func (b Bytes) WriteHash(d *xxhash.Digest) {
	_, _ = d.Write(b)
}

// Equal implements Value.
func (b Bytes) Equal(other Bytes) bool {
	return bytes.Equal(b, other)
}

// Int64 is a ready-made internable signed integer.
type Int64 int64

// WriteHash implements Value.
func (i Int64) WriteHash(d *xxhash.Digest) {
	hash.WriteUint64(d, uint64(i))
}

// Equal implements Value.
func (i Int64) Equal(other Int64) bool {
	return i == other
}

// Uint64 is a ready-made internable unsigned integer.
type Uint64 uint64

// WriteHash implements Value.
func (u Uint64) WriteHash(d *xxhash.Digest) {
	hash.WriteUint64(d, uint64(u))
}

// Equal implements Value.
func (u Uint64) Equal(other Uint64) bool {
	return u == other
}

// Float64 is a ready-made internable float. Identity follows the bit
// pattern (math.Float64bits), so NaNs with equal bits intern together.
type Float64 float64

// WriteHash implements Value.
func (f Float64) WriteHash(d *xxhash.Digest) {
	hash.WriteUint64(d, math.Float64bits(float64(f)))
}

// Equal implements Value.
func (f Float64) Equal(other Float64) bool {
	return f == other
}
