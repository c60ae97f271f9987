package interngo

import (
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"github.com/hupe1980/interngo/internal/hash"
)

// slot is the shared backing storage for one interned value.
//
// refs counts every holder: the owning pool's hold (1 while the slot is
// listed in its pool) plus one per outstanding handle. A sweep removes the
// slot from its pool only when refs is exactly the pool's hold. Under the
// pool's write lock refs cannot grow: a new handle from the pool needs that
// lock, and Clone needs a surviving handle, which a count of 1 rules out.
type slot[T Value[T]] struct {
	value T
	hash  uint64
	refs  atomic.Int64
	owner *Pool[T]
}

// Handle is a shared-ownership reference to an interned value.
//
// Handles are issued by Intern and duplicated with Clone; every handle
// (including each Clone) must be released exactly once with Release. A
// handle stays dereferenceable for its entire lifetime, even after a sweep
// or Clear removes its slot from the store; removal only revokes future
// lookups.
//
// Two handles alias the same interned value iff they compare equal with ==.
// That identity is the authoritative equality for interned data; comparing
// payload contents is neither needed nor meaningful after interning.
//
// The zero Handle references nothing; Value, Clone and Release panic on it.
type Handle[T Value[T]] struct {
	slot *slot[T]
}

// Value returns the interned value. The value is shared and must be
// treated as read-only.
func (h Handle[T]) Value() T {
	if h.slot == nil {
		panic("interngo: Value on zero Handle")
	}
	return h.slot.value
}

// Clone returns a new handle aliasing the same slot. It is cheap (one
// atomic increment, no allocation) and safe to call from any goroutine.
func (h Handle[T]) Clone() Handle[T] {
	if h.slot == nil {
		panic("interngo: Clone on zero Handle")
	}
	h.slot.refs.Add(1)
	return h
}

// Release gives up this handle's hold on the slot. It never removes the
// slot from its pool; an unreferenced slot is reclaimed by the next sweep.
// Releasing more handles than were acquired panics once the count drops
// below zero (best-effort misuse detection).
func (h Handle[T]) Release() {
	if h.slot == nil {
		panic("interngo: Release on zero Handle")
	}
	if h.slot.refs.Add(-1) < 0 {
		panic("interngo: Handle released more times than acquired")
	}
	h.slot.owner.store.noteRelease()
}

// Refs returns the slot's current share count, including the store's own
// hold while the slot is listed in its pool. It returns 0 for the zero
// Handle. The value is a point-in-time snapshot.
func (h Handle[T]) Refs() int64 {
	if h.slot == nil {
		return 0
	}
	return h.slot.refs.Load()
}

// Equal reports whether both handles alias the same slot. Equivalent to ==.
func (h Handle[T]) Equal(other Handle[T]) bool {
	return h == other
}

// WriteHash writes the slot's cached hash, letting handles serve as fields
// of other internable values without re-hashing the payload. The zero
// Handle writes a fixed marker.
//
// A handle stored inside another interned value does not count as held by
// it: keep a Clone alive for as long as the containing value stays interned.
func (h Handle[T]) WriteHash(d *xxhash.Digest) {
	if h.slot == nil {
		hash.WriteUint64(d, 0)
		return
	}
	hash.WriteUint64(d, h.slot.hash)
}
