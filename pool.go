package interngo

import (
	"reflect"
	"sync"
	"time"

	"github.com/hupe1980/interngo/internal/hash"
)

// Pool is the typed view of one type partition of a Store: the mapping
// from 64-bit hash to shared slot for values of type T. Pools are created
// lazily on first use and live as long as their store; use PoolOf to
// obtain one. All methods are safe for concurrent use.
//
// Go methods cannot introduce type parameters, which is why the generic
// intern entry point lives here rather than on Store.
type Pool[T Value[T]] struct {
	store *Store
	typ   reflect.Type

	mu    sync.RWMutex
	slots map[uint64]*slot[T]
}

// PoolOf returns s's pool for type T, creating it on first use. The
// returned pool is shared: every caller asking for the same T gets the
// same pool. Keeping a Pool on a hot path amortizes the registry lookup.
func PoolOf[T Value[T]](s *Store) *Pool[T] {
	t := reflect.TypeFor[T]()

	s.mu.RLock()
	part, ok := s.partitions[t]
	s.mu.RUnlock()
	if ok {
		return part.(*Pool[T])
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if part, ok := s.partitions[t]; ok {
		return part.(*Pool[T])
	}

	p := &Pool[T]{
		store: s,
		typ:   t,
		slots: make(map[uint64]*slot[T]),
	}
	s.partitions[t] = p
	s.logger.LogPartitionCreated(t.String())
	return p
}

// Intern deduplicates value into the pool and returns a handle to the
// shared slot. If a slot for the value's hash already exists, Intern
// increments its share count and returns a handle aliasing it without
// comparing the new value to the stored one; distinct values that collide
// on the 64-bit hash are permanently unified (see the package
// documentation). Otherwise the value is stored in a fresh slot held once
// by the pool and once by the returned handle.
//
// The caller owns the returned handle and must Release it eventually.
func (p *Pool[T]) Intern(value T) Handle[T] {
	start := time.Now()

	d := hash.AcquireDigest()
	value.WriteHash(d)
	key := d.Sum64()
	hash.ReleaseDigest(d)

	// Fast path. Taking a new handle out of the pool must exclude a
	// concurrent sweep; sweep runs under the write lock, so the read lock
	// suffices, and the count update itself is atomic.
	p.mu.RLock()
	sl, ok := p.slots[key]
	if ok {
		sl.refs.Add(1)
	}
	p.mu.RUnlock()
	if ok {
		p.store.metrics.RecordIntern(time.Since(start), true)
		return Handle[T]{slot: sl}
	}

	p.mu.Lock()
	if sl, ok := p.slots[key]; ok {
		sl.refs.Add(1)
		p.mu.Unlock()
		p.store.metrics.RecordIntern(time.Since(start), true)
		return Handle[T]{slot: sl}
	}

	sl = &slot[T]{value: value, hash: key, owner: p}
	sl.refs.Store(2) // the pool's hold plus the returned handle
	p.slots[key] = sl
	p.mu.Unlock()

	p.store.metrics.RecordIntern(time.Since(start), false)
	p.store.logger.LogIntern(p.typ.String(), key)
	return Handle[T]{slot: sl}
}

// Len returns the number of slots currently listed in the pool, including
// slots with no outstanding handles that a sweep would reclaim.
func (p *Pool[T]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.slots)
}

// GC sweeps this pool only: every slot whose only holder is the pool
// itself is removed. Returns the number of reclaimed slots.
func (p *Pool[T]) GC() int {
	start := time.Now()
	n := p.sweep()
	d := time.Since(start)
	p.store.metrics.RecordGC(d, n)
	p.store.logger.LogGC(n, d)
	return n
}

// Clear drops the pool's hold on every slot and empties the pool.
// Outstanding handles remain valid; their payloads are reclaimed by the
// runtime once the last handle releases.
func (p *Pool[T]) Clear() {
	start := time.Now()
	n := p.reset()
	d := time.Since(start)
	p.store.metrics.RecordClear(d, n)
	p.store.logger.LogClear(n, d)
}

// sweep removes every slot whose share count equals exactly the pool's
// hold. One bounded pass; a release that lands mid-pass is caught by the
// next sweep.
func (p *Pool[T]) sweep() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	reclaimed := 0
	for key, sl := range p.slots {
		// Stable under the write lock: the count can only grow via a
		// locked intern hit or a Clone of a surviving handle, and a count
		// of 1 rules out both.
		if sl.refs.Load() == 1 {
			delete(p.slots, key)
			sl.refs.Add(-1)
			reclaimed++
		}
	}
	return reclaimed
}

// reset drops the pool's hold on every slot and empties the map.
func (p *Pool[T]) reset() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, sl := range p.slots {
		sl.refs.Add(-1)
	}
	removed := len(p.slots)
	clear(p.slots)
	return removed
}

// size returns the slot count for the erased registry view.
func (p *Pool[T]) size() int {
	return p.Len()
}

// stats snapshots this partition under its read lock.
func (p *Pool[T]) stats() PartitionStats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	live := 0
	for _, sl := range p.slots {
		if sl.refs.Load() > 1 {
			live++
		}
	}
	return PartitionStats{
		Type:  p.typ.String(),
		Slots: len(p.slots),
		Live:  live,
	}
}
