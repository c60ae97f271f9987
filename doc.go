// Package interngo provides a process-wide value interner with manual,
// reference-count-driven garbage collection.
//
// Interngo deduplicates immutable values of arbitrary shareable types:
// interning the "same" value twice yields handles that share one backing
// allocation. Unlike a cache, it never evicts on capacity or time:
// slots are reclaimed only when an explicit sweep (GC) finds no
// outstanding handle referencing them.
//
// # Quick Start
//
// Package-level API on the process-wide default store:
//
//	a := interngo.Intern(interngo.String("alpha"))
//	b := interngo.Intern(interngo.String("alpha"))
//	fmt.Println(a == b)      // true: one shared slot
//	fmt.Println(a.Value())   // alpha
//
//	a.Release()
//	b.Release()
//	interngo.GC()            // reclaims the now-unreferenced slot
//
// Dedicated stores with their own partitions, logger and metrics:
//
//	s := interngo.NewStore(interngo.WithLogLevel(slog.LevelDebug))
//	pool := interngo.PoolOf[interngo.String](s)
//	h := pool.Intern("alpha")
//
// Custom types implement Value by feeding identity bytes to the fixed
// XXH64 digest:
//
//	type Point struct{ X, Y int64 }
//
//	func (p Point) WriteHash(d *xxhash.Digest) {
//	    var buf [16]byte
//	    binary.LittleEndian.PutUint64(buf[:8], uint64(p.X))
//	    binary.LittleEndian.PutUint64(buf[8:], uint64(p.Y))
//	    d.Write(buf[:])
//	}
//	func (p Point) Equal(o Point) bool { return p == o }
//
// # Collision Unification
//
// Deduplication is by 64-bit hash alone; Equal is never consulted. Two
// distinct values of the same type that collide on XXH64 are permanently
// treated as identical: the second Intern returns a handle to the first
// value's slot. This is a deliberate speed/simplicity trade-off, not a
// bug. Callers needing strict correctness must choose a
// collision-resistant identity encoding or a different mechanism. Values
// of different types never unify; each type has its own partition, and
// hashes are never compared across partitions.
//
// # Ownership and GC
//
// Every slot is held once by its store and once per outstanding handle.
// Clone duplicates a handle (one atomic increment); Release gives a
// handle up. Releasing never removes a slot; only GC does, and only
// when the store's hold is the last one. A handle stays dereferenceable
// for its entire lifetime, even after GC or Clear removes its slot from
// the store. Release every handle exactly once, including each Clone.
//
// # Concurrency
//
// All operations are safe for concurrent use. Each type partition has its
// own lock, so interning different types never contends. Intern, Clone,
// Release and GC are synchronous; there is no cancellation. An optional
// background sweeper (StartSweeper, WithSweepInterval, WithAutoSweep)
// runs GC on a timer or after a number of releases.
package interngo
