package interngo

import (
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// partition is the type-erased view of a Pool held by the Store registry.
// PoolOf downcasts it back to the concrete *Pool[T]; erasure never leaks
// into the public API.
type partition interface {
	sweep() int
	reset() int
	size() int
	stats() PartitionStats
}

// Store is a registry of type-partitioned intern pools. Values of
// different types never share slots or contend on a lock, and hashes are
// never compared across partitions. Partitions are created lazily on
// first use and live as long as the store; the store itself has no
// teardown (the optional background sweeper has StartSweeper/StopSweeper).
//
// The package-level Intern, GC, Len and Clear operate on the process-wide
// default store; NewStore creates independent stores for callers that
// need their own interning domain, logger or metrics.
type Store struct {
	mu         sync.RWMutex
	partitions map[reflect.Type]partition

	logger  *Logger
	metrics MetricsCollector

	// Background sweeping. The gate keeps passes from overlapping; the
	// pacer floors the frequency of release-triggered sweeps.
	sweepGate          *semaphore.Weighted
	sweepPace          *rate.Limiter
	autoSweepThreshold int64
	released           atomic.Int64

	sweeperMu   sync.Mutex
	sweeperStop chan struct{}
}

// NewStore creates an empty store.
func NewStore(optFns ...Option) *Store {
	o := applyOptions(optFns)

	s := &Store{
		partitions:         make(map[reflect.Type]partition),
		logger:             o.logger,
		metrics:            o.metricsCollector,
		sweepGate:          semaphore.NewWeighted(1),
		autoSweepThreshold: o.autoSweepThreshold,
	}
	if o.autoSweepThreshold > 0 {
		s.sweepPace = rate.NewLimiter(rate.Every(autoSweepMinInterval), 1)
	}
	if o.sweepInterval > 0 {
		s.StartSweeper(o.sweepInterval)
	}
	return s
}

// GC sweeps every partition: each slot whose only holder is the store is
// removed from its pool. Slots with outstanding handles are untouched, as
// are the handles themselves; a removed slot stays alive until its last
// handle releases. Partitions are swept concurrently; there is no
// cross-partition atomicity, and a single bounded pass is made per
// partition. Callable at any time from any goroutine. Returns the number
// of reclaimed slots.
func (s *Store) GC() int {
	start := time.Now()
	parts := s.snapshot()

	var reclaimed atomic.Int64
	var wg sync.WaitGroup
	wg.Add(len(parts))
	for _, part := range parts {
		go func(part partition) {
			defer wg.Done()
			reclaimed.Add(int64(part.sweep()))
		}(part)
	}
	wg.Wait()

	n := int(reclaimed.Load())
	d := time.Since(start)
	s.metrics.RecordGC(d, n)
	s.logger.LogGC(n, d)
	return n
}

// Len returns the total slot count across all partitions, including slots
// a sweep would reclaim.
func (s *Store) Len() int {
	n := 0
	for _, part := range s.snapshot() {
		n += part.size()
	}
	return n
}

// Clear drops the store's hold on every slot and empties every partition.
// Outstanding handles remain valid. Len reports 0 afterwards; subsequent
// interns repopulate from scratch.
func (s *Store) Clear() {
	start := time.Now()

	removed := 0
	for _, part := range s.snapshot() {
		removed += part.reset()
	}

	d := time.Since(start)
	s.metrics.RecordClear(d, removed)
	s.logger.LogClear(removed, d)
}

// snapshot returns the current partition list. Partitions are never
// removed from the registry, so the copy stays usable without the lock.
func (s *Store) snapshot() []partition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	parts := make([]partition, 0, len(s.partitions))
	for _, part := range s.partitions {
		parts = append(parts, part)
	}
	return parts
}

// defaultStore backs the package-level API. It lives for the process
// lifetime; partitions initialize lazily on first use per type.
var defaultStore = NewStore()

// Default returns the process-wide store used by the package-level
// Intern, GC, Len and Clear.
func Default() *Store {
	return defaultStore
}

// Intern deduplicates value into the default store. See Pool.Intern for
// the contract, including the hash-collision unification policy.
func Intern[T Value[T]](value T) Handle[T] {
	return PoolOf[T](defaultStore).Intern(value)
}

// GC sweeps the default store. See Store.GC.
func GC() int {
	return defaultStore.GC()
}

// Len returns the total slot count of the default store. See Store.Len.
func Len() int {
	return defaultStore.Len()
}

// Clear empties the default store. See Store.Clear.
func Clear() {
	defaultStore.Clear()
}
