package interngo

import (
	"cmp"
	"slices"
)

// Stats is a point-in-time snapshot of a store.
type Stats struct {
	// Partitions is the number of type partitions created so far.
	Partitions int
	// Slots is the total slot count across all partitions.
	Slots int
}

// PartitionStats is a point-in-time snapshot of one type partition.
type PartitionStats struct {
	// Type is the partition's Go type, e.g. "interngo.String".
	Type string
	// Slots is the partition's slot count.
	Slots int
	// Live is the number of slots with at least one outstanding handle;
	// the remaining Slots - Live would be reclaimed by a sweep.
	Live int
}

// Stats returns a snapshot of the store. Each partition is read under its
// own lock; the totals are not atomic across partitions.
func (s *Store) Stats() Stats {
	parts := s.snapshot()

	st := Stats{Partitions: len(parts)}
	for _, part := range parts {
		st.Slots += part.size()
	}
	return st
}

// PartitionStats returns per-partition snapshots, sorted by type name for
// stable output.
func (s *Store) PartitionStats() []PartitionStats {
	parts := s.snapshot()

	out := make([]PartitionStats, 0, len(parts))
	for _, part := range parts {
		out = append(out, part.stats())
	}
	slices.SortFunc(out, func(a, b PartitionStats) int {
		return cmp.Compare(a.Type, b.Type)
	})
	return out
}
