package interngo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeper_PeriodicReclaim(t *testing.T) {
	s := NewStore()
	p := PoolOf[String](s)

	p.Intern("ephemeral").Release()
	require.Equal(t, 1, s.Len())

	s.StartSweeper(10 * time.Millisecond)
	defer s.StopSweeper()

	assert.Eventually(t, func() bool {
		return s.Len() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestSweeper_LeavesLiveSlotsAlone(t *testing.T) {
	s := NewStore(WithSweepInterval(10 * time.Millisecond))
	defer s.StopSweeper()
	p := PoolOf[String](s)

	held := p.Intern("held")
	p.Intern("dropped").Release()

	assert.Eventually(t, func() bool {
		return s.Len() == 1
	}, time.Second, 5*time.Millisecond)

	// Survive a few more passes.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, String("held"), held.Value())

	held.Release()
	assert.Eventually(t, func() bool {
		return s.Len() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestSweeper_StartStopIdempotent(t *testing.T) {
	s := NewStore()

	s.StartSweeper(time.Hour)
	s.StartSweeper(time.Hour) // second start is a no-op
	s.StopSweeper()
	s.StopSweeper() // stop when not running is a no-op

	// The sweeper can be restarted after a stop.
	s.StartSweeper(10 * time.Millisecond)
	defer s.StopSweeper()

	p := PoolOf[String](s)
	p.Intern("ephemeral").Release()
	assert.Eventually(t, func() bool {
		return s.Len() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestSweeper_AutoSweepOnReleases(t *testing.T) {
	const threshold = 10

	s := NewStore(WithAutoSweep(threshold))
	p := PoolOf[Int64](s)

	handles := make([]Handle[Int64], threshold)
	for i := range handles {
		handles[i] = p.Intern(Int64(i))
	}
	require.Equal(t, threshold, s.Len())

	// The last release crosses the threshold; by then every slot is
	// unreferenced, so the triggered sweep reclaims them all.
	for _, h := range handles {
		h.Release()
	}

	assert.Eventually(t, func() bool {
		return s.Len() == 0
	}, 2*time.Second, 5*time.Millisecond)
}
