package interngo

import "time"

// autoSweepMinInterval floors the frequency of release-triggered sweeps.
// Releases beyond the threshold inside the floor window are absorbed and
// trigger again once the window passes.
const autoSweepMinInterval = time.Second

// StartSweeper launches a background goroutine that calls GC every
// interval. A second call while the sweeper is running is a no-op. Passes
// are gated so a slow sweep is skipped rather than stacked.
func (s *Store) StartSweeper(interval time.Duration) {
	s.sweeperMu.Lock()
	defer s.sweeperMu.Unlock()

	if s.sweeperStop != nil {
		return
	}
	stop := make(chan struct{})
	s.sweeperStop = stop
	s.logger.LogSweeperStarted(interval)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweepOnce()
			case <-stop:
				return
			}
		}
	}()
}

// StopSweeper stops the background sweeper. Safe to call when the sweeper
// is not running.
func (s *Store) StopSweeper() {
	s.sweeperMu.Lock()
	defer s.sweeperMu.Unlock()

	if s.sweeperStop == nil {
		return
	}
	close(s.sweeperStop)
	s.sweeperStop = nil
	s.logger.LogSweeperStopped()
}

// sweepOnce runs one GC pass unless another is already in flight.
func (s *Store) sweepOnce() {
	if !s.sweepGate.TryAcquire(1) {
		return
	}
	defer s.sweepGate.Release(1)

	s.GC()
}

// noteRelease feeds the release-triggered auto-sweep. Disabled (the common
// case) it is a single field read; enabled it is an atomic increment until
// the threshold is reached, after which a paced background sweep fires.
func (s *Store) noteRelease() {
	if s.autoSweepThreshold <= 0 {
		return
	}
	if s.released.Add(1) < s.autoSweepThreshold {
		return
	}
	s.released.Store(0)
	if !s.sweepPace.Allow() {
		return
	}
	s.logger.LogAutoSweep(s.autoSweepThreshold)
	go s.sweepOnce()
}
