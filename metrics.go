package interngo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    internCounter   prometheus.Counter
//	    internHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordIntern(duration time.Duration, hit bool) {
//	    p.internCounter.Inc()
//	    // ... record hit state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordIntern is called after each intern operation.
	// duration is the time taken; hit is true when an existing slot was
	// shared and false when a fresh slot was created.
	RecordIntern(duration time.Duration, hit bool)

	// RecordGC is called after each sweep, including background passes.
	// reclaimed is the number of slots removed.
	RecordGC(duration time.Duration, reclaimed int)

	// RecordClear is called after each clear operation.
	// removed is the number of slots dropped.
	RecordClear(duration time.Duration, removed int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIntern(time.Duration, bool) {}
func (NoopMetricsCollector) RecordGC(time.Duration, int)      {}
func (NoopMetricsCollector) RecordClear(time.Duration, int)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InternCount      atomic.Int64
	InternHits       atomic.Int64
	InternTotalNanos atomic.Int64
	GCCount          atomic.Int64
	GCReclaimed      atomic.Int64
	GCTotalNanos     atomic.Int64
	ClearCount       atomic.Int64
	ClearRemoved     atomic.Int64
}

// RecordIntern implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIntern(duration time.Duration, hit bool) {
	b.InternCount.Add(1)
	b.InternTotalNanos.Add(duration.Nanoseconds())
	if hit {
		b.InternHits.Add(1)
	}
}

// RecordGC implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGC(duration time.Duration, reclaimed int) {
	b.GCCount.Add(1)
	b.GCReclaimed.Add(int64(reclaimed))
	b.GCTotalNanos.Add(duration.Nanoseconds())
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear(duration time.Duration, removed int) {
	b.ClearCount.Add(1)
	b.ClearRemoved.Add(int64(removed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InternCount:    b.InternCount.Load(),
		InternHits:     b.InternHits.Load(),
		InternAvgNanos: b.getAvgInternNanos(),
		GCCount:        b.GCCount.Load(),
		GCReclaimed:    b.GCReclaimed.Load(),
		GCAvgNanos:     b.getAvgGCNanos(),
		ClearCount:     b.ClearCount.Load(),
		ClearRemoved:   b.ClearRemoved.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgInternNanos() int64 {
	count := b.InternCount.Load()
	if count == 0 {
		return 0
	}
	return b.InternTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgGCNanos() int64 {
	count := b.GCCount.Load()
	if count == 0 {
		return 0
	}
	return b.GCTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InternCount    int64
	InternHits     int64
	InternAvgNanos int64
	GCCount        int64
	GCReclaimed    int64
	GCAvgNanos     int64
	ClearCount     int64
	ClearRemoved   int64
}
