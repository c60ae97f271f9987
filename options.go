package interngo

import (
	"log/slog"
	"time"
)

type options struct {
	metricsCollector   MetricsCollector
	logger             *Logger
	sweepInterval      time.Duration
	autoSweepThreshold int64
}

// Option configures Store constructor behavior.
//
// Options exist to avoid exploding the API surface (e.g. sweeper-specific
// constructor variants).
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Passing nil keeps the no-op collector.
//
// Example with BasicMetricsCollector:
//
//	metrics := &interngo.BasicMetricsCollector{}
//	s := interngo.NewStore(interngo.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Interns: %d, Avg latency: %dns\n", stats.InternCount, stats.InternAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Passing nil keeps the no-op logger.
//
// Example with JSON logging:
//
//	logger := interngo.NewJSONLogger(slog.LevelInfo)
//	s := interngo.NewStore(interngo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithSweepInterval starts the background sweeper with the given interval.
// Equivalent to calling StartSweeper on the new store. If d <= 0, no
// sweeper is started.
func WithSweepInterval(d time.Duration) Option {
	return func(o *options) {
		o.sweepInterval = d
	}
}

// WithAutoSweep triggers a background sweep after every threshold handle
// releases. Triggered sweeps are paced (at most one per second) and
// skipped while another pass is in flight, so the release fast path stays
// an atomic increment. If threshold <= 0, auto-sweep is disabled (the
// default).
func WithAutoSweep(threshold int64) Option {
	return func(o *options) {
		o.autoSweepThreshold = threshold
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
