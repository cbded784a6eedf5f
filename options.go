package ecs

import (
	"go.uber.org/zap"
	"github.com/prometheus/client_golang/prometheus"
)

// worldConfig collects the settings applied by WorldOption functions.
type worldConfig struct {
	initialCapacity int
	logger          *zap.Logger
	metricsRegistry prometheus.Registerer
}

func defaultWorldConfig() *worldConfig {
	return &worldConfig{
		initialCapacity: 1024,
		logger:          zap.NewNop(),
		metricsRegistry: nil,
	}
}

// WorldOption configures a World at construction time.
type WorldOption func(*worldConfig)

// WithInitialCapacity reserves room for n entities up front, avoiding
// repeated slot-map growth during early simulation.
func WithInitialCapacity(n int) WorldOption {
	return func(c *worldConfig) { c.initialCapacity = n }
}

// WithLogger sets the logger a World reports structural events and
// warnings to. The default is a no-op logger.
func WithLogger(l *zap.Logger) WorldOption {
	return func(c *worldConfig) { c.logger = l }
}

// WithMetricsRegistry registers the world's entity/chunk/tick metrics with
// reg. If unset, the instruments are still updated but are registered
// with no registry, so nothing can scrape them.
func WithMetricsRegistry(reg prometheus.Registerer) WorldOption {
	return func(c *worldConfig) { c.metricsRegistry = reg }
}

// schedulerConfig collects the settings applied by SchedulerOption
// functions.
type schedulerConfig struct {
	parallel bool
	logger   *zap.Logger
}

func defaultSchedulerConfig(w *World) *schedulerConfig {
	return &schedulerConfig{parallel: true, logger: w.logger}
}

// SchedulerOption configures a Scheduler at construction time.
type SchedulerOption func(*schedulerConfig)

// WithSequentialExecution disables parallel block execution; every block
// runs on the calling goroutine in insertion order. Useful for
// deterministic tests and debugging.
func WithSequentialExecution() SchedulerOption {
	return func(c *schedulerConfig) { c.parallel = false }
}
