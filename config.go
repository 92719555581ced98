package computation

import (
	"fmt"

	"github.com/ygrebnov/computation/metrics"
)

// Config holds Manager configuration.
type Config struct {
	// MaxQueueSize is the maximum number of pending (not yet dispatched)
	// requests tolerated per ComputationType before RequestComputation
	// blocks. Must be a positive integer.
	// Default: 10
	MaxQueueSize uint

	// FixedSlotPoolSize, when non-zero, caps the number of live ledger
	// entries recycled by the internal slot pool at this value (see
	// slotpool.NewFixed). Zero (default) uses a GC-driven dynamic pool.
	// Default: 0 (dynamic pool)
	FixedSlotPoolSize uint

	// Metrics is the instrument provider used to record queue depth,
	// submission/delivery/abort counts, and dispatch latency. Nil
	// (default) records nothing.
	// Default: nil (metrics.NewNoopProvider())
	Metrics metrics.Provider
}

// defaultConfig centralizes default values for Config. These defaults are
// applied by both New (when cfg is nil) and NewOptions (options builder
// base).
func defaultConfig() Config {
	return Config{
		MaxQueueSize:      10,
		FixedSlotPoolSize: 0,
		Metrics:           nil,
	}
}

// validateConfig performs construction-time invariant checks.
func validateConfig(cfg *Config) error {
	if cfg.MaxQueueSize == 0 {
		return fmt.Errorf("%w: MaxQueueSize must be positive", ErrInvalidConfig)
	}
	return nil
}
