package computation

import (
	"github.com/ygrebnov/computation/metrics"
)

// Option configures a Manager. Use NewOptions(opts...) to construct a
// Manager via options instead of a Config literal.
type Option func(*Config)

// WithMaxQueueSize sets the maximum tolerated per-type queue size (must be > 0).
func WithMaxQueueSize(n uint) Option {
	return func(cfg *Config) { cfg.MaxQueueSize = n }
}

// WithFixedSlotPool caps the internal ledger-entry pool at n live values
// instead of the default GC-driven dynamic pool.
func WithFixedSlotPool(n uint) Option {
	return func(cfg *Config) { cfg.FixedSlotPoolSize = n }
}

// WithMetrics installs a metrics.Provider used to record queue depth,
// submission/delivery/abort counts, and dispatch latency.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *Config) { cfg.Metrics = p }
}

// New constructs a Manager from cfg. If cfg is nil, defaults are used
// (MaxQueueSize: 10, dynamic slot pool, no-op metrics). Returns
// ErrInvalidConfig if cfg fails validation.
func New(cfg *Config) (*Manager, error) {
	if cfg == nil {
		c := defaultConfig()
		cfg = &c
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return newManager(cfg), nil
}

// NewOptions constructs a Manager using functional options layered over
// the default Config. It is equivalent to building a Config and calling
// New.
func NewOptions(opts ...Option) (*Manager, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			panic("computation: nil option")
		}
		opt(&cfg)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return newManager(&cfg), nil
}
