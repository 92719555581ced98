package metrics

// Provider constructs instruments used to record metrics.
// Implementations must be safe for concurrent use.
//
// Keep this interface minimal and stable. If you need new capabilities later,
// introduce separate optional interfaces rather than expanding this surface.
type Provider interface {
	Counter(name string, opts ...InstrumentOption) Counter
	UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter
	Histogram(name string, opts ...InstrumentOption) Histogram
}

// Counter records monotonic counts.
// Methods must be safe for concurrent use.
type Counter interface {
	Add(n int64)
}

// UpDownCounter records values that can move up or down (e.g., current in-flight).
// Methods must be safe for concurrent use.
type UpDownCounter interface {
	Add(n int64)
}

// Histogram records distribution of float64 measurements (e.g., durations in seconds).
// Methods must be safe for concurrent use.
type Histogram interface {
	Record(v float64)
}

// InstrumentConfig carries optional instrument metadata. It's advisory only.
type InstrumentConfig struct {
	Description string
	Unit        string
	// Attributes are static key-value pairs associated with the instrument itself.
	// Keep cardinality bounded. Implementations may ignore attributes.
	Attributes map[string]string
}

// InstrumentOption mutates InstrumentConfig.
type InstrumentOption func(*InstrumentConfig)

// WithDescription sets an advisory description for the instrument.
func WithDescription(desc string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Description = desc }
}

// WithUnit sets an advisory unit for the instrument (e.g., "1", "seconds").
func WithUnit(unit string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Unit = unit }
}

// WithAttributes attaches static attributes to the instrument (bounded cardinality only).
func WithAttributes(attrs map[string]string) InstrumentOption {
	return func(c *InstrumentConfig) {
		if len(attrs) == 0 {
			return
		}
		// copy to avoid external mutation
		if c.Attributes == nil {
			c.Attributes = make(map[string]string, len(attrs))
		}
		for k, v := range attrs {
			c.Attributes[k] = v
		}
	}
}

// CategoryUpDownCounters holds one UpDownCounter per category, for
// callers that need to track a small, fixed set of labeled gauges (e.g.
// queue depth broken out by a closed set of request types) without
// hand-rolling the per-category construction loop at every call site.
//
// Categories are distinguished by baking label into the instrument name
// (in addition to attaching it via WithAttributes), since a Provider is
// free to key instrument identity purely on name and ignore attributes
// entirely — BasicProvider does exactly that.
type CategoryUpDownCounters struct {
	counters []UpDownCounter
}

// NewCategoryUpDownCounters creates n UpDownCounter instruments, one per
// category i in [0,n), each named name+"{category="+label(i)+"}". p may
// be nil, in which case a NoopProvider is used.
func NewCategoryUpDownCounters(p Provider, name string, n int, label func(i int) string) *CategoryUpDownCounters {
	if p == nil {
		p = NewNoopProvider()
	}
	counters := make([]UpDownCounter, n)
	for i := 0; i < n; i++ {
		l := label(i)
		counters[i] = p.UpDownCounter(
			name+"{category="+l+"}",
			WithAttributes(map[string]string{"category": l}),
		)
	}
	return &CategoryUpDownCounters{counters: counters}
}

// Inc increments the counter for category i.
func (c *CategoryUpDownCounters) Inc(i int) { c.counters[i].Add(1) }

// Dec decrements the counter for category i.
func (c *CategoryUpDownCounters) Dec(i int) { c.counters[i].Add(-1) }
