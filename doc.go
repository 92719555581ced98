// Package computation provides a ComputationManager: a monitor that
// mediates deferred, typed computations between requesting clients and
// one or more compute engines.
//
// Constructors
//   - New(*Config): primary constructor, accepts a Config value directly.
//   - NewOptions(opts ...Option): functional-options constructor layered
//     over the same defaults.
//
// Defaults
// Unless overridden, the following defaults apply to a newly created
// Manager:
//   - MaxQueueSize: 10 (per ComputationType)
//   - FixedSlotPoolSize: 0 (dynamic, GC-driven ledger-slot pool)
//   - Metrics: nil (metrics.NewNoopProvider())
//
// Facades
// Client exposes the request-side operations (RequestComputation,
// AbortComputation, GetNextResult); Engine exposes the compute-side
// operations (GetWork, ContinueWork, ProvideResult). *Manager implements
// both; callers that only need one side should depend on the narrower
// interface.
//
// Ordering
// Results are delivered through GetNextResult in the same order their
// requests were submitted through RequestComputation, regardless of the
// order in which engines complete the underlying work. Aborted
// computations are elided from that order transparently.
package computation
