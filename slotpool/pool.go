// Package slotpool provides a generic recycling pool for ledger entries,
// so a Manager does not allocate a fresh heap object on every
// RequestComputation under steady-state load.
package slotpool

// Pool allocates and recycles values of type T. Get and Put must be safe
// for concurrent use.
type Pool[T any] interface {
	// Get returns a value from the pool, creating one via the
	// constructor passed to NewDynamic/NewFixed if none is available.
	Get() T

	// Put returns a value to the pool for reuse. Callers must not use
	// the value again after Put.
	Put(T)
}
