package computation

import "errors"

const Namespace = "computation"

var (
	// ErrStopped is returned by RequestComputation, GetWork, and
	// GetNextResult once the Manager has been stopped before or during
	// their wait. It is terminal: no subsequent call on the same Manager
	// is meaningful.
	ErrStopped = errors.New(Namespace + ": manager stopped")

	// ErrInvalidConfig is returned by New/NewOptions when construction
	// parameters fail validation.
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")

	// ErrUnknownComputationType is returned when a caller passes a
	// ComputationType outside the closed enumeration.
	ErrUnknownComputationType = errors.New(Namespace + ": unknown computation type")
)
