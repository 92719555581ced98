package computation

import "fmt"

// ComputationType identifies the routing class of a Computation. The set is
// closed and fixed at compile time; per-type structures (queues, condition
// variables) are sized to match.
type ComputationType int

const (
	TypeA ComputationType = iota
	TypeB
	TypeC

	numComputationTypes = iota
)

// String implements fmt.Stringer.
func (t ComputationType) String() string {
	switch t {
	case TypeA:
		return "A"
	case TypeB:
		return "B"
	case TypeC:
		return "C"
	default:
		return fmt.Sprintf("ComputationType(%d)", int(t))
	}
}

func (t ComputationType) valid() bool {
	return t >= 0 && int(t) < numComputationTypes
}

// Computation is a submission payload: a type tag plus an immutable buffer
// of double-precision values. Payload is shared by reference between
// client, request, and engine, and must be treated as read-only once
// submitted.
type Computation struct {
	Type    ComputationType
	Payload []float64
}

// Request pairs a Computation with the id assigned to it by RequestComputation.
// Ids are globally unique and strictly increasing across the Manager's
// lifetime.
type Request struct {
	ID uint64
	Computation
}

// Result is the pair (id, value) produced by a compute engine via
// ProvideResult.
type Result struct {
	ID    uint64
	Value float64
}
