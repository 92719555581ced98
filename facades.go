package computation

// Client is the subset of Manager's operations used by request-side
// callers: submit a computation, cancel it, and drain results in
// submission order.
type Client interface {
	RequestComputation(c Computation) (uint64, error)
	AbortComputation(id uint64)
	GetNextResult() (Result, error)
}

// Engine is the subset of Manager's operations used by compute-side
// callers: pull work of a given type, check whether it is still wanted,
// and hand back its result.
type Engine interface {
	GetWork(t ComputationType) (Request, error)
	ContinueWork(id uint64) bool
	ProvideResult(r Result)
}

var (
	_ Client = (*Manager)(nil)
	_ Engine = (*Manager)(nil)
)
