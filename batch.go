package computation

import "errors"

// SubmitBatch submits each of computations to c in order via
// RequestComputation, returning the assigned ids in submission order.
// Submission stops at the first error (e.g. ErrStopped); ids already
// assigned are still returned alongside the error.
func SubmitBatch(c Client, computations []Computation) ([]uint64, error) {
	if len(computations) == 0 {
		return nil, nil
	}
	ids := make([]uint64, 0, len(computations))
	for _, comp := range computations {
		id, err := c.RequestComputation(comp)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// CollectBatch calls GetNextResult on c exactly n times, returning every
// Result obtained and an errors.Join of any failures encountered. A
// failure (e.g. ErrStopped) does not stop collection: the remaining
// calls are still attempted, matching RunAll's "collect everything that
// can be collected" behavior.
func CollectBatch(c Client, n int) ([]Result, error) {
	if n <= 0 {
		return nil, nil
	}
	results := make([]Result, 0, n)
	var errs []error
	for i := 0; i < n; i++ {
		r, err := c.GetNextResult()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, r)
	}
	return results, errors.Join(errs...)
}
