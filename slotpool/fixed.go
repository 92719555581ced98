package slotpool

type fixed[T any] struct {
	available chan T
	all       chan T
	buf       chan T
	newFn     func() T
}

// NewFixed is a pool that never holds more than capacity live values: once
// capacity distinct values have been created, Get recycles the
// longest-idle one instead of allocating further. Useful for a
// bounded-memory deployment mode where GC-driven reclaim (NewDynamic) is
// undesirable.
func NewFixed[T any](capacity uint, newFn func() T) Pool[T] {
	return &fixed[T]{
		available: make(chan T, capacity),
		all:       make(chan T, capacity),
		buf:       make(chan T, 1024),
		newFn:     newFn,
	}
}

func (p *fixed[T]) Get() T {
	select {
	case el := <-p.available:
		return el

	case el := <-p.buf:
		return el

	default:
		var el T

		if len(p.all) < cap(p.all) {
			el = p.newFn()
		} else {
			el = <-p.all
		}

		select {
		case p.all <- el:
		case p.buf <- el:
		default:
		}
		return el
	}
}

func (p *fixed[T]) Put(el T) {
	select {
	case p.available <- el:
	case p.all <- el:
	case p.buf <- el:
	default:
	}
}
