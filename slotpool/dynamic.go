package slotpool

import "sync"

type dynamic[T any] struct {
	pool sync.Pool
}

// NewDynamic is a dynamic-size pool. It is a thin wrapper around
// sync.Pool: the garbage collector may reclaim idle values between
// Get/Put pairs, so this variant trades a bounded memory footprint for
// best-effort reuse. This is the default slot pool used by Manager.
func NewDynamic[T any](newFn func() T) Pool[T] {
	return &dynamic[T]{pool: sync.Pool{New: func() any { return newFn() }}}
}

func (p *dynamic[T]) Get() T {
	return p.pool.Get().(T)
}

func (p *dynamic[T]) Put(v T) {
	p.pool.Put(v)
}
