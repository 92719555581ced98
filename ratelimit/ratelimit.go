// Package ratelimit wraps a computation.Client with per-ComputationType
// sliding-window admission limits.
package ratelimit

import (
	"time"

	"github.com/joeycumines/go-catrate"

	"github.com/ygrebnov/computation"
)

// ErrRateLimited is returned by RequestComputation when c.Type is over
// its configured rate; RetryAfter on the error reports when the caller
// may retry.
type ErrRateLimited struct {
	Type       computation.ComputationType
	RetryAfter time.Time
}

func (e *ErrRateLimited) Error() string {
	return "ratelimit: " + e.Type.String() + " computation rejected, rate limit in effect"
}

// Client wraps a computation.Client, rejecting RequestComputation calls
// that exceed the configured rate for their ComputationType before they
// ever reach the wrapped Client. AbortComputation and GetNextResult pass
// through unchanged.
type Client struct {
	next    computation.Client
	limiter *catrate.Limiter
}

// New wraps next with a limiter configured by rates: a map of sliding
// window durations to the maximum number of RequestComputation calls of
// any one ComputationType allowed within that window. See
// catrate.NewLimiter for the validity requirements on rates (panics on
// invalid input).
func New(next computation.Client, rates map[time.Duration]int) *Client {
	return &Client{next: next, limiter: catrate.NewLimiter(rates)}
}

// RequestComputation admits c.Type against the configured rate before
// delegating to the wrapped Client. Returns *ErrRateLimited if c.Type is
// currently rate limited.
func (c *Client) RequestComputation(comp computation.Computation) (uint64, error) {
	if retryAfter, ok := c.limiter.Allow(comp.Type); !ok {
		return 0, &ErrRateLimited{Type: comp.Type, RetryAfter: retryAfter}
	}
	return c.next.RequestComputation(comp)
}

// AbortComputation delegates to the wrapped Client unchanged.
func (c *Client) AbortComputation(id uint64) {
	c.next.AbortComputation(id)
}

// GetNextResult delegates to the wrapped Client unchanged.
func (c *Client) GetNextResult() (computation.Result, error) {
	return c.next.GetNextResult()
}

var _ computation.Client = (*Client)(nil)
