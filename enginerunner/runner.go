// Package enginerunner drives a computation.Engine with a fixed number of
// worker goroutines, pulling Requests with GetWork and reporting results
// with ProvideResult, until the Engine reports ErrStopped.
//
// computation.Engine.GetWork takes no context and blocks until work is
// available or the Engine is stopped, so a canceled run context cannot
// interrupt a worker already parked in GetWork — only stopping the
// underlying Manager can. A run context is still honored between
// GetWork calls, so canceling it stops a Runner from starting further
// work once its workers are not blocked.
package enginerunner

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ygrebnov/computation"
)

// Handler computes the result for req. A panic inside Handler is
// recovered and turned into an error; the request is then dropped
// (no result is reported for it).
type Handler func(ctx context.Context, req computation.Request) (float64, error)

// Runner drives an Engine facade for a single ComputationType: it pulls
// work via GetWork, executes it through Handler across a fixed number of
// concurrent workers, and reports results via ProvideResult.
type Runner struct {
	engine  computation.Engine
	typ     computation.ComputationType
	handler Handler
	workers int
	log     zerolog.Logger
}

// New constructs a Runner for typ. workers is clamped to at least 1.
func New(engine computation.Engine, typ computation.ComputationType, handler Handler, workers int, log zerolog.Logger) *Runner {
	if workers <= 0 {
		workers = 1
	}
	return &Runner{
		engine:  engine,
		typ:     typ,
		handler: handler,
		workers: workers,
		log:     log.With().Str("computation_type", typ.String()).Logger(),
	}
}

// Run starts the configured number of worker goroutines and blocks until
// every one of them observes ErrStopped from GetWork — i.e. until the
// underlying Manager is stopped. ctx is checked between GetWork calls
// (so a worker that is not currently blocked will exit promptly once ctx
// is canceled) but cannot interrupt a worker already parked in GetWork;
// callers that need Run to return on cancellation alone, without
// stopping the Manager, must arrange for GetWork to unblock some other
// way (e.g. by submitting a dummy request for that ComputationType).
func (r *Runner) Run(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(r.workers)
	for i := 0; i < r.workers; i++ {
		go func(id int) {
			defer wg.Done()
			r.loop(ctx, id)
		}(i)
	}
	wg.Wait()
}

func (r *Runner) loop(ctx context.Context, workerID int) {
	log := r.log.With().Int("worker", workerID).Logger()
	for {
		if ctx.Err() != nil {
			log.Debug().Msg("enginerunner: context canceled, exiting")
			return
		}

		req, err := r.engine.GetWork(r.typ)
		if err != nil {
			log.Debug().Err(err).Msg("enginerunner: engine stopped, exiting")
			return
		}

		r.handle(ctx, log, req)
	}
}

func (r *Runner) handle(ctx context.Context, log zerolog.Logger, req computation.Request) {
	if !r.engine.ContinueWork(req.ID) {
		log.Debug().Uint64("id", req.ID).Msg("enginerunner: aborted before execution")
		return
	}

	value, err := r.safeHandle(ctx, req)
	if err != nil {
		log.Warn().Uint64("id", req.ID).Err(err).Msg("enginerunner: handler failed")
		return
	}

	if !r.engine.ContinueWork(req.ID) {
		log.Debug().Uint64("id", req.ID).Msg("enginerunner: aborted after execution")
		return
	}

	r.engine.ProvideResult(computation.Result{ID: req.ID, Value: value})
}

func (r *Runner) safeHandle(ctx context.Context, req computation.Request) (value float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("enginerunner: handler panicked: %v", p)
		}
	}()
	return r.handler(ctx, req)
}
