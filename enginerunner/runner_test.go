package enginerunner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/computation"
)

func newTestManager(t *testing.T) *computation.Manager {
	t.Helper()
	m, err := computation.NewOptions(computation.WithMaxQueueSize(4))
	require.NoError(t, err)
	return m
}

func TestRunner_DeliversResult(t *testing.T) {
	m := newTestManager(t)

	handler := func(_ context.Context, req computation.Request) (float64, error) {
		sum := 0.0
		for _, v := range req.Payload {
			sum += v
		}
		return sum, nil
	}

	r := New(m, computation.TypeA, handler, 2, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runDone := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(runDone)
	}()

	id, err := m.RequestComputation(computation.Computation{
		Type:    computation.TypeA,
		Payload: []float64{1, 2, 3},
	})
	require.NoError(t, err)

	result, err := m.GetNextResult()
	require.NoError(t, err)
	require.Equal(t, id, result.ID)
	require.Equal(t, 6.0, result.Value)

	// By this point the result's worker has already gone back to
	// GetWork on the now-empty queue; only stopping the Manager (not
	// canceling ctx) can unblock it — see Run's doc comment.
	m.Stop()
	select {
	case <-runDone:
	case <-time.After(time.Second):
		t.Fatal("Run did not exit after Stop")
	}
}

func TestRunner_HandlerPanicDropsRequest(t *testing.T) {
	m := newTestManager(t)

	handler := func(_ context.Context, _ computation.Request) (float64, error) {
		panic("boom")
	}

	r := New(m, computation.TypeB, handler, 1, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(runDone)
	}()

	_, err := m.RequestComputation(computation.Computation{Type: computation.TypeB})
	require.NoError(t, err)

	// Give the worker time to pull the request and panic inside the
	// handler; the request's ledger slot is then left unfilled forever,
	// so only Stop can make GetNextResult return.
	time.Sleep(50 * time.Millisecond)

	m.Stop()
	_, err = m.GetNextResult()
	require.True(t, errors.Is(err, computation.ErrStopped))

	<-runDone
}
