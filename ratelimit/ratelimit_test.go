package ratelimit

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/computation"
)

type fakeClient struct {
	nextID uint64
}

func (f *fakeClient) RequestComputation(computation.Computation) (uint64, error) {
	f.nextID++
	return f.nextID, nil
}

func (f *fakeClient) AbortComputation(uint64) {}

func (f *fakeClient) GetNextResult() (computation.Result, error) {
	return computation.Result{}, nil
}

func TestClient_AllowsWithinRate(t *testing.T) {
	fake := &fakeClient{}
	c := New(fake, map[time.Duration]int{time.Minute: 2})

	_, err := c.RequestComputation(computation.Computation{Type: computation.TypeA})
	require.NoError(t, err)

	_, err = c.RequestComputation(computation.Computation{Type: computation.TypeA})
	require.NoError(t, err)
}

func TestClient_RejectsOverRate(t *testing.T) {
	fake := &fakeClient{}
	c := New(fake, map[time.Duration]int{time.Minute: 1})

	_, err := c.RequestComputation(computation.Computation{Type: computation.TypeA})
	require.NoError(t, err)

	_, err = c.RequestComputation(computation.Computation{Type: computation.TypeA})
	var rateErr *ErrRateLimited
	require.True(t, errors.As(err, &rateErr))
	require.Equal(t, computation.TypeA, rateErr.Type)
}

func TestClient_SeparateCategoriesIndependent(t *testing.T) {
	fake := &fakeClient{}
	c := New(fake, map[time.Duration]int{time.Minute: 1})

	_, err := c.RequestComputation(computation.Computation{Type: computation.TypeA})
	require.NoError(t, err)

	_, err = c.RequestComputation(computation.Computation{Type: computation.TypeB})
	require.NoError(t, err)
}
