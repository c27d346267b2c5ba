package remote

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequentialRunsInOrder(t *testing.T) {
	var order []int
	err := Sequential(context.Background(),
		func(ctx context.Context) error { order = append(order, 1); return nil },
		func(ctx context.Context) error { order = append(order, 2); return nil },
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, order)
}

func TestSequentialStopsOnFirstFailure(t *testing.T) {
	boom := errors.New("lookup failed")
	var secondRan bool
	err := Sequential(context.Background(),
		func(ctx context.Context) error { return boom },
		func(ctx context.Context) error { secondRan = true; return nil },
	)
	assert.ErrorIs(t, err, boom)
	assert.False(t, secondRan)
}

func TestConcurrentRunsAllFills(t *testing.T) {
	var mu sync.Mutex
	seen := map[int]bool{}
	mark := func(i int) FillFunc {
		return func(ctx context.Context) error {
			mu.Lock()
			seen[i] = true
			mu.Unlock()
			return nil
		}
	}

	err := Concurrent(context.Background(), mark(1), mark(2), mark(3))
	require.NoError(t, err)
	assert.Len(t, seen, 3)
}

func TestConcurrentReturnsFailure(t *testing.T) {
	boom := errors.New("lookup failed")
	err := Concurrent(context.Background(),
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) error { return boom },
	)
	assert.ErrorIs(t, err, boom)
}

func TestParseListPolicy(t *testing.T) {
	p, err := ParseListPolicy("abort")
	require.NoError(t, err)
	assert.Equal(t, ListPolicyAbort, p)

	p, err = ParseListPolicy("skip")
	require.NoError(t, err)
	assert.Equal(t, ListPolicySkip, p)

	_, err = ParseListPolicy("retry")
	assert.Error(t, err)
}
