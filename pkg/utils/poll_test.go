package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollImmediateSuccess(t *testing.T) {
	calls := 0
	err := Poll(context.Background(), time.Second, 10*time.Millisecond, func(ctx context.Context) (bool, error) {
		calls++
		return true, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestPollEventualSuccess(t *testing.T) {
	calls := 0
	err := Poll(context.Background(), time.Second, 5*time.Millisecond, func(ctx context.Context) (bool, error) {
		calls++
		return calls >= 3, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestPollTimeout(t *testing.T) {
	err := Poll(context.Background(), 30*time.Millisecond, 5*time.Millisecond, func(ctx context.Context) (bool, error) {
		return false, nil
	})

	assert.ErrorIs(t, err, ErrPollTimeout)
}

func TestPollPropagatesError(t *testing.T) {
	wantErr := errors.New("lookup failed")
	err := Poll(context.Background(), time.Second, 5*time.Millisecond, func(ctx context.Context) (bool, error) {
		return false, wantErr
	})

	assert.ErrorIs(t, err, wantErr)
}

func TestPollCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Poll(ctx, time.Second, 5*time.Millisecond, func(ctx context.Context) (bool, error) {
		return false, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}
