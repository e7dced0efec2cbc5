package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLimiterWaitWithinBudget(t *testing.T) {
	limiter := NewTokenLimiter(100)

	err := limiter.Wait(context.Background(), 60)
	require.NoError(t, err)
	assert.Equal(t, 40, limiter.GetRemaining())

	err = limiter.Wait(context.Background(), 40)
	require.NoError(t, err)
	assert.Equal(t, 0, limiter.GetRemaining())
}

func TestTokenLimiterOversizedRequestDoesNotBlock(t *testing.T) {
	limiter := NewTokenLimiter(10)

	done := make(chan error, 1)
	go func() {
		done <- limiter.Wait(context.Background(), 50)
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("oversized request should not block")
	}
}

func TestTokenLimiterWaitHonorsContextCancellation(t *testing.T) {
	limiter := NewTokenLimiter(10)
	require.NoError(t, limiter.Wait(context.Background(), 10))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx, 5)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTokenLimiterZeroTokensIsNoop(t *testing.T) {
	limiter := NewTokenLimiter(10)
	require.NoError(t, limiter.Wait(context.Background(), 0))
	assert.Equal(t, 10, limiter.GetRemaining())
}
