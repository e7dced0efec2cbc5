package utils

import (
	"context"
	"errors"
	"time"
)

// ErrPollTimeout is returned by Poll when the condition never became true
// within the timeout.
var ErrPollTimeout = errors.New("poll timed out")

// Poll runs fn every interval until it returns done=true, the timeout
// elapses, or the context is canceled. fn errors abort the poll immediately.
func Poll(ctx context.Context, timeout, interval time.Duration, fn func(ctx context.Context) (bool, error)) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		done, err := fn(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return ErrPollTimeout
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
