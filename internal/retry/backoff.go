package retry

import (
	"context"
	"time"
)

// ExponentialBackoff returns delay based on attempt number.
// The delay doubles with each attempt: base * 2^attempt
func ExponentialBackoff(attempt int, base time.Duration) time.Duration {
	return base * (1 << attempt)
}

// Sleep waits for the backoff delay of the given attempt, returning early
// if the context is cancelled.
func Sleep(ctx context.Context, attempt int, base time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(ExponentialBackoff(attempt, base)):
		return nil
	}
}
