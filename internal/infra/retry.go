package infra

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// connectWithRetry keeps calling connect with exponential backoff until it
// succeeds, ctx is done, or maxElapsed passes. A zero maxElapsed retries
// until ctx is done.
func connectWithRetry[T any](ctx context.Context, maxElapsed time.Duration, connect func() (T, error)) (T, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 500 * time.Millisecond
	exp.Multiplier = 2.0
	exp.MaxInterval = 5 * time.Second
	exp.RandomizationFactor = 0.5
	exp.Reset()

	return backoff.Retry(ctx, connect,
		backoff.WithBackOff(exp),
		backoff.WithMaxElapsedTime(maxElapsed),
	)
}
