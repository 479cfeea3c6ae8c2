package session

import (
	"context"
	"time"
)

// Latency is the pause an operation takes before it resolves. It belongs to
// the calling environment: the store never sleeps on its own. Returning an
// error (normally ctx.Err()) aborts the operation.
type Latency func(ctx context.Context) error

// NoLatency resolves immediately.
func NoLatency(ctx context.Context) error {
	return ctx.Err()
}

// Simulated waits d, or until ctx is done.
func Simulated(d time.Duration) Latency {
	if d <= 0 {
		return NoLatency
	}
	return func(ctx context.Context) error {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
