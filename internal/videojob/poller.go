// Package videojob waits on long-running remote generation jobs by polling
// their status at a fixed interval.
package videojob

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTimedOut means the job did not complete within the attempt budget
	// or the caller's deadline. Distinct from a job-reported failure.
	ErrTimedOut = errors.New("videojob: timed out waiting for job")
)

// PollFunc re-fetches a job's status by handle. It reports done=true when the
// job finished; a non-nil error aborts the wait (job failure or transport).
type PollFunc func(ctx context.Context) (done bool, err error)

// Poller runs a bounded fixed-interval poll loop. Polls are strictly
// sequential: the next status check is only issued after the previous one
// resolved.
type Poller struct {
	Interval    time.Duration
	MaxAttempts int // 0 means DefaultMaxAttempts
}

const (
	DefaultInterval    = 10 * time.Second
	DefaultMaxAttempts = 60
)

// Await polls until completion, failure, attempt exhaustion, or context end.
// Cancellation stops the wait; the remote job itself keeps running (the
// provider offers no abort).
func (p Poller) Await(ctx context.Context, poll PollFunc) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	for attempt := 1; ; attempt++ {
		done, err := poll(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if attempt >= maxAttempts {
			return fmt.Errorf("%w after %d attempts", ErrTimedOut, attempt)
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w: %v", ErrTimedOut, ctx.Err())
			}
			return ctx.Err()
		case <-timer.C:
		}
	}
}
