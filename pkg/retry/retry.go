package retry

import (
	"fmt"
	"time"
)

// Policy is a fixed-delay retry schedule. Delay does not grow between
// attempts: the contention this package exists for (OS-level file lock
// release) clears quickly or not at all.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// Do runs fn up to p.MaxAttempts times. A failure is retried only when
// retryable(err) is true; any other error is returned immediately.
func Do(p Policy, retryable func(error) bool, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(p.Delay)
		}
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if retryable == nil || !retryable(lastErr) {
			return lastErr
		}
	}
	return fmt.Errorf("retries exhausted after %d attempts: %w", p.MaxAttempts, lastErr)
}
