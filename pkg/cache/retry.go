package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork marks backend connection failures and timeouts.
var ErrNetwork = errors.New("cache: network error")

type retryableError struct{ err error }

func (e retryableError) Error() string { return e.err.Error() }
func (e retryableError) Unwrap() error { return e.err }

// Retryable marks err as worth retrying with [Backoff.Retry].
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return retryableError{err: err}
}

// IsRetryable reports whether err was marked with [Retryable].
func IsRetryable(err error) bool {
	var re retryableError
	return errors.As(err, &re)
}

// Backoff is an exponential retry policy.
type Backoff struct {
	Attempts int
	Initial  time.Duration
	Max      time.Duration
}

// DefaultBackoff tries three times, waiting 100ms then 200ms.
var DefaultBackoff = Backoff{Attempts: 3, Initial: 100 * time.Millisecond, Max: 2 * time.Second}

// Retry calls fn until it succeeds, returns an error not marked
// [Retryable], or the attempts run out. It returns the last error.
func (b Backoff) Retry(ctx context.Context, fn func(context.Context) error) error {
	attempts := max(b.Attempts, 1)
	delay := b.Initial

	var err error
	for i := range attempts {
		if err = fn(ctx); err == nil || !IsRetryable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay *= 2
		if b.Max > 0 && delay > b.Max {
			delay = b.Max
		}
	}
	return err
}
