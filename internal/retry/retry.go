package retry

import (
	"context"
	"errors"
	"time"
)

// Policy controls how many times an operation is attempted and how long to
// wait between failures. Waits grow as BackoffFactor * 2^attempt, so the
// defaults produce 1s, 2s, 4s.
type Policy struct {
	MaxAttempts   int
	BackoffFactor time.Duration
}

// DefaultPolicy returns the standard 3-attempt exponential backoff policy.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:   3,
		BackoffFactor: time.Second,
	}
}

// PermanentError marks a failure that must not be retried, such as rejected
// credentials or caller-side misuse. Do unwraps it before returning.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// Permanent wraps err so Do propagates it immediately instead of retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// Do runs op until it succeeds, returns a permanent error, or the attempt
// budget is exhausted. The last error is propagated unchanged; nothing is
// silently suppressed. Do knows nothing about what op does.
func Do[T any](ctx context.Context, policy Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		var perm *PermanentError
		if errors.As(err, &perm) {
			return zero, perm.Err
		}
		lastErr = err

		// No wait after the final attempt
		if attempt == policy.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(backoff(policy, attempt)):
		}
	}

	return zero, lastErr
}

// backoff returns the wait before the attempt following attemptIndex
// (zero-based): factor, 2*factor, 4*factor, ...
func backoff(policy Policy, attemptIndex int) time.Duration {
	return policy.BackoffFactor << uint(attemptIndex)
}
