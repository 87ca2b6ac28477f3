package strategy

import (
	"iter"
	"time"

	"github.com/pkg/errors"
)

// MaxRetries truncates s to its first n delays, bounding an otherwise
// infinite strategy to a finite retry budget. The result is shorter than n
// if s is.
func MaxRetries(n int, s Strategy) (Strategy, error) {
	if n < 0 {
		return nil, errors.WithStack(ErrNegativeCount)
	}

	return func(yield func(time.Duration) bool) {
		if n == 0 {
			return
		}
		remaining := n
		for d := range s {
			if !yield(d) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}, nil
}

// ClampDelay replaces every delay greater than limit with limit. The length
// of the sequence is unchanged: retrying continues, only the waits flatten.
func ClampDelay(limit time.Duration, s Strategy) (Strategy, error) {
	if limit < 0 {
		return nil, errors.WithStack(ErrNegativeDelay)
	}

	return func(yield func(time.Duration) bool) {
		for d := range s {
			if !yield(min(d, limit)) {
				return
			}
		}
	}, nil
}

// MaxDelay keeps the longest leading run of delays strictly less than
// limit, stopping the sequence before the first delay >= limit. Kept delays
// are not rescaled: once the backoff grows past limit, retrying ends.
// Compare ClampDelay, which flattens large delays instead of stopping.
func MaxDelay(limit time.Duration, s Strategy) (Strategy, error) {
	if limit < 0 {
		return nil, errors.WithStack(ErrNegativeDelay)
	}

	return func(yield func(time.Duration) bool) {
		for d := range s {
			if d >= limit {
				return
			}
			if !yield(d) {
				return
			}
		}
	}, nil
}

// MaxDuration bounds the total time spent waiting between attempts. The
// remaining budget starts at timeout and is checked before each delay is
// taken from s: while it is strictly positive the delay is emitted and
// subtracted, possibly driving the budget negative. The sequence therefore
// never starts a wait once the budget is spent, but the final wait may
// overshoot timeout. A timeout of zero or less yields the empty strategy.
func MaxDuration(timeout time.Duration, s Strategy) Strategy {
	return func(yield func(time.Duration) bool) {
		next, stop := iter.Pull(iter.Seq[time.Duration](s))
		defer stop()

		for remaining := timeout; remaining > 0; {
			d, ok := next()
			if !ok {
				return
			}
			remaining -= d
			if !yield(d) {
				return
			}
		}
	}
}
