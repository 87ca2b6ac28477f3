// Package strategy provides composable retry delay sequences: generators
// that describe a backoff shape and combinators that bound or perturb it.
package strategy

import (
	"iter"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrNegativeDelay      = errors.New("delay must not be negative")
	ErrNegativeCount      = errors.New("retry count must not be negative")
	ErrNegativeMultiplier = errors.New("multiplier must not be negative")
	ErrInvalidRandFactor  = errors.New("randomization factor must be in (0, 1)")
)

// Strategy is an ordered, lazily produced, possibly infinite sequence of
// non-negative delays. Its length is the retry budget: a strategy of length
// N permits N retries, so up to N+1 attempts; the empty strategy permits
// exactly one attempt.
//
// A Strategy is an immutable value. Reading it never mutates it, and it is
// safe to share across concurrent retry runs, each of which performs its
// own traversal. Generators produce restartable strategies (every traversal
// yields the same values); Randomize is the one exception and says so.
type Strategy iter.Seq[time.Duration]

// Delays materializes the first n delays of s. It returns fewer than n if s
// is shorter, and is safe to call on infinite strategies.
func Delays(n int, s Strategy) []time.Duration {
	if n <= 0 {
		return nil
	}

	out := make([]time.Duration, 0, n)
	for d := range s {
		out = append(out, d)
		if len(out) == n {
			break
		}
	}
	return out
}
