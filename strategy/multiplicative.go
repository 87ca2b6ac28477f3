package strategy

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// NewMultiplicative returns an infinite geometric strategy: the n-th delay
// (0-indexed) is initial * multiplier^n. A multiplier below 1 shrinks the
// delays; a multiplier of 0 drops to zero after the first delay. Growth
// saturates at the maximum time.Duration (math.MaxInt64 nanoseconds)
// instead of wrapping.
func NewMultiplicative(initial time.Duration, multiplier float64) (Strategy, error) {
	if initial < 0 {
		return nil, errors.WithStack(ErrNegativeDelay)
	}
	if multiplier < 0 || math.IsNaN(multiplier) {
		return nil, errors.WithStack(ErrNegativeMultiplier)
	}

	return func(yield func(time.Duration) bool) {
		// Track the running value as float64 nanoseconds: it cannot wrap,
		// and any loss of integer precision only occurs past 2^53ns (~104
		// days), well before the saturation point.
		for d := float64(initial); yield(saturate(d)); d *= multiplier {
		}
	}, nil
}

// saturate converts a non-negative float64 nanosecond count to a Duration,
// capping at the maximum time.Duration.
func saturate(ns float64) time.Duration {
	if ns >= math.MaxInt64 {
		return math.MaxInt64
	}
	return time.Duration(ns)
}
