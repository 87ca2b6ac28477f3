package strategy

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// NewAdditive returns an infinite arithmetic strategy: the n-th delay
// (0-indexed) is initial + n*increment. Growth saturates at the maximum
// time.Duration (math.MaxInt64 nanoseconds) instead of wrapping, so long
// retry runs never see a negative delay.
func NewAdditive(initial, increment time.Duration) (Strategy, error) {
	if initial < 0 || increment < 0 {
		return nil, errors.WithStack(ErrNegativeDelay)
	}

	return func(yield func(time.Duration) bool) {
		for d := initial; yield(d); d = satAdd(d, increment) {
		}
	}, nil
}

// NewAdditiveStep is shorthand for NewAdditive(increment, increment): the
// first delay equals the increment and each retry waits one increment more.
func NewAdditiveStep(increment time.Duration) (Strategy, error) {
	return NewAdditive(increment, increment)
}

// satAdd adds two non-negative durations, saturating at the maximum
// time.Duration.
func satAdd(a, b time.Duration) time.Duration {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
