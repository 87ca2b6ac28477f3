package strategy

import (
	"time"

	"github.com/pkg/errors"
)

// NewConstant returns an infinite strategy where every delay equals d.
// A delay of zero is allowed.
func NewConstant(d time.Duration) (Strategy, error) {
	if d < 0 {
		return nil, errors.WithStack(ErrNegativeDelay)
	}

	return func(yield func(time.Duration) bool) {
		for yield(d) {
		}
	}, nil
}

// NewImmediate returns an infinite strategy of zero delays: retry right
// away, with no wait between attempts.
func NewImmediate() Strategy {
	s, _ := NewConstant(0)
	return s
}

// NewStop returns the empty strategy: never retry. The single initial
// attempt is still made.
func NewStop() Strategy {
	return func(yield func(time.Duration) bool) {}
}
