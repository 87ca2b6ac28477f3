package strategy

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
)

// Randomize perturbs each delay d of s to a value drawn uniformly from
// [d - d*factor, d + d*factor], rounded to whole milliseconds. Requires
// 0 < factor < 1.
//
// Unlike the generators, the returned strategy is not restartable: every
// traversal draws fresh values from the shared math/rand/v2 source. Use
// RandomizeSource to pin the source for reproducible draws.
func Randomize(factor float64, s Strategy) (Strategy, error) {
	return RandomizeSource(nil, factor, s)
}

// RandomizeSource is Randomize with an explicit random source, so tests can
// seed the draw. A nil r uses the shared math/rand/v2 source.
func RandomizeSource(r *rand.Rand, factor float64, s Strategy) (Strategy, error) {
	if math.IsNaN(factor) || factor <= 0 || factor >= 1 {
		return nil, errors.WithStack(ErrInvalidRandFactor)
	}

	intN := rand.Int64N
	if r != nil {
		intN = r.Int64N
	}

	return func(yield func(time.Duration) bool) {
		for d := range s {
			if !yield(jitter(intN, factor, d)) {
				return
			}
		}
	}, nil
}

// jitter draws a whole-millisecond value uniformly from the inclusive
// integer range [round(ms*(1-factor)), round(ms*(1+factor))]. Drawing an
// integer directly keeps both endpoints as likely as interior values; a
// real-valued draw rounded afterwards would give the endpoints half the
// weight of every other value.
func jitter(intN func(int64) int64, factor float64, d time.Duration) time.Duration {
	ms := float64(d) / float64(time.Millisecond)
	lo := int64(math.Round(ms * (1 - factor)))
	hi := int64(math.Round(ms * (1 + factor)))
	if hi <= lo {
		return time.Duration(lo) * time.Millisecond
	}

	pick := lo + intN(hi-lo+1)
	return saturate(float64(pick) * float64(time.Millisecond))
}
