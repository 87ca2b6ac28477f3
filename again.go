// Package again calls fallible operations repeatedly until they succeed or
// a delay strategy runs out of retries.
package again

import (
	"context"
	"iter"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/conan/again/strategy"
)

type options struct {
	clock        clockwork.Clock
	onRetry      func(attempt int, err error, next time.Duration)
	recoverPanic bool
}

type Option func(options *options)

// WithClock allows users to mock the clock used to wait between attempts
// for testing purposes.
func WithClock(clock clockwork.Clock) Option {
	return func(options *options) {
		options.clock = clock
	}
}

// WithPanicRecovery treats a panic in the operation as an ordinary failure,
// making it retryable like any other error. Without this option a panic
// propagates to the caller.
func WithPanicRecovery() Option {
	return func(options *options) {
		options.recoverPanic = true
	}
}

// WithOnRetry registers a hook invoked after each failed attempt that will
// be retried, with the 1-indexed attempt number, the failure, and the delay
// about to be waited. Attempts that end the run (success or exhaustion) do
// not trigger the hook.
func WithOnRetry(f func(attempt int, err error, next time.Duration)) Option {
	return func(options *options) {
		options.onRetry = f
	}
}

// Do invokes op until it succeeds or s runs out of delays: a strategy of
// length N allows up to N+1 attempts, and each delay is consumed exactly
// once. On success the operation's value is returned with no further
// sleeping. On exhaustion the most recent failure is returned exactly as op
// produced it, never wrapped — retryability is never decided by the
// failure's content, only by the strategy having delays left.
//
// Cancelling ctx aborts an in-progress wait; Do then returns the most
// recent failure, or ctx.Err() if op was never attempted.
func Do[T any](ctx context.Context, s strategy.Strategy, op func() (T, error), opts ...Option) (T, error) {
	// Set up default options
	options := options{
		clock: clockwork.NewRealClock(),
	}

	// Apply provided options
	for _, opt := range opts {
		opt(&options)
	}

	call := op
	if options.recoverPanic {
		call = func() (T, error) {
			return unpanic(op)
		}
	}

	next, stop := iter.Pull(iter.Seq[time.Duration](s))
	defer stop()

	var zero T
	var lastErr error
	for attempt := 1; ; attempt++ {
		// stop if context is done
		if ctx.Err() != nil {
			if lastErr != nil {
				return zero, lastErr
			}
			return zero, ctx.Err()
		}

		v, err := call()
		if err == nil {
			return v, nil
		}
		lastErr = err

		// stop if the strategy has no delays left to offer
		delay, ok := next()
		if !ok {
			return zero, lastErr
		}

		if options.onRetry != nil {
			options.onRetry(attempt, err, delay)
		}

		wait(ctx, options.clock, delay)
	}
}

// Try is Do for operations that produce no value.
func Try(ctx context.Context, s strategy.Strategy, f func() error, opts ...Option) error {
	_, err := Do(ctx, s, func() (struct{}, error) {
		return struct{}{}, f()
	}, opts...)
	return err
}

// wait blocks for duration d or until the context is done.
func wait(ctx context.Context, clock clockwork.Clock, d time.Duration) {
	delay := clock.NewTimer(d)

	select {
	case <-delay.Chan():
	case <-ctx.Done():
		if !delay.Stop() {
			<-delay.Chan()
		}
	}
}
