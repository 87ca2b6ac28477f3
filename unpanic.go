package again

import "github.com/pkg/errors"

// unpanic calls op, capturing any panic and returning it as an error with
// stack trace so the retry loop can treat it as a normal failure. It is not
// possible to recover here from a panic in a goroutine spawned by op.
func unpanic[T any](op func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
		}
	}()

	return op()
}
