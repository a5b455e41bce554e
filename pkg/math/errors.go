package math

import (
	"errors"
	"fmt"
)

// Errors returned by the checked variants. The unchecked operations never
// return errors; they propagate IEEE-754 Inf and NaN instead.
var (
	ErrSingular       = errors.New("math: matrix is singular")
	ErrNotEuclidean   = errors.New("math: matrix is not a rotation plus translation")
	ErrZeroLength     = errors.New("math: zero-length vector")
	ErrInvalidFrustum = errors.New("math: invalid frustum parameters")
)

func frustumErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidFrustum}, args...)...)
}
