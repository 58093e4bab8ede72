package internal

import "github.com/pkg/errors"

// Kinds of failure a decomposition can report. Callers compare against these
// with errors.Is; the wrapped message carries the specifics.
var (
	// No usable intersection between the two median levels.
	ErrDegenerateCut = errors.New("degenerate cut")
	// Two dual lines, or two median level pieces, have the same slope. This
	// usually means the points are not in general position.
	ErrParallelLines = errors.New("parallel lines")
	// A region ran out of points for some color before all rounds were done.
	ErrPointsExhausted = errors.New("points exhausted")
	// A split produced unequal halves for some color.
	ErrParityViolation = errors.New("parity violation")
	// A color has an even number of points, so its median level is undefined.
	ErrEvenCount = errors.New("even point count")
	// Cuts are only defined for exactly two colors.
	ErrColorCount = errors.New("unsupported color count")
	// A point of a region's set is not inside the region's polygon.
	ErrPointOutsideRegion = errors.New("point outside region")
	ErrInvalidArgument    = errors.New("invalid argument")
)

// Invariant violations deep inside the polygon bookkeeping are raised as
// panics, and the decomposition recovers them per branch.

// Only panics carrying a HamcutError are converted. Anything else, including
// runtime errors, is a real bug and keeps unwinding.
type HamcutError struct {
	err error
}

func (e HamcutError) Error() string { return e.err.Error() }
func (e HamcutError) Unwrap() error { return e.err }

// Panic with a HamcutError.
func fatalf(format string, args ...interface{}) {
	panic(HamcutError{errors.Errorf(format, args...)})
}

// Like fatalf, but keeps one of the error kinds above as the cause.
func fatalWrapf(kind error, format string, args ...interface{}) {
	panic(HamcutError{errors.Wrapf(kind, format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if hamcutError, ok := r.(HamcutError); ok {
			return hamcutError.err
		}
		panic(r)
	}
	return nil
}
