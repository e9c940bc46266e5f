package fractal

import (
	"errors"

	"github.com/on-the-ground/fractalarea/scale"
)

var (
	// ErrNilFormula is returned by New when no area formula is supplied.
	ErrNilFormula = errors.New("fractal: nil area formula")

	// ErrInvalidSubfractalCount covers an initial count below one or a negative
	// repeating count.
	ErrInvalidSubfractalCount = errors.New("fractal: invalid subfractal count")

	// ErrInvalidIterations is returned for fewer than one iteration.
	ErrInvalidIterations = errors.New("fractal: iterations must be positive")

	// ErrInvalidChangeFraction is returned for a change fraction that is not a
	// positive finite number.
	ErrInvalidChangeFraction = errors.New("fractal: change fraction must be positive and finite")

	// ErrInvalidPrecision is returned for a precision below one digit or above
	// math.MaxUint32 digits.
	ErrInvalidPrecision = errors.New("fractal: precision must be positive")

	// ErrArity is returned when a factory with a fixed arity receives a different
	// number of dimensional arguments.
	ErrArity = errors.New("fractal: wrong number of dimensional arguments")

	// ErrCountOverflow is returned when a level's sub-shape count exceeds uint64.
	ErrCountOverflow = errors.New("fractal: subfractal count overflow")

	// ErrConversion is returned when a dimensional argument cannot be carried
	// through the decimal scaling arithmetic.
	ErrConversion = scale.ErrConversion
)
