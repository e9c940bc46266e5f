package fractal

import (
	"fmt"
	"math"
)

// Defaults bound by New when no option overrides them.
const (
	DefaultRepeatingSubfractalCount = 0
	DefaultChangeFraction           = 0.5
	DefaultIterations               = 1
	DefaultPrecision                = 10
)

// Config is the set of parameters a sequence is generated with.
//
// A Factory holds one immutable Config; per-call Overrides produce modified copies.
type Config struct {
	InitialSubfractalCount   int
	RepeatingSubfractalCount int
	ChangeFraction           float64
	Iterations               int
	// Precision is the number of significant decimal digits kept while scaling.
	Precision int
	// Arity, when positive, is the exact number of dimensional arguments accepted.
	Arity int
}

// ResolveRepeatingSubfractalCount returns repeating if it lies strictly between 0 and
// initial, and initial-1 otherwise. Out-of-range values are corrected, not rejected.
func ResolveRepeatingSubfractalCount(initial, repeating int) int {
	if 0 < repeating && repeating < initial {
		return repeating
	}
	return initial - 1
}

// With returns a copy of c with the overrides applied in order.
func (c Config) With(overrides ...Override) Config {
	for _, o := range overrides {
		o(&c)
	}
	return c
}

// Validate reports the first parameter that cannot drive a generation.
func (c Config) Validate() error {
	switch {
	case c.InitialSubfractalCount < 1:
		return fmt.Errorf("%w: initial %d", ErrInvalidSubfractalCount, c.InitialSubfractalCount)
	case c.RepeatingSubfractalCount < 0:
		return fmt.Errorf("%w: repeating %d", ErrInvalidSubfractalCount, c.RepeatingSubfractalCount)
	case c.Iterations < 1:
		return fmt.Errorf("%w: %d", ErrInvalidIterations, c.Iterations)
	case !(c.ChangeFraction > 0) || math.IsInf(c.ChangeFraction, 0):
		return fmt.Errorf("%w: %v", ErrInvalidChangeFraction, c.ChangeFraction)
	case c.Precision < 1 || int64(c.Precision) > math.MaxUint32:
		return fmt.Errorf("%w: %d", ErrInvalidPrecision, c.Precision)
	}
	return nil
}

func (c Config) checkArity(dims []float64) error {
	if c.Arity > 0 && len(dims) != c.Arity {
		return fmt.Errorf("%w: want %d, got %d", ErrArity, c.Arity, len(dims))
	}
	return nil
}
