// Package scale performs the precision-controlled decimal arithmetic used to shrink
// (or grow) a shape's dimensional arguments from one iteration level to the next.
//
// A Context owns its own apd.Context. There is no process-wide arithmetic context, so
// any number of Contexts may be used concurrently.
package scale

import (
	"errors"
	"fmt"
	"math"

	"github.com/cockroachdb/apd/v3"
)

var (
	// ErrConversion is returned when a value cannot be represented as a decimal, or a
	// decimal result cannot be represented as a float64.
	ErrConversion = errors.New("scale: value not representable")

	// ErrInvalidPrecision is returned for a precision outside [1, math.MaxUint32].
	ErrInvalidPrecision = errors.New("scale: precision must be positive")
)

// Context multiplies decimal vectors by a fixed factor, rounding every product
// half-to-even to a fixed number of significant digits.
type Context struct {
	apd    *apd.Context
	factor apd.Decimal
}

// NewContext returns a Context scaling by factor at prec significant digits.
func NewContext(factor float64, prec int) (*Context, error) {
	if prec < 1 || uint64(prec) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrecision, prec)
	}
	c := &Context{apd: apd.BaseContext.WithPrecision(uint32(prec))}
	c.apd.Rounding = apd.RoundHalfEven
	if err := setFloat64(&c.factor, factor); err != nil {
		return nil, fmt.Errorf("%w: factor %v", err, factor)
	}
	return c, nil
}

// Precision reports the number of significant digits.
func (c *Context) Precision() int { return int(c.apd.Precision) }

// Factor returns a copy of the decimal scaling factor.
func (c *Context) Factor() *apd.Decimal { return new(apd.Decimal).Set(&c.factor) }

// FromFloat64s converts native values to decimals without rounding them.
func FromFloat64s(values []float64) ([]*apd.Decimal, error) {
	out := make([]*apd.Decimal, len(values))
	for i, v := range values {
		out[i] = new(apd.Decimal)
		if err := setFloat64(out[i], v); err != nil {
			return nil, fmt.Errorf("%w: argument %d (%v)", err, i, v)
		}
	}
	return out, nil
}

// ToFloat64s converts decimals back to the nearest native values.
func ToFloat64s(values []*apd.Decimal) ([]float64, error) {
	out := make([]float64, len(values))
	for i, d := range values {
		f, err := d.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d (%s): %w", ErrConversion, i, d, err)
		}
		out[i] = f
	}
	return out, nil
}

// Step returns a new slice holding every value multiplied by the factor once, each
// product rounded to the context precision. The input is left untouched.
func (c *Context) Step(values []*apd.Decimal) ([]*apd.Decimal, error) {
	out := make([]*apd.Decimal, len(values))
	for i, v := range values {
		out[i] = new(apd.Decimal)
		if _, err := c.apd.Mul(out[i], v, &c.factor); err != nil {
			return nil, fmt.Errorf("%w: argument %d (%s x %s): %w", ErrConversion, i, v, &c.factor, err)
		}
	}
	return out, nil
}

// Round returns d rounded half-to-even to the context precision in significant
// digits. Integer digits are rounded like any other: 12345.6 at 3 digits is 1.23E+4.
func (c *Context) Round(d *apd.Decimal) (*apd.Decimal, error) {
	out := new(apd.Decimal)
	if _, err := c.apd.Round(out, d); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConversion, d, err)
	}
	return out, nil
}

// setFloat64 stores the shortest decimal that round-trips to f.
func setFloat64(d *apd.Decimal, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrConversion
	}
	if _, err := d.SetFloat64(f); err != nil {
		return fmt.Errorf("%w: %w", ErrConversion, err)
	}
	return nil
}
