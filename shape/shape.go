// Package shape provides area formulas for common base shapes.
package shape

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/on-the-ground/fractalarea/fractal"
)

var (
	// ErrNegativeDimension is returned by every formula for a negative argument.
	ErrNegativeDimension = errors.New("shape: negative dimension")

	// ErrUnknownShape is returned by Lookup.
	ErrUnknownShape = errors.New("shape: unknown shape")
)

// Shape couples an area formula with its name and fixed arity.
type Shape struct {
	Name  string
	Arity int
	Area  fractal.AreaFormula
}

// Factory binds the shape's formula and arity into a fractal.Factory.
func (s Shape) Factory(initialSubfractalCount int, opts ...fractal.Option) (*fractal.Factory, error) {
	opts = append([]fractal.Option{fractal.WithArity(s.Arity)}, opts...)
	return fractal.New(s.Area, initialSubfractalCount, opts...)
}

var (
	Square              = newShape("square", 1, func(d []float64) float64 { return d[0] * d[0] })
	Rectangle           = newShape("rectangle", 2, func(d []float64) float64 { return d[0] * d[1] })
	Circle              = newShape("circle", 1, func(d []float64) float64 { return math.Pi * d[0] * d[0] })
	Triangle            = newShape("triangle", 2, func(d []float64) float64 { return d[0] * d[1] / 2 })
	EquilateralTriangle = newShape("equilateral_triangle", 1, func(d []float64) float64 { return math.Sqrt(3) / 4 * d[0] * d[0] })
	Pentagon            = RegularPolygon(5)
	Hexagon             = RegularPolygon(6)
)

var registry = map[string]Shape{}

func init() {
	for _, s := range []Shape{Square, Rectangle, Circle, Triangle, EquilateralTriangle, Pentagon, Hexagon} {
		registry[s.Name] = s
	}
}

// RegularPolygon returns the shape of a regular n-gon given its side length.
// It panics for n < 3.
func RegularPolygon(n int) Shape {
	if n < 3 {
		panic(fmt.Sprintf("shape: RegularPolygon(%d)", n))
	}
	k := float64(n) / (4 * math.Tan(math.Pi/float64(n)))
	name := fmt.Sprintf("polygon%d", n)
	switch n {
	case 5:
		name = "pentagon"
	case 6:
		name = "hexagon"
	}
	return newShape(name, 1, func(d []float64) float64 { return k * d[0] * d[0] })
}

// Lookup returns the named shape. Names are matched case-insensitively.
func Lookup(name string) (Shape, error) {
	s, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Shape{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownShape, name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// Names lists the registered shapes in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func newShape(name string, arity int, area func([]float64) float64) Shape {
	return Shape{
		Name:  name,
		Arity: arity,
		Area: func(dims ...float64) (float64, error) {
			if len(dims) != arity {
				return 0, fmt.Errorf("%w: %s takes %d, got %d", fractal.ErrArity, name, arity, len(dims))
			}
			for i, d := range dims {
				if d < 0 {
					return 0, fmt.Errorf("%w: %s argument %d is %v", ErrNegativeDimension, name, i, d)
				}
			}
			return area(dims), nil
		},
	}
}
