// Package fractal computes the areas produced by self-similar recursive subdivision.
//
// A shape is described by an AreaFormula over its dimensional arguments (a square's
// side, a rectangle's width and height, ...). Each iteration level scales every
// dimension by a change fraction and multiplies the number of sub-shapes by a
// branching factor: the initial subfractal count once, then the repeating subfractal
// count at every further level.
//
// # Precision
//
// Dimensions are scaled in decimal arithmetic, one multiplication per level, each
// product rounded half-to-even to the requested number of significant digits. The
// precision is a plain per-call parameter. Nothing global is read or written, so
// concurrent generations cannot disturb one another.
//
// # Usage
//
//	square := func(d ...float64) (float64, error) { return d[0] * d[0], nil }
//	f, err := fractal.New(square, 4) // repeating count resolves to 3
//	if err != nil {
//	    return err
//	}
//	seq, err := f.Sequence([]float64{1}, fractal.Iterations(5))
//	// seq: [(1, 1) (4, 0.25) (12, 0.0625) (36, 0.015625) (108, 0.00390625)]
//	total, err := f.SumArea([]float64{1}, fractal.Iterations(5))
//	// total: 3.734375
package fractal
