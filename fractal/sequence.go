package fractal

import (
	"fmt"
	"math/bits"

	"github.com/on-the-ground/fractalarea/scale"
)

// Generate builds the fractal sequence for a shape with dimensions dims.
//
// Level 0 is formula(dims...) evaluated on the native values with Count 1. Each later
// level multiplies the previous level's dimensions by cfg.ChangeFraction in decimal
// arithmetic rounded to cfg.Precision significant digits, converts them back to
// float64 and evaluates formula on them. Level 1 holds cfg.InitialSubfractalCount
// shapes; every further level multiplies the count by cfg.RepeatingSubfractalCount.
//
// cfg is used as given; callers wanting the silent repeating-count correction apply
// ResolveRepeatingSubfractalCount first (New does). Errors from formula are returned
// unchanged and no partial sequence is returned on failure.
func Generate(formula AreaFormula, dims []float64, cfg Config) (Sequence, error) {
	if formula == nil {
		return nil, ErrNilFormula
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.checkArity(dims); err != nil {
		return nil, err
	}

	area, err := formula(dims...)
	if err != nil {
		return nil, err
	}
	seq := make(Sequence, 1, cfg.Iterations)
	seq[0] = Level{Count: 1, AreaPerShape: area}
	if cfg.Iterations == 1 {
		return seq, nil
	}

	ctx, err := scale.NewContext(cfg.ChangeFraction, cfg.Precision)
	if err != nil {
		return nil, fmt.Errorf("change fraction: %w", err)
	}
	scaled, err := scale.FromFloat64s(dims)
	if err != nil {
		return nil, err
	}

	count := uint64(cfg.InitialSubfractalCount)
	repeating := uint64(cfg.RepeatingSubfractalCount)
	for k := 1; k < cfg.Iterations; k++ {
		if k > 1 {
			hi, lo := bits.Mul64(count, repeating)
			if hi != 0 {
				return nil, fmt.Errorf("%w: level %d", ErrCountOverflow, k)
			}
			count = lo
		}
		if scaled, err = ctx.Step(scaled); err != nil {
			return nil, fmt.Errorf("level %d: %w", k, err)
		}
		native, err := scale.ToFloat64s(scaled)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", k, err)
		}
		area, err := formula(native...)
		if err != nil {
			return nil, err
		}
		seq = append(seq, Level{Count: count, AreaPerShape: area})
	}
	return seq, nil
}
