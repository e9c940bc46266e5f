package scale_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/on-the-ground/fractalarea/scale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestNewContext_RejectsBadInput(t *testing.T) {
	_, err := scale.NewContext(0.5, 0)
	assert.ErrorIs(t, err, scale.ErrInvalidPrecision)

	_, err = scale.NewContext(math.NaN(), 10)
	assert.ErrorIs(t, err, scale.ErrConversion)

	_, err = scale.NewContext(math.Inf(1), 10)
	assert.ErrorIs(t, err, scale.ErrConversion)
}

func TestNewContext_KeepsRequestedPrecision(t *testing.T) {
	for _, p := range []int{1, 19, 20, 50} {
		ctx, err := scale.NewContext(0.5, p)
		require.NoError(t, err)
		assert.Equal(t, p, ctx.Precision())
	}
}

func TestRound_SignificantDigits(t *testing.T) {
	ctx, err := scale.NewContext(1, 3)
	require.NoError(t, err)

	cases := map[string]string{
		"0.123456":  "0.123",
		"1.23456":   "1.23",
		"0.0012345": "0.00123",
		"0.125":     "0.125",
		"0.1235":    "0.124", // half to even
		"0.1245":    "0.124",
		"12345.6":   "1.23E+4",
		"617":       "617",
	}
	for in, want := range cases {
		got, err := ctx.Round(mustParse(t, in))
		require.NoError(t, err)
		assert.Equal(t, want, got.String(), "round %s", in)
	}
}

func TestStep_RoundsIntegerDigits(t *testing.T) {
	ctx, err := scale.NewContext(0.5, 2)
	require.NoError(t, err)

	dims, err := scale.FromFloat64s([]float64{1234})
	require.NoError(t, err)
	dims, err = ctx.Step(dims)
	require.NoError(t, err)

	assert.Equal(t, "6.2E+2", dims[0].String())
	got, err := scale.ToFloat64s(dims)
	require.NoError(t, err)
	assert.Equal(t, 620.0, got[0])
}

func TestStep_HonoursPrecisionAboveNineteen(t *testing.T) {
	ctx, err := scale.NewContext(1.0/3.0, 20)
	require.NoError(t, err)

	dims, err := scale.FromFloat64s([]float64{1})
	require.NoError(t, err)
	for range 2 {
		dims, err = ctx.Step(dims)
		require.NoError(t, err)
	}
	// 0.3333333333333333^2 = 0.11111111111111108888888888888889
	assert.Equal(t, "0.11111111111111108889", dims[0].String())
	assert.Equal(t, int64(20), dims[0].NumDigits())
}

func TestStep_IsPathDependent(t *testing.T) {
	ctx, err := scale.NewContext(1.0/3.0, 4)
	require.NoError(t, err)

	dims, err := scale.FromFloat64s([]float64{1})
	require.NoError(t, err)

	for range 3 {
		dims, err = ctx.Step(dims)
		require.NoError(t, err)
		assert.LessOrEqual(t, dims[0].NumDigits(), int64(4))
	}
	assert.Equal(t, "0.03703", dims[0].String())
}

func TestStep_DoesNotMutateInput(t *testing.T) {
	ctx, err := scale.NewContext(0.5, 10)
	require.NoError(t, err)

	in, err := scale.FromFloat64s([]float64{2, 4})
	require.NoError(t, err)
	out, err := ctx.Step(in)
	require.NoError(t, err)

	assert.Zero(t, in[0].Cmp(apd.New(2, 0)))
	assert.Zero(t, out[0].Cmp(apd.New(1, 0)))
}

func TestStep_RelativeErrorAcrossMagnitudes(t *testing.T) {
	starts := []float64{1e-250, 1e-40, 1e-20, 3.7e-5, 1, 1234, 6.02e23, 1e40, 1e200}
	factors := []float64{0.1, 1.0 / 3.0, 0.7, 10}
	precisions := []int{2, 5, 10, 15}
	const levels = 12

	for _, p := range precisions {
		for _, f := range factors {
			for _, start := range starts {
				t.Run(fmt.Sprintf("p%d_f%g_x%g", p, f, start), func(t *testing.T) {
					ctx, err := scale.NewContext(f, p)
					require.NoError(t, err)
					dims, err := scale.FromFloat64s([]float64{start})
					require.NoError(t, err)

					// each step is off by at most half a unit in the last of p digits
					half := math.Pow(10, float64(1-p)) / 2
					want := start
					for k := 1; k <= levels; k++ {
						dims, err = ctx.Step(dims)
						require.NoError(t, err)
						assert.LessOrEqual(t, dims[0].NumDigits(), int64(p))
						want *= f

						got, err := scale.ToFloat64s(dims)
						require.NoError(t, err)
						require.NotZero(t, got[0], "level %d collapsed to zero", k)
						rel := math.Abs(got[0]-want) / want
						bound := math.Pow(1+half, float64(k)) - 1 + 1e-13
						assert.LessOrEqual(t, rel, bound, "level %d", k)
					}
				})
			}
		}
	}
}

func TestFromFloat64s_Conversion(t *testing.T) {
	_, err := scale.FromFloat64s([]float64{1, math.NaN()})
	assert.ErrorIs(t, err, scale.ErrConversion)

	_, err = scale.FromFloat64s([]float64{math.Inf(-1)})
	assert.ErrorIs(t, err, scale.ErrConversion)

	dims, err := scale.FromFloat64s([]float64{1e30, 1e-30})
	require.NoError(t, err)
	assert.Equal(t, "1E+30", dims[0].String())
	assert.Equal(t, "1E-30", dims[1].String())
}

func TestToFloat64s_OutOfRange(t *testing.T) {
	_, err := scale.ToFloat64s([]*apd.Decimal{apd.New(1, 400)})
	assert.ErrorIs(t, err, scale.ErrConversion)
}
