package fractal_test

import (
	"testing"
	"time"

	"github.com/on-the-ground/fractalarea/fractal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_ConcurrentPrecisions(t *testing.T) {
	f, err := fractal.New(square, 4, fractal.WithIterations(12), fractal.WithChangeFraction(1.0/3.0))
	require.NoError(t, err)

	precisions := []int{2, 5, 10, 19}
	want := make(map[int]uint64, len(precisions))
	for _, p := range precisions {
		seq, err := f.Sequence([]float64{1}, fractal.Precision(p))
		require.NoError(t, err)
		want[p] = seq.Fingerprint()
	}

	// every goroutine uses its own precision; none may observe another's
	got := make([]uint64, 64)
	var g errgroup.Group
	for i := range got {
		g.Go(func() error {
			seq, err := f.Sequence([]float64{1}, fractal.Precision(precisions[i%len(precisions)]))
			if err != nil {
				return err
			}
			got[i] = seq.Fingerprint()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for i, fp := range got {
		assert.Equal(t, want[precisions[i%len(precisions)]], fp, "goroutine %d", i)
	}
	assert.NotEqual(t, want[2], want[10])
}

func TestFactory_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	f, err := fractal.New(square, 2,
		fractal.WithRepeatingSubfractalCount(2),
		fractal.WithLogger(zap.New(core)),
	)
	require.NoError(t, err)

	normalized := logs.FilterMessage("normalized repeating subfractal count").All()
	require.Len(t, normalized, 1)
	assert.Equal(t, int64(2), normalized[0].ContextMap()["requested"])
	assert.Equal(t, int64(1), normalized[0].ContextMap()["resolved"])
	assert.Equal(t, f.ID(), normalized[0].ContextMap()["factoryId"])

	_, err = f.Sequence([]float64{1}, fractal.Iterations(3))
	require.NoError(t, err)
	generated := logs.FilterMessage("generated fractal sequence").All()
	require.Len(t, generated, 1)
	assert.Equal(t, int64(3), generated[0].ContextMap()["levels"])

	_, err = f.Sequence([]float64{1}, fractal.Iterations(-1))
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("fractal sequence failed").Len())
}

func TestFactory_DebugFieldsSkippedAboveDebug(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	f, err := fractal.New(square, 2,
		fractal.WithRepeatingSubfractalCount(2),
		fractal.WithLogger(zap.New(core)),
	)
	require.NoError(t, err)

	_, err = f.Sequence([]float64{1}, fractal.Iterations(3))
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}

func TestFactory_TimedSequence(t *testing.T) {
	f, err := fractal.New(square, 4, fractal.WithIterations(5))
	require.NoError(t, err)

	before := time.Now()
	seq, span, err := f.TimedSequence([]float64{1})
	after := time.Now()
	require.NoError(t, err)

	want, err := f.Sequence([]float64{1})
	require.NoError(t, err)
	assert.Equal(t, want, seq)
	assert.False(t, span.Start().Before(before))
	assert.False(t, span.End().After(after))
	assert.GreaterOrEqual(t, span.Duration(), time.Duration(0))

	seq, span, err = f.TimedSequence([]float64{1}, fractal.Iterations(0))
	assert.ErrorIs(t, err, fractal.ErrInvalidIterations)
	assert.Nil(t, seq)
	assert.False(t, span.Start().IsZero())
}

func TestFactory_NilLoggerIgnored(t *testing.T) {
	f, err := fractal.New(square, 3, fractal.WithLogger(nil))
	require.NoError(t, err)
	_, err = f.Sequence([]float64{1})
	assert.NoError(t, err)
}

func BenchmarkSequence(b *testing.B) {
	f, err := fractal.New(square, 4, fractal.WithIterations(32), fractal.WithPrecision(19))
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Sequence([]float64{5})
	}
}

func BenchmarkSequenceTableized(b *testing.B) {
	f, err := fractal.New(square, 4,
		fractal.WithIterations(32),
		fractal.WithPrecision(19),
		fractal.WithTableizedFormula(64),
	)
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Sequence([]float64{5})
	}
}
