package fractal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"

	"github.com/on-the-ground/fractalarea/purefn"
)

// SequenceFunc generates a fractal sequence with per-call overrides.
type SequenceFunc func(dims []float64, overrides ...Override) (Sequence, error)

// SumFunc computes the total fractal area with per-call overrides.
type SumFunc func(dims []float64, overrides ...Override) (float64, error)

// Factory binds an area formula to a resolved default Config.
//
// A Factory is immutable once New returns and is safe for concurrent use.
type Factory struct {
	id      string
	formula AreaFormula
	config  Config
	logger  *zap.Logger
}

// New binds formula and its defaults.
//
// The repeating count defaults to DefaultRepeatingSubfractalCount and is corrected to
// initialSubfractalCount-1 whenever it does not lie strictly between 0 and
// initialSubfractalCount. That correction is silent; only a debug line records it.
func New(formula AreaFormula, initialSubfractalCount int, opts ...Option) (*Factory, error) {
	if formula == nil {
		return nil, ErrNilFormula
	}
	if initialSubfractalCount < 1 {
		return nil, fmt.Errorf("%w: initial %d", ErrInvalidSubfractalCount, initialSubfractalCount)
	}

	o := factoryOptions{
		config: Config{
			InitialSubfractalCount:   initialSubfractalCount,
			RepeatingSubfractalCount: DefaultRepeatingSubfractalCount,
			ChangeFraction:           DefaultChangeFraction,
			Iterations:               DefaultIterations,
			Precision:                DefaultPrecision,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	requested := o.config.RepeatingSubfractalCount
	o.config.RepeatingSubfractalCount = ResolveRepeatingSubfractalCount(initialSubfractalCount, requested)
	if err := o.config.Validate(); err != nil {
		return nil, err
	}
	if o.config.Arity < 0 {
		return nil, fmt.Errorf("%w: arity %d", ErrArity, o.config.Arity)
	}

	if o.tableSize > 0 {
		formula = purefn.TableizeFloat64(formula, o.tableSize)
	}

	f := &Factory{
		id:      uuid.New().String(),
		formula: formula,
		config:  o.config,
		logger:  o.logger,
	}
	if requested != f.config.RepeatingSubfractalCount {
		f.logger.Debug("normalized repeating subfractal count",
			zap.String("factoryId", f.id),
			zap.Int("requested", requested),
			zap.Int("resolved", f.config.RepeatingSubfractalCount),
		)
	}
	f.logger.Sugar().Debugf("created fractal factory: factoryId: %v, config: %+v, tableSize: %d", f.id, f.config, o.tableSize)
	return f, nil
}

// ID identifies the factory in log output.
func (f *Factory) ID() string { return f.id }

// Config returns the resolved defaults.
func (f *Factory) Config() Config { return f.config }

// Bind returns the factory's two operations as independent callables sharing its
// defaults.
func (f *Factory) Bind() (SequenceFunc, SumFunc) {
	return f.Sequence, f.SumArea
}

// Sequence generates the fractal sequence for dims with the factory's defaults,
// modified by overrides. See Generate.
func (f *Factory) Sequence(dims []float64, overrides ...Override) (Sequence, error) {
	seq, _, err := f.TimedSequence(dims, overrides...)
	return seq, err
}

// TimedSequence is Sequence that also reports the wall-clock span the generation
// took. The span is returned on failure too.
func (f *Factory) TimedSequence(dims []float64, overrides ...Override) (Sequence, timespan.TimeSpan, error) {
	cfg := f.config.With(overrides...)
	start := time.Now()
	seq, err := Generate(f.formula, dims, cfg)
	span := timespan.BetweenTimes(start, time.Now())
	if err != nil {
		f.logger.Debug("fractal sequence failed",
			zap.String("factoryId", f.id),
			zap.Float64s("dims", dims),
			zap.Duration("elapsed", span.Duration()),
			zap.Error(err),
		)
		return nil, span, err
	}
	if ce := f.logger.Check(zap.DebugLevel, "generated fractal sequence"); ce != nil {
		ce.Write(
			zap.String("factoryId", f.id),
			zap.Int("levels", len(seq)),
			zap.Int("precision", cfg.Precision),
			zap.Time("start", span.Start()),
			zap.Duration("elapsed", span.Duration()),
			zap.Uint64("fingerprint", seq.Fingerprint()),
		)
	}
	return seq, span, nil
}

// SumArea returns the total area of the sequence Sequence would produce for the same
// arguments. Both operations resolve their defaults from the same Config.
func (f *Factory) SumArea(dims []float64, overrides ...Override) (float64, error) {
	seq, err := f.Sequence(dims, overrides...)
	if err != nil {
		return 0, err
	}
	return seq.TotalArea(), nil
}
