package fractal

import "go.uber.org/zap"

// Option customizes a Factory at construction time.
type Option func(*factoryOptions)

type factoryOptions struct {
	config    Config
	logger    *zap.Logger
	tableSize uint32
}

// WithRepeatingSubfractalCount sets the branching factor applied at every level after
// the first. Values outside (0, initial) are corrected to initial-1 by New.
func WithRepeatingSubfractalCount(n int) Option {
	return func(o *factoryOptions) { o.config.RepeatingSubfractalCount = n }
}

// WithChangeFraction sets the default per-level scaling multiplier.
func WithChangeFraction(f float64) Option {
	return func(o *factoryOptions) { o.config.ChangeFraction = f }
}

// WithIterations sets the default number of levels, level 0 included.
func WithIterations(n int) Option {
	return func(o *factoryOptions) { o.config.Iterations = n }
}

// WithPrecision sets the default number of significant digits used for scaling.
func WithPrecision(p int) Option {
	return func(o *factoryOptions) { o.config.Precision = p }
}

// WithArity fixes the number of dimensional arguments every call must pass.
func WithArity(n int) Option {
	return func(o *factoryOptions) { o.config.Arity = n }
}

// WithLogger routes the factory's debug output to logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *factoryOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTableizedFormula memoizes the area formula in a table of at most maxTableSize
// entries per generation. Only use it with pure formulas.
func WithTableizedFormula(maxTableSize uint32) Option {
	return func(o *factoryOptions) { o.tableSize = maxTableSize }
}

// Override changes one parameter for a single Sequence or SumArea call.
// Overrides are applied as given; they are not normalized.
type Override func(*Config)

func ChangeFraction(f float64) Override {
	return func(c *Config) { c.ChangeFraction = f }
}

func Iterations(n int) Override {
	return func(c *Config) { c.Iterations = n }
}

func InitialSubfractalCount(n int) Override {
	return func(c *Config) { c.InitialSubfractalCount = n }
}

func RepeatingSubfractalCount(n int) Override {
	return func(c *Config) { c.RepeatingSubfractalCount = n }
}

func Precision(p int) Override {
	return func(c *Config) { c.Precision = p }
}
