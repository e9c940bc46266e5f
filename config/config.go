// Package config loads fractal generation settings from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/fractalarea/fractal"
)

// ErrInvalid wraps every validation failure; the message names the offending key.
var ErrInvalid = errors.New("config: invalid value")

// Config holds everything needed to build a factory and run one generation.
type Config struct {
	Fractal FractalConfig `yaml:"fractal"`
	Logging LoggingConfig `yaml:"logging"`
}

// FractalConfig mirrors fractal.Config plus the shape and its starting dimensions.
type FractalConfig struct {
	Shape      string           `yaml:"shape"`
	Dimensions []float64        `yaml:"dimensions"`
	Subfractal SubfractalConfig `yaml:"subfractal"`

	ChangeFraction float64 `yaml:"change_fraction"`
	Iterations     int     `yaml:"iterations"`
	Precision      int     `yaml:"precision"`
	// TableSize enables formula memoization when positive.
	TableSize uint32 `yaml:"table_size"`
}

type SubfractalConfig struct {
	InitialCount   int `yaml:"initial_count"`
	RepeatingCount int `yaml:"repeating_count"` // 0 means initial_count - 1
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default reproduces the factory defaults for a unit square split into four.
func Default() Config {
	return Config{
		Fractal: FractalConfig{
			Shape:      "square",
			Dimensions: []float64{1},
			Subfractal: SubfractalConfig{
				InitialCount:   4,
				RepeatingCount: fractal.DefaultRepeatingSubfractalCount,
			},
			ChangeFraction: fractal.DefaultChangeFraction,
			Iterations:     fractal.DefaultIterations,
			Precision:      fractal.DefaultPrecision,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks value ranges. The repeating count is not checked here: the factory
// corrects it.
func (c Config) Validate() error {
	f := c.Fractal
	switch {
	case f.Shape == "":
		return invalid(KeyShape, f.Shape)
	case len(f.Dimensions) == 0:
		return invalid(KeyDimensions, f.Dimensions)
	case f.Subfractal.InitialCount < 1:
		return invalid(KeyInitialSubfractal, f.Subfractal.InitialCount)
	case !(f.ChangeFraction > 0) || math.IsInf(f.ChangeFraction, 0):
		return invalid(KeyChangeFraction, f.ChangeFraction)
	case f.Iterations < 1:
		return invalid(KeyIterations, f.Iterations)
	case f.Precision < 1:
		return invalid(KeyPrecision, f.Precision)
	}
	for _, d := range f.Dimensions {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return invalid(KeyDimensions, f.Dimensions)
		}
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, KeyLoggingLevel, err)
	}
	return nil
}

// FactoryOptions translates the fractal section into factory options.
func (c Config) FactoryOptions() []fractal.Option {
	f := c.Fractal
	opts := []fractal.Option{
		fractal.WithRepeatingSubfractalCount(f.Subfractal.RepeatingCount),
		fractal.WithChangeFraction(f.ChangeFraction),
		fractal.WithIterations(f.Iterations),
		fractal.WithPrecision(f.Precision),
	}
	if f.TableSize > 0 {
		opts = append(opts, fractal.WithTableizedFormula(f.TableSize))
	}
	return opts
}

// ZapLevel parses the configured level; empty means info.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	if l.Level == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(l.Level)
}

func invalid(key string, v any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalid, key, v)
}
