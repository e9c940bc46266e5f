package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/on-the-ground/fractalarea/config"
	"github.com/on-the-ground/fractalarea/fractal"
	"github.com/on-the-ground/fractalarea/logging"
	"github.com/on-the-ground/fractalarea/shape"
)

// flags holds the raw command line; only flags the user set override the config.
type flags struct {
	configPath string
	logLevel   string

	shape          string
	dims           []float64
	initial        int
	repeating      int
	changeFraction float64
	iterations     int
	precision      int
	tableSize      uint32
}

func newRootCmd() *cobra.Command {
	fl := &flags{}
	root := &cobra.Command{
		Use:          "fractal",
		Short:        "Compute areas of self-similar fractal subdivisions",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&fl.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&fl.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.PersistentFlags().StringVar(&fl.shape, "shape", "", "base shape: "+fmt.Sprint(shape.Names()))
	root.PersistentFlags().Float64SliceVar(&fl.dims, "dims", nil, "starting dimensional arguments")
	root.PersistentFlags().IntVar(&fl.initial, "initial", 0, "initial subfractal count")
	root.PersistentFlags().IntVar(&fl.repeating, "repeating", 0, "repeating subfractal count (corrected to initial-1 if out of range)")
	root.PersistentFlags().Float64Var(&fl.changeFraction, "change-fraction", 0, "per-level scaling multiplier")
	root.PersistentFlags().IntVar(&fl.iterations, "iterations", 0, "number of levels, level 0 included")
	root.PersistentFlags().IntVar(&fl.precision, "precision", 0, "significant decimal digits for scaling")
	root.PersistentFlags().Uint32Var(&fl.tableSize, "table-size", 0, "memoize the area formula in a table of this size")

	root.AddCommand(
		&cobra.Command{
			Use:   "sequence",
			Short: "Print count and area per shape for every level",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, fl, printSequence)
			},
		},
		&cobra.Command{
			Use:   "sum",
			Short: "Print the total area across all levels",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, fl, printSum)
			},
		},
	)
	return root
}

type printer func(cmd *cobra.Command, logger *zap.Logger, f *fractal.Factory, dims []float64) error

func run(cmd *cobra.Command, fl *flags, emit printer) error {
	cfg, err := resolveConfig(cmd, fl)
	if err != nil {
		return err
	}
	level, err := cfg.Logging.ZapLevel()
	if err != nil {
		return err
	}
	logger := logging.NewConsole(cmd.ErrOrStderr(), level)
	defer logging.Sync(logger)

	s, err := shape.Lookup(cfg.Fractal.Shape)
	if err != nil {
		return err
	}
	opts := append(cfg.FactoryOptions(), fractal.WithLogger(logger))
	f, err := s.Factory(cfg.Fractal.Subfractal.InitialCount, opts...)
	if err != nil {
		return err
	}
	logger.Info("resolved factory",
		zap.String("shape", s.Name),
		zap.Float64s("dims", cfg.Fractal.Dimensions),
		zap.Int(config.KeyRepeatingSubfractal, f.Config().RepeatingSubfractalCount),
		zap.Uint32(config.KeyTableSize, cfg.Fractal.TableSize),
	)
	return emit(cmd, logger, f, cfg.Fractal.Dimensions)
}

func resolveConfig(cmd *cobra.Command, fl *flags) (config.Config, error) {
	cfg := config.Default()
	if fl.configPath != "" {
		loaded, err := config.Load(fl.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	set := cmd.Flags().Changed
	if set("log-level") {
		cfg.Logging.Level = fl.logLevel
	}
	if set("shape") {
		cfg.Fractal.Shape = fl.shape
	}
	if set("dims") {
		cfg.Fractal.Dimensions = fl.dims
	}
	if set("initial") {
		cfg.Fractal.Subfractal.InitialCount = fl.initial
	}
	if set("repeating") {
		cfg.Fractal.Subfractal.RepeatingCount = fl.repeating
	}
	if set("change-fraction") {
		cfg.Fractal.ChangeFraction = fl.changeFraction
	}
	if set("iterations") {
		cfg.Fractal.Iterations = fl.iterations
	}
	if set("precision") {
		cfg.Fractal.Precision = fl.precision
	}
	if set("table-size") {
		cfg.Fractal.TableSize = fl.tableSize
	}
	return cfg, cfg.Validate()
}

func printSequence(cmd *cobra.Command, logger *zap.Logger, f *fractal.Factory, dims []float64) error {
	seq, span, err := f.TimedSequence(dims)
	if err != nil {
		return err
	}
	logger.Info("generated sequence",
		zap.Int("levels", len(seq)),
		zap.Time("start", span.Start()),
		zap.Duration("elapsed", span.Duration()),
	)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "level\tcount\tarea_per_shape\tlevel_area")
	for k, l := range seq {
		fmt.Fprintf(w, "%d\t%d\t%v\t%v\n", k, l.Count, l.AreaPerShape, float64(l.Count)*l.AreaPerShape)
	}
	fmt.Fprintf(w, "total\t\t\t%v\n", seq.TotalArea())
	return w.Flush()
}

func printSum(cmd *cobra.Command, _ *zap.Logger, f *fractal.Factory, dims []float64) error {
	total, err := f.SumArea(dims)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), total)
	return err
}
