// Package logging builds the zap loggers used by the fractal command.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewConsole returns a human-readable logger writing to w at level and above.
func NewConsole(w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core)
}

// NewStderr is NewConsole on standard error.
func NewStderr(level zapcore.Level) *zap.Logger {
	return NewConsole(os.Stderr, level)
}

// Sync flushes logger, ignoring the EINVAL/ENOTTY errors syncing a terminal yields.
func Sync(logger *zap.Logger) {
	_ = logger.Sync()
}
