package logging_test

import (
	"bytes"
	"testing"

	"github.com/on-the-ground/fractalarea/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stretchr/testify/assert"
)

func TestNewConsole_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewConsole(&buf, zapcore.InfoLevel)

	logger.Debug("hidden")
	logger.Info("shown", zap.Int("levels", 5))
	logging.Sync(logger)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, `"levels": 5`)
}
