package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	original := Logger
	t.Cleanup(func() { Set(original) })

	core, logs := observer.New(level)
	Set(zap.New(core))
	return logs
}

func TestPackageHelpersUseGlobalLogger(t *testing.T) {
	logs := observe(t, zapcore.WarnLevel)

	Debug("hidden")
	Warn("price file missing", zap.String("path", "prices.hcl"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "price file missing", entries[0].Message)
	assert.Equal(t, "prices.hcl", entries[0].ContextMap()["path"])
}

func TestForRunTagsEntries(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	ForRun("run-1").Debug("starting run")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "run-1", entries[0].ContextMap()["run_id"])
}

func TestSetNilInstallsNop(t *testing.T) {
	original := Logger
	defer Set(original)

	Set(nil)
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() { Warn("dropped") })
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logger, err := New(Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Info("run finished", zap.Int("priced", 20))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"run finished"`)
	assert.Contains(t, string(data), `"priced":20`)
}

func TestInitializeKeepsLoggerOnError(t *testing.T) {
	original := Logger
	defer Set(original)

	err := Initialize(Config{Level: "info", Output: filepath.Join(t.TempDir(), "missing", "run.log")})
	require.Error(t, err)
	assert.Same(t, original, Logger)
}
