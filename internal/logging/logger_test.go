package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jask/prizewheel/internal/config"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	log, err := New(config.LogConfig{}, true)
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zap.ErrorLevel))
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "prizewheel.log")
	log, err := New(config.LogConfig{Level: "info", File: path, MaxSizeMB: 1}, false)
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zap.DebugLevel))

	log.Info("spin settled", zap.String("label", "Coffee"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "spin settled")
	require.Contains(t, string(data), "Coffee")
}

func TestVerboseForcesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prizewheel.log")
	log, err := New(config.LogConfig{Level: "error", File: path}, true)
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zap.DebugLevel))
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")}, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), `"loud"`)
}

func TestBlankLevelDefaultsToInfo(t *testing.T) {
	log, err := New(config.LogConfig{File: filepath.Join(t.TempDir(), "x.log")}, false)
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zap.InfoLevel))
	require.False(t, log.Core().Enabled(zap.DebugLevel))
}
