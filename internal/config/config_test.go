package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/prizewheel/internal/wheel"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PRIZEWHEEL_CONFIG", "")
	return home
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Empty(t, cfg.Wheel.Rewards)
	require.Equal(t, 4*time.Second, cfg.Wheel.SpinDuration)
	require.Equal(t, 10, cfg.Wheel.Rotations)
	require.Equal(t, "value", cfg.Wheel.RemoveMode)
	require.Equal(t, 30, cfg.UI.FrameRate)
	require.Empty(t, cfg.Log.File)
	require.Equal(t, wheel.DefaultRules(), cfg.Rules())
}

func TestLoadFromDefaultLocation(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "prizewheel")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeConfig(t, dir, `
[wheel]
rewards = ["Coffee", "Cake"]
spin_duration = "1500ms"
remove_mode = "entry"
`)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, []string{"Coffee", "Cake"}, cfg.Wheel.Rewards)
	require.Equal(t, 1500*time.Millisecond, cfg.Wheel.SpinDuration)
	require.Equal(t, wheel.RemoveByEntry, cfg.Rules().RemoveMode)
}

func TestLoadExplicitPathAndEnvOverride(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), `
[wheel]
rotations = 3

[ui]
frame_rate = 60
`)
	t.Setenv("PRIZEWHEEL_UI_FRAME_RATE", "24")
	t.Setenv("PRIZEWHEEL_WHEEL_SEED", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Wheel.Rotations)
	require.Equal(t, 24, cfg.UI.FrameRate)
	require.Equal(t, int64(7), cfg.Wheel.Seed)
}

func TestLoadConfigEnvVar(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), `
[log]
file = "/tmp/prizewheel.log"
level = "debug"
`)
	t.Setenv("PRIZEWHEEL_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "/tmp/prizewheel.log", cfg.Log.File)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"easing":      "[wheel]\neasing = \"bounce\"\n",
		"remove mode": "[wheel]\nremove_mode = \"index\"\n",
		"rotations":   "[wheel]\nrotations = -1\n",
		"frame rate":  "[ui]\nframe_rate = 0\n",
		"duration":    "[wheel]\nspin_duration = \"-1s\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			_, err := Load(writeConfig(t, t.TempDir(), body))
			require.Error(t, err)
		})
	}
}
