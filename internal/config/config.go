package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/prizewheel/internal/animation"
	"github.com/jask/prizewheel/internal/wheel"
)

// Config holds application configuration.
type Config struct {
	Wheel WheelConfig
	UI    UIConfig
	Log   LogConfig
}

// WheelConfig holds the starting rewards and spin behaviour.
type WheelConfig struct {
	Rewards      []string
	SpinDuration time.Duration `mapstructure:"spin_duration"`
	Rotations    int
	Easing       string
	RemoveMode   string `mapstructure:"remove_mode"`
	Seed         int64
}

// UIConfig holds presentation settings.
type UIConfig struct {
	FrameRate int `mapstructure:"frame_rate"`
}

// LogConfig holds logger settings. An empty File disables logging.
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
	MaxAgeDays int `mapstructure:"max_age_days"`
}

// Load reads configuration from file and env. Env var overrides use prefix PRIZEWHEEL_.
// path, when non-empty, wins over PRIZEWHEEL_CONFIG and the default location.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("wheel.rewards", []string{})
	v.SetDefault("wheel.spin_duration", 4*time.Second)
	v.SetDefault("wheel.rotations", 10)
	v.SetDefault("wheel.easing", "ease-out")
	v.SetDefault("wheel.remove_mode", string(wheel.RemoveByValue))
	v.SetDefault("wheel.seed", 0)
	v.SetDefault("ui.frame_rate", 30)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 7)

	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("PRIZEWHEEL_CONFIG")
		explicit = path != ""
	}
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "prizewheel"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PRIZEWHEEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine; a named one must exist
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the wheel cannot run with.
func (c Config) Validate() error {
	if c.Wheel.SpinDuration < 0 {
		return fmt.Errorf("wheel.spin_duration must not be negative, got %s", c.Wheel.SpinDuration)
	}
	if c.Wheel.Rotations < 0 {
		return fmt.Errorf("wheel.rotations must not be negative, got %d", c.Wheel.Rotations)
	}
	if _, err := animation.ParseEasing(c.Wheel.Easing); err != nil {
		return fmt.Errorf("wheel.easing: %w", err)
	}
	if _, err := wheel.ParseRemoveMode(c.Wheel.RemoveMode); err != nil {
		return fmt.Errorf("wheel.remove_mode: %w", err)
	}
	if c.UI.FrameRate <= 0 || c.UI.FrameRate > 240 {
		return fmt.Errorf("ui.frame_rate must be in 1..240, got %d", c.UI.FrameRate)
	}
	return nil
}

// Rules returns the wheel transition rules this config selects.
func (c Config) Rules() wheel.Rules {
	mode, err := wheel.ParseRemoveMode(c.Wheel.RemoveMode)
	if err != nil {
		mode = wheel.RemoveByValue
	}
	return wheel.Rules{Rotations: c.Wheel.Rotations, RemoveMode: mode}
}

// Easing returns the configured curve, falling back to the default.
func (c Config) Easing() animation.Easing {
	e, err := animation.ParseEasing(c.Wheel.Easing)
	if err != nil {
		return animation.EaseOutCubic
	}
	return e
}
