// Package config loads skillarc runtime settings from .skillarc.yaml,
// SKILLARC_* environment variables and CLI flags, all through viper.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/viper"

	"github.com/papapumpkin/skillarc/internal/layout"
)

// LayoutConfig holds the radial layout constants.
type LayoutConfig struct {
	BaseRadius     float64 `mapstructure:"base_radius"`
	RadiusStep     float64 `mapstructure:"radius_step"`
	RotationOffset float64 `mapstructure:"rotation_offset"`
}

// CopyConfig holds settings for the copy-prompt interaction.
type CopyConfig struct {
	ConfirmWindow time.Duration `mapstructure:"confirm_window"`
}

// Config holds all runtime configuration for a skillarc session.
// Values are populated from .skillarc.yaml, SKILLARC_* env vars, and CLI flags.
type Config struct {
	CatalogPath   string       `mapstructure:"catalog_path"`
	Watch         bool         `mapstructure:"watch"`
	TelemetryPath string       `mapstructure:"telemetry_path"`
	LogFile       string       `mapstructure:"log_file"`
	Verbose       bool         `mapstructure:"verbose"`
	Layout        LayoutConfig `mapstructure:"layout"`
	Copy          CopyConfig   `mapstructure:"copy"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	defaults := layout.DefaultParams()
	viper.SetDefault("catalog_path", "")
	viper.SetDefault("watch", true)
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("log_file", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("layout.base_radius", defaults.BaseRadius)
	viper.SetDefault("layout.radius_step", defaults.RadiusStep)
	viper.SetDefault("layout.rotation_offset", defaults.RotationOffset)
	viper.SetDefault("copy.confirm_window", "1600ms")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Copy.ConfirmWindow <= 0 {
		return Config{}, fmt.Errorf("copy.confirm_window must be positive, got %s", cfg.Copy.ConfirmWindow)
	}
	if err := cfg.Layout.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate keeps radii non-negative and strictly increasing along a branch.
func (l LayoutConfig) validate() error {
	if l.BaseRadius < 0 || !finite(l.BaseRadius) {
		return fmt.Errorf("layout.base_radius must be a finite non-negative number, got %g", l.BaseRadius)
	}
	if l.RadiusStep <= 0 || !finite(l.RadiusStep) {
		return fmt.Errorf("layout.radius_step must be a finite positive number, got %g", l.RadiusStep)
	}
	if !finite(l.RotationOffset) {
		return fmt.Errorf("layout.rotation_offset must be a finite number, got %g", l.RotationOffset)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// LayoutParams converts the layout section into layout.Params.
func (c Config) LayoutParams() layout.Params {
	return layout.Params{
		BaseRadius:     c.Layout.BaseRadius,
		RadiusStep:     c.Layout.RadiusStep,
		RotationOffset: c.Layout.RotationOffset,
	}
}
