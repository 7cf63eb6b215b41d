package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Sentinel errors for out-of-range configuration values.
var (
	// ErrInvalidThreshold indicates a visibility threshold outside (0, 1].
	ErrInvalidThreshold = errors.New("threshold must be in (0, 1]")
	// ErrInvalidFPS indicates a non-positive or absurd scroll frame rate.
	ErrInvalidFPS = errors.New("scroll_fps must be between 1 and 240")
)

// Config holds all runtime configuration for a vitae session.
// Values are populated from .vitae.yaml, VITAE_* env vars, and CLI flags.
type Config struct {
	ContentPath  string  `mapstructure:"content_path"`
	Threshold    float64 `mapstructure:"threshold"`
	SmoothScroll bool    `mapstructure:"smooth_scroll"`
	ScrollFPS    int     `mapstructure:"scroll_fps"`
	Mouse        bool    `mapstructure:"mouse"`
	AltScreen    bool    `mapstructure:"alt_screen"`
	TracePath    string  `mapstructure:"trace_path"`
	Verbose      bool    `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags, and rejects values
// the view cannot work with.
func Load() (Config, error) {
	viper.SetDefault("content_path", "")
	viper.SetDefault("threshold", 0.3)
	viper.SetDefault("smooth_scroll", true)
	viper.SetDefault("scroll_fps", 60)
	viper.SetDefault("mouse", true)
	viper.SetDefault("alt_screen", true)
	viper.SetDefault("trace_path", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Threshold <= 0 || c.Threshold > 1 {
		return fmt.Errorf("config: %w (got %v)", ErrInvalidThreshold, c.Threshold)
	}
	if c.ScrollFPS < 1 || c.ScrollFPS > 240 {
		return fmt.Errorf("config: %w (got %d)", ErrInvalidFPS, c.ScrollFPS)
	}
	return nil
}
