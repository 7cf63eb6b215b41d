package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"ContentPath", cfg.ContentPath, ""},
		{"Threshold", cfg.Threshold, 0.3},
		{"SmoothScroll", cfg.SmoothScroll, true},
		{"ScrollFPS", cfg.ScrollFPS, 60},
		{"Mouse", cfg.Mouse, true},
		{"AltScreen", cfg.AltScreen, true},
		{"TracePath", cfg.TracePath, ""},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper()

	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "content_path",
			envKey: "VITAE_CONTENT_PATH",
			envVal: "/tmp/me.toml",
			field:  func(c Config) any { return c.ContentPath },
			want:   "/tmp/me.toml",
		},
		{
			name:   "threshold",
			envKey: "VITAE_THRESHOLD",
			envVal: "0.5",
			field:  func(c Config) any { return c.Threshold },
			want:   0.5,
		},
		{
			name:   "smooth_scroll",
			envKey: "VITAE_SMOOTH_SCROLL",
			envVal: "false",
			field:  func(c Config) any { return c.SmoothScroll },
			want:   false,
		},
		{
			name:   "scroll_fps",
			envKey: "VITAE_SCROLL_FPS",
			envVal: "30",
			field:  func(c Config) any { return c.ScrollFPS },
			want:   30,
		},
		{
			name:   "trace_path",
			envKey: "VITAE_TRACE_PATH",
			envVal: "/tmp/trace.jsonl",
			field:  func(c Config) any { return c.TracePath },
			want:   "/tmp/trace.jsonl",
		},
		{
			name:   "verbose",
			envKey: "VITAE_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			// Set env prefix so VITAE_* env vars map to config keys.
			viper.SetEnvPrefix("VITAE")
			viper.AutomaticEnv()

			os.Setenv(tt.envKey, tt.envVal)
			defer os.Unsetenv(tt.envKey)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	resetViper()

	path := filepath.Join(t.TempDir(), ".vitae.yaml")
	body := "threshold: 0.6\nmouse: false\ncontent_path: profile.yaml\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.Threshold != 0.6 || cfg.Mouse || cfg.ContentPath != "profile.yaml" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if !cfg.SmoothScroll {
		t.Error("unset keys should keep their defaults")
	}
}

func TestLoad_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
		want error
	}{
		{"zero threshold", "threshold", 0.0, ErrInvalidThreshold},
		{"threshold above one", "threshold", 1.2, ErrInvalidThreshold},
		{"zero fps", "scroll_fps", 0, ErrInvalidFPS},
		{"huge fps", "scroll_fps", 1000, ErrInvalidFPS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			viper.Set(tt.key, tt.val)

			_, err := Load()
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}
