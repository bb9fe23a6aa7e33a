package config

import (
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/iburimskiy/wheel-picker/internal/wheel"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Spin.DurationSeconds != 5 {
		t.Errorf("Expected spin duration 5, got %d", cfg.Spin.DurationSeconds)
	}
	if cfg.Confetti.Burst != 150 || cfg.Confetti.Cap != 300 {
		t.Errorf("Expected confetti 150/300, got %d/%d", cfg.Confetti.Burst, cfg.Confetti.Cap)
	}
	if cfg.Celebration.Display != 5*time.Second {
		t.Errorf("Expected 5s celebration, got %s", cfg.Celebration.Display)
	}
	if !reflect.DeepEqual(cfg.Wheel.Names, wheel.DefaultNames) {
		t.Errorf("Expected the wheel's seed names, got %v", cfg.Wheel.Names)
	}
	cfg.Wheel.Names[0] = "Changed"
	if wheel.DefaultNames[0] == "Changed" {
		t.Error("config shares storage with wheel.DefaultNames")
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "bad wheel color",
			mutate:  func(c *Config) { c.Wheel.Color = "orange" },
			wantErr: "wheel color",
		},
		{
			name:    "bad swatch",
			mutate:  func(c *Config) { c.Wheel.Swatches = append(c.Wheel.Swatches, "#12") },
			wantErr: "wheel swatches",
		},
		{
			name:    "duration above max",
			mutate:  func(c *Config) { c.Spin.DurationSeconds = 61 },
			wantErr: "duration_seconds",
		},
		{
			name:    "inverted turns",
			mutate:  func(c *Config) { c.Spin.MinTurns, c.Spin.MaxTurns = 10, 5 },
			wantErr: "turns",
		},
		{
			name:    "empty confetti palette",
			mutate:  func(c *Config) { c.Confetti.Palette = nil },
			wantErr: "palette",
		},
		{
			name:    "zero confetti interval",
			mutate:  func(c *Config) { c.Confetti.Interval = 0 },
			wantErr: "timings",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: "log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#FF5733", want: color.RGBA{R: 0xFF, G: 0x57, B: 0x33, A: 0xFF}},
		{in: "ff5733", want: color.RGBA{R: 0xFF, G: 0x57, B: 0x33, A: 0xFF}},
		{in: "#fff", want: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{in: "#GG0000", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatColorAndContrast(t *testing.T) {
	if got := FormatColor(color.RGBA{R: 0xFF, G: 0x57, B: 0x33, A: 0xFF}); got != "#FF5733" {
		t.Errorf("FormatColor = %s, want #FF5733", got)
	}
	if !IsLight(color.White) {
		t.Error("white should be light")
	}
	if IsLight(color.RGBA{R: 0x34, G: 0x49, B: 0x5E, A: 0xFF}) {
		t.Error("dark slate should not be light")
	}
}

func TestPickerOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spin.Seed = 42
	cfg.Wheel.Names = nil

	opts, err := cfg.PickerOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Names == nil || len(opts.Names) != 0 {
		t.Errorf("expected an explicitly empty name list, got %#v", opts.Names)
	}
	if len(opts.Confetti.Palette) != len(cfg.Confetti.Palette) {
		t.Errorf("expected %d palette colors, got %d", len(cfg.Confetti.Palette), len(opts.Confetti.Palette))
	}

	again, _ := cfg.PickerOptions()
	if opts.Rand.Float64() != again.Rand.Float64() {
		t.Error("expected a fixed seed to give repeatable spins")
	}
}

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wheel.yaml")
	content := `
wheel:
  names: [Alice, Bob]
  color: "#112233"
spin:
  duration_seconds: 8
confetti:
  interval: 25ms
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("WHEELPICKER_TEXT_COLOR", "#000000")
	t.Setenv("WHEELPICKER_SPIN_DURATION", "9")

	loader := &Loader{}
	cfg, err := loader.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(cfg.Wheel.Names, []string{"Alice", "Bob"}) {
		t.Errorf("names = %v", cfg.Wheel.Names)
	}
	if cfg.Wheel.Color != "#112233" {
		t.Errorf("color = %s", cfg.Wheel.Color)
	}
	if cfg.Wheel.TextColor != "#000000" {
		t.Errorf("env should override text color, got %s", cfg.Wheel.TextColor)
	}
	if cfg.Spin.DurationSeconds != 9 {
		t.Errorf("env should override duration, got %d", cfg.Spin.DurationSeconds)
	}
	if cfg.Confetti.Interval != 25*time.Millisecond {
		t.Errorf("interval = %s", cfg.Confetti.Interval)
	}
	if cfg.Confetti.Cap != 300 {
		t.Errorf("missing keys should keep defaults, cap = %d", cfg.Confetti.Cap)
	}
}

func TestLoadConfigEnvNames(t *testing.T) {
	t.Setenv("WHEELPICKER_NAMES", " Ann , ,Ben")

	cfg, err := (&Loader{}).LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg.Wheel.Names, []string{"Ann", "Ben"}) {
		t.Errorf("names = %v", cfg.Wheel.Names)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	t.Setenv("WHEELPICKER_SPIN_DURATION", "soon")

	if _, err := (&Loader{}).LoadConfig(""); err == nil {
		t.Error("expected error for non-numeric duration")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := (&Loader{}).LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}
