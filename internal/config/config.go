package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/wheel-picker/internal/wheel"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Side panel
	PanelWidth   = 320
	PanelPadding = 16
	ButtonHeight = 36
	ButtonGap    = 8
	TextAreaRows = 6
	SwatchSize   = 28

	// Pointer triangle above the wheel
	PointerWidth  = 28
	PointerHeight = 30

	// Overlay
	CelebrationFontSize  = 56
	AnnouncementFontSize = 36
	ModalWidth           = 420
	ModalHeight          = 220
)

// Config is the full application configuration.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Wheel       WheelConfig       `yaml:"wheel"`
	Spin        SpinConfig        `yaml:"spin"`
	Celebration CelebrationConfig `yaml:"celebration"`
	Confetti    ConfettiConfig    `yaml:"confetti"`
	Sounds      SoundsConfig      `yaml:"sounds"`
	NamesFile   NamesFileConfig   `yaml:"names_file"`
	Log         LogConfig         `yaml:"log"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

type WheelConfig struct {
	Names     []string `yaml:"names"`
	Color     string   `yaml:"color"`
	TextColor string   `yaml:"text_color"`
	Swatches  []string `yaml:"swatches"`
}

type SpinConfig struct {
	DurationSeconds int     `yaml:"duration_seconds"`
	MinSeconds      int     `yaml:"min_seconds"`
	MaxSeconds      int     `yaml:"max_seconds"`
	MinTurns        float64 `yaml:"min_turns"`
	MaxTurns        float64 `yaml:"max_turns"`
	// Seed fixes the spin RNG; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
}

type CelebrationConfig struct {
	Display time.Duration `yaml:"display"`
}

type ConfettiConfig struct {
	Burst    int           `yaml:"burst"`
	Cap      int           `yaml:"cap"`
	Interval time.Duration `yaml:"interval"`
	Lifetime time.Duration `yaml:"lifetime"`
	MaxDelay time.Duration `yaml:"max_delay"`
	MinSize  float64       `yaml:"min_size"`
	MaxSize  float64       `yaml:"max_size"`
	Palette  []string      `yaml:"palette"`
}

// SoundsConfig points at audio files for each cue. Empty paths use built-in tones.
type SoundsConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Spin        string `yaml:"spin"`
	Celebration string `yaml:"celebration"`
	Winner      string `yaml:"winner"`
}

type NamesFileConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     WindowWidth,
			Height:    WindowHeight,
			Title:     "Wheel Picker - Space: Spin, Esc/Q: Quit",
			Resizable: true,
		},
		Wheel: WheelConfig{
			Names:     append([]string(nil), wheel.DefaultNames...),
			Color:     "#FF5733",
			TextColor: "#FFFFFF",
			Swatches: []string{
				"#FF5733", "#33A1FF", "#2ECC71", "#9B59B6",
				"#F1C40F", "#E67E22", "#1ABC9C", "#34495E",
			},
		},
		Spin: SpinConfig{
			DurationSeconds: 5,
			MinSeconds:      1,
			MaxSeconds:      60,
			MinTurns:        5,
			MaxTurns:        10,
		},
		Celebration: CelebrationConfig{
			Display: 5 * time.Second,
		},
		Confetti: ConfettiConfig{
			Burst:    150,
			Cap:      300,
			Interval: 50 * time.Millisecond,
			Lifetime: 5 * time.Second,
			MaxDelay: 2 * time.Second,
			MinSize:  5,
			MaxSize:  15,
			Palette:  []string{"#FFD700", "#FF0000", "#00FF00", "#0000FF", "#FF00FF", "#00FFFF", "#FFA500"},
		},
		Sounds: SoundsConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}

	if err := c.validateColors(); err != nil {
		return err
	}

	if c.Spin.MinSeconds < 1 {
		return fmt.Errorf("spin min_seconds must be at least 1, got %d", c.Spin.MinSeconds)
	}
	if c.Spin.MaxSeconds < c.Spin.MinSeconds {
		return fmt.Errorf("spin max_seconds %d below min_seconds %d", c.Spin.MaxSeconds, c.Spin.MinSeconds)
	}
	if c.Spin.DurationSeconds < c.Spin.MinSeconds || c.Spin.DurationSeconds > c.Spin.MaxSeconds {
		return fmt.Errorf("spin duration_seconds %d outside [%d, %d]",
			c.Spin.DurationSeconds, c.Spin.MinSeconds, c.Spin.MaxSeconds)
	}
	if c.Spin.MinTurns <= 0 || c.Spin.MaxTurns < c.Spin.MinTurns {
		return fmt.Errorf("invalid spin turns range [%g, %g)", c.Spin.MinTurns, c.Spin.MaxTurns)
	}

	if c.Celebration.Display <= 0 {
		return fmt.Errorf("celebration display must be positive, got %s", c.Celebration.Display)
	}

	if c.Confetti.Burst < 0 || c.Confetti.Cap < 0 {
		return fmt.Errorf("confetti burst and cap must not be negative")
	}
	if c.Confetti.Interval <= 0 || c.Confetti.Lifetime <= 0 || c.Confetti.MaxDelay < 0 {
		return fmt.Errorf("confetti timings must be positive")
	}
	if c.Confetti.MinSize <= 0 || c.Confetti.MaxSize < c.Confetti.MinSize {
		return fmt.Errorf("invalid confetti size range [%g, %g)", c.Confetti.MinSize, c.Confetti.MaxSize)
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}

func (c *Config) validateColors() error {
	if _, err := ParseColor(c.Wheel.Color); err != nil {
		return fmt.Errorf("wheel color: %w", err)
	}
	if _, err := ParseColor(c.Wheel.TextColor); err != nil {
		return fmt.Errorf("wheel text_color: %w", err)
	}
	if _, err := ParsePalette(c.Wheel.Swatches); err != nil {
		return fmt.Errorf("wheel swatches: %w", err)
	}
	if len(c.Confetti.Palette) == 0 {
		return fmt.Errorf("confetti palette must not be empty")
	}
	if _, err := ParsePalette(c.Confetti.Palette); err != nil {
		return fmt.Errorf("confetti palette: %w", err)
	}
	return nil
}
