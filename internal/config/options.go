package config

import (
	"math/rand"
	"time"

	"github.com/iburimskiy/wheel-picker/internal/wheel"
)

// PickerOptions turns the configuration into picker options.
func (c *Config) PickerOptions() (wheel.Options, error) {
	wheelColor, err := ParseColor(c.Wheel.Color)
	if err != nil {
		return wheel.Options{}, err
	}
	textColor, err := ParseColor(c.Wheel.TextColor)
	if err != nil {
		return wheel.Options{}, err
	}
	palette, err := ParsePalette(c.Confetti.Palette)
	if err != nil {
		return wheel.Options{}, err
	}

	names := c.Wheel.Names
	if names == nil {
		names = []string{}
	}

	seed := c.Spin.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return wheel.Options{
		Names:              names,
		WheelColor:         wheelColor,
		TextColor:          textColor,
		SpinSeconds:        c.Spin.DurationSeconds,
		MinSpinSeconds:     c.Spin.MinSeconds,
		MaxSpinSeconds:     c.Spin.MaxSeconds,
		MinTurns:           c.Spin.MinTurns,
		MaxTurns:           c.Spin.MaxTurns,
		CelebrationDisplay: c.Celebration.Display,
		Confetti: wheel.ConfettiOptions{
			Burst:    c.Confetti.Burst,
			Cap:      c.Confetti.Cap,
			Interval: c.Confetti.Interval,
			Lifetime: c.Confetti.Lifetime,
			MaxDelay: c.Confetti.MaxDelay,
			MinSize:  c.Confetti.MinSize,
			MaxSize:  c.Confetti.MaxSize,
			Palette:  palette,
		},
		Rand: rand.New(rand.NewSource(seed)),
	}, nil
}
