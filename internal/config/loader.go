package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths, lowest priority last
var ConfigPaths = []string{
	"./.wheelpicker.yaml",
	"~/.config/wheelpicker/config.yaml",
}

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WHEELPICKER_"

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	envFiles    []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		envFiles:    []string{".env"},
	}
}

// LoadConfig loads configuration from, in priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables, including a local .env file
// 3. customPath, or the first existing file in ConfigPaths
// 4. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	l.loadEnvFiles()

	path := customPath
	if path == "" {
		path, _ = l.findConfigFile()
	}
	if path != "" {
		if err := l.loadFromFile(config, path); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		log.Debug().Str("path", path).Msg("config file loaded")
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func (l *Loader) loadEnvFiles() {
	for _, f := range l.envFiles {
		if !fileExists(f) {
			continue
		}
		// Load never overrides variables already set in the environment.
		if err := godotenv.Load(f); err != nil {
			log.Warn().Err(err).Str("path", f).Msg("could not load env file")
		}
	}
}

func (l *Loader) findConfigFile() (string, bool) {
	for _, path := range l.configPaths {
		expanded := expandPath(path)
		if fileExists(expanded) {
			return expanded, true
		}
	}
	return "", false
}

// loadFromFile decodes YAML over the current values, so keys missing from
// the file keep their defaults.
func (l *Loader) loadFromFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		"SPIN_DURATION":     func(v string) error { return parseInt(v, &config.Spin.DurationSeconds) },
		"SPIN_SEED":         func(v string) error { return parseInt64(v, &config.Spin.Seed) },
		"WHEEL_COLOR":       func(v string) error { config.Wheel.Color = v; return nil },
		"TEXT_COLOR":        func(v string) error { config.Wheel.TextColor = v; return nil },
		"CELEBRATION":       func(v string) error { return parseDuration(v, &config.Celebration.Display) },
		"SOUNDS_ENABLED":    func(v string) error { return parseBool(v, &config.Sounds.Enabled) },
		"SOUND_SPIN":        func(v string) error { config.Sounds.Spin = v; return nil },
		"SOUND_CELEBRATION": func(v string) error { config.Sounds.Celebration = v; return nil },
		"SOUND_WINNER":      func(v string) error { config.Sounds.Winner = v; return nil },
		"NAMES_FILE":        func(v string) error { config.NamesFile.Path = v; return nil },
		"NAMES_WATCH":       func(v string) error { return parseBool(v, &config.NamesFile.Watch) },
		"LOG_LEVEL":         func(v string) error { config.Log.Level = v; return nil },
		"LOG_PRETTY":        func(v string) error { return parseBool(v, &config.Log.Pretty) },
	}

	for key, setter := range envMappings {
		if value := os.Getenv(EnvPrefix + key); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s%s: %w", EnvPrefix, key, err)
			}
		}
	}

	// Comma-separated seed list
	if names := os.Getenv(EnvPrefix + "NAMES"); names != "" {
		config.Wheel.Names = nil
		for _, n := range strings.Split(names, ",") {
			if n = strings.TrimSpace(n); n != "" {
				config.Wheel.Names = append(config.Wheel.Names, n)
			}
		}
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func parseInt(v string, dst *int) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func parseInt64(v string, dst *int64) error {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func parseBool(v string, dst *bool) error {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

func parseDuration(v string, dst *time.Duration) error {
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
