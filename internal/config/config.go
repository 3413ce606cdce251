// Package config handles reading and writing ~/.yume/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yume-app/yume/internal/breath"
)

// ErrInvalidSessionLength is returned when session_minutes is out of range.
var ErrInvalidSessionLength = errors.New("invalid session length")

// Config is the top-level structure for config.yaml.
type Config struct {
	Version   int             `yaml:"version"`
	Breathing BreathingConfig `yaml:"breathing"`
	Mantras   MantrasConfig   `yaml:"mantras"`
	Events    EventsConfig    `yaml:"events"`
}

// BreathingConfig holds the defaults for breathing sessions.
type BreathingConfig struct {
	DefaultPattern string           `yaml:"default_pattern"`
	SessionMinutes int              `yaml:"session_minutes"` // 1-15
	ResumeMidPhase bool             `yaml:"resume_mid_phase"`
	Patterns       []breath.Pattern `yaml:"patterns,omitempty"` // appended to the presets
}

// MantrasConfig controls the affirmation display.
type MantrasConfig struct {
	Show bool `yaml:"show"`
}

// EventsConfig controls the event log.
type EventsConfig struct {
	Enabled bool `yaml:"enabled"`
}

const (
	dirName    = ".yume"
	configFile = "config.yaml"
)

// DefaultDir returns ~/.yume.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// Path returns the config file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, configFile)
}

// ReadConfig reads config.yaml from dir. Fields missing from the file keep
// their DefaultConfig values. Returns an error if the file is not found or
// the YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// WriteConfig writes cfg to config.yaml in dir, creating dir if needed.
func WriteConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Breathing: BreathingConfig{
			DefaultPattern: "4-4 Basic",
			SessionMinutes: breath.DefaultSessionMinutes,
		},
		Mantras: MantrasConfig{
			Show: true,
		},
		Events: EventsConfig{
			Enabled: true,
		},
	}
}

// Patterns returns the presets followed by the configured custom patterns.
func (c *Config) Patterns() []breath.Pattern {
	return breath.Catalog(c.Breathing.Patterns)
}

// Validate checks the session length, every custom pattern, and that the
// default pattern exists.
func (c *Config) Validate() error {
	m := c.Breathing.SessionMinutes
	if m < breath.MinSessionMinutes || m > breath.MaxSessionMinutes {
		return fmt.Errorf("%w: %d minutes (want %d-%d)", ErrInvalidSessionLength,
			m, breath.MinSessionMinutes, breath.MaxSessionMinutes)
	}
	for _, p := range c.Breathing.Patterns {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("custom pattern: %w", err)
		}
	}
	if _, err := breath.Find(c.Patterns(), c.Breathing.DefaultPattern); err != nil {
		return fmt.Errorf("default pattern: %w", err)
	}
	return nil
}

// Load reads the config in dir, falling back to defaults when the file is
// missing, malformed, or invalid. The returned error explains a fallback
// caused by a file that exists but could not be used; it is nil otherwise.
func Load(dir string) (*Config, error) {
	cfg, err := ReadConfig(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}
