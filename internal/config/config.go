// Package config handles loading and saving user configuration for holocron.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/holocron/internal/holocron"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Images  ImagesConfig  `yaml:"images"`
	Filters FiltersConfig `yaml:"filters"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig points at the character catalog.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// ImagesConfig controls the decorative card image.
type ImagesConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"` // placeholder service, keyed by ?random=<index>
}

// FilterOption is one entry of a categorical selector.
type FilterOption struct {
	Value string `yaml:"value"` // substring matched against the resource reference
	Label string `yaml:"label"`
}

// FiltersConfig lists the options of the three categorical selectors.
type FiltersConfig struct {
	HomeWorlds []FilterOption `yaml:"homeworlds"`
	Films      []FilterOption `yaml:"films"`
	Species    []FilterOption `yaml:"species"`
}

// Options returns the option list for a filter kind.
func (f FiltersConfig) Options(kind holocron.FilterKind) []FilterOption {
	switch kind {
	case holocron.FilterHomeWorld:
		return f.HomeWorlds
	case holocron.FilterFilm:
		return f.Films
	case holocron.FilterSpecies:
		return f.Species
	}
	return nil
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // defaults to <config dir>/holocron.log
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "https://swapi.dev/api",
			Timeout: 15 * time.Second,
		},
		Images: ImagesConfig{
			Enabled: true,
			BaseURL: "https://picsum.photos/300",
		},
		Filters: FiltersConfig{
			HomeWorlds: []FilterOption{
				{Value: "1", Label: "Tatooine"},
				{Value: "2", Label: "Alderaan"},
				{Value: "3", Label: "Yavin IV"},
			},
			Films: []FilterOption{
				{Value: "1", Label: "A New Hope"},
				{Value: "2", Label: "The Empire Strikes Back"},
			},
			Species: []FilterOption{
				{Value: "1", Label: "Human"},
				{Value: "2", Label: "Droid"},
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads config.yaml from dir over the defaults.
// A missing file is not an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to dir/config.yaml.
func Save(dir string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// LogFile returns the configured log path, defaulting into dir.
func (c *Config) LogFile(dir string) string {
	if c.Logging.File != "" {
		return c.Logging.File
	}
	return filepath.Join(dir, "holocron.log")
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "holocron"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "holocron"), nil
}
