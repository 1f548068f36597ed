package easel

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional configuration file read by LoadConfig.
const ConfigFileName = "easel.yaml"

// Config describes the editor surface a Scene renders to.
type Config struct {
	// Title is the window title used by Run.
	Title string `yaml:"title,omitempty"`
	// Width and Height are the surface size in pixels.
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
	// Background is a hex colour ("#1e1e28") or a CSS colour name.
	Background string `yaml:"background,omitempty"`
	// Debug enables debug mode on the scene.
	Debug bool `yaml:"debug,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Title:      "easel",
		Width:      640,
		Height:     480,
		Background: "#1e1e28",
	}
}

// ParseConfig decodes YAML data on top of DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads easel.yaml from dir if present. A missing file yields
// DefaultConfig.
func LoadConfig(dir string) (Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}
	return ParseConfig(data)
}

// Validate checks sizes and the background colour.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid %s: size %dx%d must be positive", ConfigFileName, c.Width, c.Height)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return fmt.Errorf("invalid %s: %w", ConfigFileName, err)
	}
	return nil
}

// BackgroundColor parses Background. An empty value is transparent.
func (c Config) BackgroundColor() (Color, error) {
	if c.Background == "" {
		return ColorTransparent, nil
	}
	return ParseColor(c.Background)
}
