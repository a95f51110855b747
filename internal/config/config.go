package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/tsea/internal/tui"
	"github.com/vvka-141/tsea/pkg/tsea"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type PaletteConfig struct {
	Path string `yaml:"path,omitempty"`
	Line string `yaml:"line,omitempty"`
}

type ProjectConfig struct {
	Dir     string        `yaml:"dir,omitempty"`
	Color   string        `yaml:"color,omitempty"`
	Palette PaletteConfig `yaml:"palette,omitempty"`
	Exclude []string      `yaml:"exclude,omitempty"`
}

const ConfigFileName = ".tsea.yaml"

// Load reads ConfigFileName from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads and validates the config file at path.
// Unknown keys are rejected so typos do not go unnoticed.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %v: %w", path, err, tsea.ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the values that are parsed later on.
// It returns a multi-error if multiple validation failures occur.
func (c *ProjectConfig) Validate() error {
	var errs []error

	if _, err := tui.ParseColorMode(c.Color); err != nil {
		errs = append(errs, fmt.Errorf("color: %v: %w", err, tsea.ErrInvalidConfig))
	}

	if _, err := tui.DefaultPalette().WithOverrides(c.Palette.Path, c.Palette.Line); err != nil {
		errs = append(errs, fmt.Errorf("%v: %w", err, tsea.ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
