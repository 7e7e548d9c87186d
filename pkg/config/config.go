package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dailylog/dailylog/pkg/log"
)

// Format identifies a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// DefaultMinimumLevel applies when neither the config nor a facility names
// a level.
const DefaultMinimumLevel = "warning"

// FacilityType selects the facility implementation.
type FacilityType string

const (
	TypeFile    FacilityType = "file"
	TypeJSON    FacilityType = "json"
	TypePrinter FacilityType = "printer"
)

// Config describes the facilities of a process.
type Config struct {
	// Folder is the base folder of file facilities that do not set their own.
	Folder string `yaml:"folder" toml:"folder"`

	// MinimumLevel is the default threshold of every facility.
	MinimumLevel string `yaml:"minimum_level" toml:"minimum_level"`

	Facilities []FacilityConfig `yaml:"facilities" toml:"facilities"`
}

// FacilityConfig describes one facility.
type FacilityConfig struct {
	// Name is the registry name. Defaults to the type.
	Name string `yaml:"name" toml:"name"`

	Type FacilityType `yaml:"type" toml:"type"`

	// MinimumLevel overrides Config.MinimumLevel.
	MinimumLevel string `yaml:"minimum_level,omitempty" toml:"minimum_level,omitempty"`

	// Folder overrides Config.Folder for file and json facilities.
	Folder string `yaml:"folder,omitempty" toml:"folder,omitempty"`

	// Color enables styled output for printer facilities.
	Color bool `yaml:"color,omitempty" toml:"color,omitempty"`
}

// FormatForPath returns the format implied by the extension of path.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Parse decodes and validates a configuration.
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, &LoadError{Message: "failed to parse TOML", Cause: err}
		}
	default:
		return nil, &LoadError{Message: string(format), Cause: ErrUnknownFormat}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{Message: "invalid configuration", Cause: err}
	}
	return &cfg, nil
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to detect format", Cause: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	cfg, err := Parse(data, format)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.MinimumLevel) == "" {
		c.MinimumLevel = DefaultMinimumLevel
	}
	for i := range c.Facilities {
		f := &c.Facilities[i]
		f.Type = FacilityType(strings.ToLower(strings.TrimSpace(string(f.Type))))
		if f.Name == "" {
			f.Name = string(f.Type)
		}
	}
}

// Validate checks levels, types, folders and name uniqueness.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.MinimumLevel); err != nil {
		return fmt.Errorf("minimum_level: %w", err)
	}

	seen := make(map[string]bool, len(c.Facilities))
	for i, f := range c.Facilities {
		switch f.Type {
		case TypeFile, TypeJSON:
			if c.folderFor(f) == "" {
				return fmt.Errorf("facilities[%d] (%s): folder is required", i, f.Name)
			}
		case TypePrinter:
		default:
			return fmt.Errorf("facilities[%d]: unknown type %q", i, f.Type)
		}

		if f.MinimumLevel != "" {
			if _, err := log.ParseLevel(f.MinimumLevel); err != nil {
				return fmt.Errorf("facilities[%d] (%s): minimum_level: %w", i, f.Name, err)
			}
		}

		if seen[f.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

// LevelFor returns the effective minimum level of f.
func (c *Config) LevelFor(f FacilityConfig) log.Level {
	name := f.MinimumLevel
	if name == "" {
		name = c.MinimumLevel
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.LevelWarning
	}
	return level
}

func (c *Config) folderFor(f FacilityConfig) string {
	if f.Folder != "" {
		return f.Folder
	}
	return c.Folder
}
