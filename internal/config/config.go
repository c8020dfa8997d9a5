// Package config holds runtime configuration: defaults, an optional YAML
// config file, CLI flag parsing and validation.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorMode controls colored output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Colors when stdout is a terminal (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors.
)

const defaultExtension = "mp3"

// Config holds all runtime settings. It starts from [DefaultConfig], is
// overlaid by the YAML file named by -config and then by CLI flags.
type Config struct {
	// Input and cut points (input from the first positional arg).
	Input      string   `yaml:"input"`
	Timestamps []string `yaml:"timestamps"`

	// Output.
	Extension string `yaml:"extension"`  // Default: input's extension, else "mp3".
	OutputDir string `yaml:"output_dir"` // Default: ".".

	// ffmpeg.
	FFmpeg    string `yaml:"ffmpeg"`     // Default: "ffmpeg" looked up on PATH.
	CopyCodec bool   `yaml:"copy_codec"` // Stream copy instead of re-encoding.
	Overwrite bool   `yaml:"overwrite"`  // Pass -y to ffmpeg.
	Run       bool   `yaml:"run"`        // Without it only the plan is printed.

	// Display and logging.
	Verbose   bool      `yaml:"verbose"`
	ColorMode ColorMode `yaml:"color"`
	LogFile   string    `yaml:"log_file"`

	ConfigFile  string `yaml:"-"`
	ShowVersion bool   `yaml:"-"`
}

// DefaultConfig returns the base configuration before file and flags apply.
func DefaultConfig() Config {
	return Config{
		OutputDir: ".",
		FFmpeg:    "ffmpeg",
		ColorMode: ColorAuto,
	}
}

// LoadFile decodes the YAML file at path over cfg. Keys missing from the
// file leave cfg untouched.
func LoadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// ResolveExtension fills in Extension from the input name when it was not
// set, falling back to mp3.
func (c *Config) ResolveExtension() {
	if c.Extension == "" {
		c.Extension = strings.TrimPrefix(filepath.Ext(c.Input), ".")
	}
	c.Extension = strings.TrimPrefix(c.Extension, ".")
	if c.Extension == "" {
		c.Extension = defaultExtension
	}
}

// Validate checks enum fields and required values.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Input == "" {
		return errors.New("need an input file")
	}
	if c.FFmpeg == "" {
		return errors.New("ffmpeg binary must not be empty")
	}
	if c.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}
	if strings.ContainsAny(c.Extension, `/\`) {
		return fmt.Errorf("invalid extension %q", c.Extension)
	}
	return nil
}
