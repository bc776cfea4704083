// Package config loads the settings of the tracecalc command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the name of the config file looked up in the home directory
// when no path is given.
const DefaultFile = ".tracecalc.yaml"

// Config holds command settings. Zero fields in a file keep their defaults.
type Config struct {
	// Color is one of auto, always, or never.
	Color string `yaml:"color"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
	// Prompt is the REPL prompt.
	Prompt string `yaml:"prompt"`
	// HistoryFile is where the REPL keeps its history. A leading ~/ is the
	// home directory. Empty disables history.
	HistoryFile string `yaml:"history_file"`
	// ShowTree prints the parenthesized expression before its steps.
	ShowTree bool `yaml:"show_tree"`
}

// Default returns the settings used when there is no config file.
func Default() Config {
	return Config{
		Color:       "auto",
		LogLevel:    "warn",
		Prompt:      "calc> ",
		HistoryFile: "~/.tracecalc_history",
		ShowTree:    true,
	}
}

// Load reads the config file at path. If path is empty, the file is
// DefaultFile in the user's home directory, and it is not an error for that
// file to be missing.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(home, DefaultFile)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML config over the defaults. Unknown keys are errors.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings have meaningful values.
func (c Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always, or never, not %q", c.Color)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level returns the parsed log level, or zerolog.WarnLevel if it is invalid.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// History returns the history file path with a leading ~/ expanded.
func (c Config) History() string {
	rest, ok := strings.CutPrefix(c.HistoryFile, "~/")
	if !ok {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, rest)
}
