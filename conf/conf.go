// Package conf contains the configuration of pngme.
package conf

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"
)

// DefaultPath is the configuration file looked up when no path is given.
const DefaultPath = "pngme.yml"

// LogLevel is a log level.
type LogLevel string

// Level converts the log level into a zerolog level.
func (l LogLevel) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(string(l))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// ColorMode controls colored output.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Enabled resolves the color mode given whether output is a terminal.
func (m ColorMode) Enabled(isTerminal bool) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return isTerminal
}

// Conf is a configuration.
type Conf struct {
	LogLevel       LogLevel   `yaml:"logLevel"`
	Color          ColorMode  `yaml:"color"`
	MaxPayloadSize StringSize `yaml:"maxPayloadSize"`
}

// Default returns the default configuration.
func Default() *Conf {
	return &Conf{
		LogLevel:       "info",
		Color:          ColorAuto,
		MaxPayloadSize: 1024 * 1024,
	}
}

// Load loads a configuration from a YAML file.
// When path is empty, DefaultPath is used if it exists.
// The returned bool tells whether a file was found.
func Load(path string) (*Conf, bool, error) {
	conf := Default()

	if path == "" {
		if _, err := os.Stat(DefaultPath); err != nil {
			return conf, false, nil
		}
		path = DefaultPath
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}

	err = conf.Unmarshal(buf)
	if err != nil {
		return nil, true, fmt.Errorf("%s: %w", path, err)
	}

	return conf, true, nil
}

// Unmarshal decodes YAML over the current values and validates the result.
func (conf *Conf) Unmarshal(buf []byte) error {
	err := yaml.UnmarshalStrict(buf, conf)
	if err != nil {
		return err
	}
	return conf.Validate()
}

// Validate checks the configuration.
func (conf *Conf) Validate() error {
	switch conf.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: '%s'", conf.LogLevel)
	}

	switch conf.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode: '%s'", conf.Color)
	}

	if conf.MaxPayloadSize == 0 {
		return errors.New("maxPayloadSize must be greater than zero")
	}

	return nil
}
