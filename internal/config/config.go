// Package config loads the division CLI configuration.
package config

import (
	"github.com/iw2rmb/division/internal/attrs"
)

// Clipboard backends.
const (
	ClipboardSystem = "system"
	ClipboardNone   = "none"
)

type Config struct {
	// Attributes is an optional YAML attribute file with placeHolder and
	// placeIndex. Field settings below override it.
	Attributes string      `mapstructure:"attributes"`
	Field      FieldConfig `mapstructure:"field"`
	Log        LogConfig   `mapstructure:"log"`
	Clipboard  string      `mapstructure:"clipboard"`
}

type FieldConfig struct {
	PlaceHolder *string `mapstructure:"place_holder"`
	PlaceIndex  *int    `mapstructure:"place_index"`
	Width       int     `mapstructure:"width"`
	Prompt      string  `mapstructure:"prompt"`
	Hint        string  `mapstructure:"hint"`
	CharLimit   int     `mapstructure:"char_limit"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File receives log output. Empty disables logging; the terminal is
	// owned by the field.
	File string `mapstructure:"file"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Field: FieldConfig{
			Width:  24,
			Prompt: "> ",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Clipboard: ClipboardSystem,
	}
}

// FieldAttributes resolves the delimiter attributes: the attribute file
// first, then field.place_holder and field.place_index on top.
func (c *Config) FieldAttributes() (attrs.Attributes, error) {
	var a attrs.Attributes
	if c.Attributes != "" {
		loaded, err := attrs.Load(c.Attributes)
		if err != nil {
			return attrs.Attributes{}, err
		}
		a = loaded
	}
	return a.Merge(attrs.Attributes{
		PlaceHolder: c.Field.PlaceHolder,
		PlaceIndex:  c.Field.PlaceIndex,
	}), nil
}
