package config

import (
	"errors"
	"fmt"
	"strings"
)

func validateConfig(cfg *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateField(cfg)...)
	validationErrors = append(validationErrors, validateLog(cfg)...)

	switch cfg.Clipboard {
	case ClipboardSystem, ClipboardNone:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"clipboard must be one of: system, none (got: %s)", cfg.Clipboard,
		))
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, "; "))
	}
	return nil
}

func validateField(cfg *Config) []string {
	var validationErrors []string
	if cfg.Field.Width < 0 {
		validationErrors = append(validationErrors, "field.width must be non-negative")
	}
	if cfg.Field.CharLimit < 0 {
		validationErrors = append(validationErrors, "field.char_limit must be non-negative")
	}
	if cfg.Field.PlaceIndex != nil && *cfg.Field.PlaceIndex < 0 {
		validationErrors = append(validationErrors, "field.place_index must be non-negative")
	}
	return validationErrors
}

func validateLog(cfg *Config) []string {
	var validationErrors []string
	switch cfg.Log.Level {
	case "trace", "debug", "info", "warn", "error", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"log.level must be one of: trace, debug, info, warn, error (got: %s)",
			cfg.Log.Level,
		))
	}
	switch cfg.Log.Format {
	case "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"log.format must be one of: json, console (got: %s)",
			cfg.Log.Format,
		))
	}
	return validationErrors
}
