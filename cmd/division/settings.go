package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/division/field"
	"github.com/iw2rmb/division/internal/config"
	"github.com/iw2rmb/division/internal/logging"
)

// settings is the resolved runtime configuration of a command.
type settings struct {
	cfg    *config.Config
	logger zerolog.Logger
	close  func() error
}

// flagKeys maps command flags to config keys bound through viper.
var flagKeys = map[string]string{
	"attrs":      "attributes",
	"width":      "field.width",
	"prompt":     "field.prompt",
	"hint":       "field.hint",
	"char-limit": "field.char_limit",
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-file":   "log.file",
	"clipboard":  "clipboard",
}

func addSettingsFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("config", "", "config file (default: division.yaml in $XDG_CONFIG_HOME/division or the working directory)")
	f.String("attrs", "", "YAML file with placeHolder and placeIndex attributes")
	f.String("place-holder", "", "delimiter inserted between groups; only the first character is used")
	f.Int("place-index", 0, "number of characters in each group")
	f.Int("width", 0, "visible width of the field in cells")
	f.String("prompt", "", "prompt shown before the field")
	f.String("hint", "", "hint shown while the field is empty")
	f.Int("char-limit", 0, "maximum number of characters, delimiters excluded (0 = unlimited)")
	f.String("log-level", "", "log level: trace, debug, info, warn, error")
	f.String("log-format", "", "log format: console, json")
	f.String("log-file", "", "write logs to this file")
	f.String("clipboard", "", "clipboard backend: system, none")
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	loader, err := config.NewLoader()
	if err != nil {
		return nil, err
	}

	v := loader.Viper()
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	// Unset delimiter flags must not shadow the attribute file, so they are
	// applied only when given.
	if cmd.Flags().Changed("place-holder") {
		ph, _ := cmd.Flags().GetString("place-holder")
		cfg.Field.PlaceHolder = &ph
	}
	if cmd.Flags().Changed("place-index") {
		idx, _ := cmd.Flags().GetInt("place-index")
		cfg.Field.PlaceIndex = &idx
	}

	out, closeFn, err := openLogOutput(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Log.Level)
	if cfg.Log.Format != "" {
		logCfg.Format = cfg.Log.Format
	}

	return &settings{
		cfg:    cfg,
		logger: logging.New(logCfg, out),
		close:  closeFn,
	}, nil
}

func openLogOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return nil, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f.Close, nil
}

// fieldConfig builds the field configuration. OnChange and Clipboard are
// left for the caller.
func (s *settings) fieldConfig() (field.Config, error) {
	a, err := s.cfg.FieldAttributes()
	if err != nil {
		return field.Config{}, err
	}
	logger := s.logger.With().Str("component", "field").Logger()
	return field.Config{
		Delimiter: a.Delimiter(),
		GroupSize: a.GroupSize(),
		Prompt:    s.cfg.Field.Prompt,
		Hint:      s.cfg.Field.Hint,
		Width:     s.cfg.Field.Width,
		CharLimit: s.cfg.Field.CharLimit,
		Logger:    &logger,
	}, nil
}
