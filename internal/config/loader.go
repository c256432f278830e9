package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader reads configuration from file and environment variables.
type Loader struct {
	viper *viper.Viper
}

// NewLoader creates a loader. Environment variables use the DIVISION_
// prefix with dots replaced by underscores, e.g. DIVISION_FIELD_WIDTH.
func NewLoader() (*Loader, error) {
	v := viper.New()

	v.SetConfigName("division")
	v.SetConfigType("yaml")
	if dir, err := GetConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("DIVISION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without defaults are invisible to Unmarshal unless bound.
	for _, key := range []string{"field.place_holder", "field.place_index", "attributes"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	l := &Loader{viper: v}
	l.setDefaults()
	return l, nil
}

// Viper exposes the underlying instance so command flags can be bound.
func (l *Loader) Viper() *viper.Viper { return l.viper }

// Load reads the config file (path, or division.yaml in the search paths
// when path is empty) and returns the validated configuration. A missing
// default config file is not an error; a missing explicit one is.
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		l.viper.SetConfigFile(path)
	}
	if err := l.readConfigFile(path); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := l.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", l.viper.ConfigFileUsed(), err)
	}
	normalizeConfig(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (l *Loader) readConfigFile(path string) error {
	err := l.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if path == "" && errors.As(err, &notFound) {
		return nil
	}
	file := l.viper.ConfigFileUsed()
	if file == "" {
		file = path
	}
	return fmt.Errorf("failed to read config file at %s: %w", file, err)
}

func (l *Loader) setDefaults() {
	defaults := DefaultConfig()

	l.viper.SetDefault("attributes", defaults.Attributes)
	l.viper.SetDefault("field.width", defaults.Field.Width)
	l.viper.SetDefault("field.prompt", defaults.Field.Prompt)
	l.viper.SetDefault("field.hint", defaults.Field.Hint)
	l.viper.SetDefault("field.char_limit", defaults.Field.CharLimit)

	l.viper.SetDefault("log.level", defaults.Log.Level)
	l.viper.SetDefault("log.format", defaults.Log.Format)
	l.viper.SetDefault("log.file", defaults.Log.File)

	l.viper.SetDefault("clipboard", defaults.Clipboard)
}

func normalizeConfig(cfg *Config) {
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	cfg.Clipboard = strings.ToLower(strings.TrimSpace(cfg.Clipboard))
	if cfg.Clipboard == "" {
		cfg.Clipboard = ClipboardSystem
	}
}

// GetConfigDir returns $XDG_CONFIG_HOME/division, falling back to
// ~/.config/division.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "division"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "division"), nil
}
