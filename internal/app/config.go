package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"clikv/internal/color"
	"clikv/internal/store"
)

// Config holds runtime options for one invocation.
type Config struct {
	FolderPath string `mapstructure:"folder_path"` // directory holding the backing file
	FilePath   string `mapstructure:"file_path"`   // backing JSON document
	LogLevel   string `mapstructure:"log_level"`   // debug, info, warn or error
	Color      string `mapstructure:"color"`       // auto, always or never
	NoColor    bool   `mapstructure:"no_color"`    // shorthand for color=never
	Verbose    bool   `mapstructure:"verbose"`     // forces debug logging
	Force      bool   `mapstructure:"force"`       // skip the stale-write check
	DryRun     bool   `mapstructure:"dry_run"`     // never persist
}

// envNames lists, per key, the environment variables consulted in order.
// FOLDER_PATH and FILE_PATH are kept for existing shell setups.
var envNames = map[string][]string{
	"folder_path": {"KV_FOLDER_PATH", "FOLDER_PATH"},
	"file_path":   {"KV_FILE_PATH", "FILE_PATH"},
	"log_level":   {"KV_LOG_LEVEL"},
	"color":       {"KV_COLOR"},
}

// LoadConfig reads configuration into v and returns the validated result.
// Flags must already be bound to v. When configFile is empty, config.{yaml,json,toml}
// in the user config directory is read if present.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	for key, names := range envNames {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read config file: %w", store.ErrConfig, err)
		}
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.SetConfigName("config")
		v.AddConfigPath(filepath.Join(dir, "clikv"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("%w: read config file: %w", store.ErrConfig, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: unmarshal config: %w", store.ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("folder_path", "")
	v.SetDefault("file_path", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("color", string(color.ModeAuto))
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", false)
	v.SetDefault("force", false)
	v.SetDefault("dry_run", false)
}

// Validate checks required paths and enumerated values.
func (c *Config) Validate() error {
	if err := c.StoreConfig().Validate(); err != nil {
		return fmt.Errorf("%w (set --folder/--file, KV_FOLDER_PATH/KV_FILE_PATH or a config file)", err)
	}
	if _, err := color.ParseMode(c.Color); err != nil {
		return fmt.Errorf("%w: %w", store.ErrConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrConfig, err)
	}
	return nil
}

// StoreConfig returns the storage settings.
func (c *Config) StoreConfig() store.Config {
	return store.Config{
		FolderPath: c.FolderPath,
		FilePath:   c.FilePath,
		ReadOnly:   c.DryRun,
	}
}

// ColorMode returns the effective color mode. NoColor wins over Color.
func (c *Config) ColorMode() color.Mode {
	if c.NoColor {
		return color.ModeNever
	}
	m, err := color.ParseMode(c.Color)
	if err != nil {
		return color.ModeAuto
	}
	return m
}

// Level returns the effective log level.
func (c *Config) Level() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
