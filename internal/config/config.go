package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Archive  ArchiveConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// ArchiveConfig points at the directory holding address book snapshots.
type ArchiveConfig struct {
	Dir string
}

// LogConfig controls the log file. The TUI owns the terminal, so logs never
// go to stdout.
type LogConfig struct {
	Path  string
	Level string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "addressbook")
}

// Path returns the config file location: $ADDRESSBOOK_CONFIG, or
// ~/.config/addressbook/config.toml when unset.
func Path() string {
	if p := os.Getenv("ADDRESSBOOK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "addressbook", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix ADDRESSBOOK_.
func Load() (Config, error) {
	return load(true)
}

// Defaults returns the built-in configuration with env overrides applied,
// without reading any config file.
func Defaults() (Config, error) {
	return load(false)
}

func load(readFile bool) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(dataDir(), "addressbook.db"))
	v.SetDefault("archive.dir", filepath.Join(dataDir(), "archive"))
	v.SetDefault("log.path", filepath.Join(dataDir(), "addressbook.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ADDRESSBOOK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "addressbook"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ADDRESSBOOK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if readFile {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			// an explicitly named file must exist and parse
			if cfgPath != "" || !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("archive.dir", cfg.Archive.Dir)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
