package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is codepad's runtime configuration (codepad.yaml / CODEPAD_* env).
type Config struct {
	Store StoreConfig `yaml:"store" mapstructure:"store"`
	Log   LogConfig   `yaml:"log" mapstructure:"log"`
	UI    UIConfig    `yaml:"ui" mapstructure:"ui"`
}

type StoreConfig struct {
	Path    string        `yaml:"path" mapstructure:"path"`
	Bucket  string        `yaml:"bucket" mapstructure:"bucket"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	// File receives JSON logs while the TUI owns the terminal.
	File string `yaml:"file" mapstructure:"file"`
}

type UIConfig struct {
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func dataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "codepad")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "codepad")
}

func DefaultConfig() *Config {
	dir := dataDir()
	return &Config{
		Store: StoreConfig{
			Path:    filepath.Join(dir, "saves.db"),
			Bucket:  "saves",
			Timeout: time.Second,
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(dir, "codepad.log"),
		},
	}
}

// Load reads configuration. An explicit path must exist; otherwise codepad.yaml
// is searched for in the working directory and the user config dir, and a
// missing file just means defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	v.SetDefault("store.path", cfg.Store.Path)
	v.SetDefault("store.bucket", cfg.Store.Bucket)
	v.SetDefault("store.timeout", cfg.Store.Timeout)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("ui.no_color", cfg.UI.NoColor)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("codepad")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "codepad"))
		}
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "codepad"))
	}

	v.SetEnvPrefix("CODEPAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Store.Path = expandHome(cfg.Store.Path)
	cfg.Log.File = expandHome(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("config: store.path is required")
	}
	if strings.TrimSpace(c.Store.Bucket) == "" {
		return fmt.Errorf("config: store.bucket is required")
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("config: log.level %q is invalid (must be debug, info, warn or error)", c.Log.Level)
	}
	if c.Store.Timeout <= 0 {
		c.Store.Timeout = time.Second
	}
	return nil
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		if h, err := os.UserHomeDir(); err == nil {
			return filepath.Join(h, p[2:])
		}
	}
	return p
}
