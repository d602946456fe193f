// Package config loads server settings from a YAML file with environment
// overrides. Every field has a usable default so the server runs with no
// config at all.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Addr             string `yaml:"addr"`
	LeaderboardLimit int    `yaml:"leaderboard_limit"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Default returns the baked-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:             ":8080",
			LeaderboardLimit: 10,
		},
		Database: DatabaseConfig{
			Path: "data/lemonstand.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration: defaults, then the YAML file if present, then
// LEMONSTAND_* environment variables. A missing file is not an error; a
// malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LEMONSTAND_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("LEMONSTAND_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("LEMONSTAND_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LEMONSTAND_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("LEMONSTAND_LEADERBOARD_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.LeaderboardLimit = n
		}
	}
}

func (c Config) validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	if c.Server.LeaderboardLimit < 1 {
		return fmt.Errorf("config: leaderboard_limit must be positive")
	}
	return nil
}
