package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved application configuration.
type Config struct {
	UserID string

	// Driver selects the store backend: "sqlite" (local file) or
	// "postgres" (remote).
	Driver string
	// DSN is the sqlite file path or the postgres connection string.
	DSN string

	// MaxInterval is the aggregation sanity ceiling.
	MaxInterval time.Duration

	// ListenAddr is the HTTP API bind address.
	ListenAddr string
}

// Dir returns the application directory (~/.timeflow).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".timeflow"), nil
}

// FilePath returns the config file location.
func FilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func setDefaults(dir string) {
	viper.SetDefault("user", "default")
	viper.SetDefault("db.driver", "sqlite")
	viper.SetDefault("db.dsn", filepath.Join(dir, "timeflow.db"))
	viper.SetDefault("max_interval_hours", 16)
	viper.SetDefault("server.listen", ":8080")
}

// Load reads ~/.timeflow/config.yaml (if present) with TIMEFLOW_*
// environment overrides and returns the resolved configuration.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dir)
	viper.SetEnvPrefix("timeflow")
	// Nested keys map to underscores: db.driver -> TIMEFLOW_DB_DRIVER.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults(dir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return &Config{
		UserID:      viper.GetString("user"),
		Driver:      viper.GetString("db.driver"),
		DSN:         viper.GetString("db.dsn"),
		MaxInterval: time.Duration(viper.GetInt("max_interval_hours")) * time.Hour,
		ListenAddr:  viper.GetString("server.listen"),
	}, nil
}

// Write persists the current settings to the config file, creating the
// application directory if needed.
func Write() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	path, err := FilePath()
	if err != nil {
		return err
	}
	return viper.WriteConfigAs(path)
}

// Set stores a single key for a later Write.
func Set(key string, value any) {
	viper.Set(key, value)
}
