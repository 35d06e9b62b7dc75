package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"spendtrack/internal/store"
)

type Config struct {
	// Backing store
	StoreBackend string
	StorePath    string
	SQLiteDBPath string

	// Dashboard output
	ChartPath string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		StoreBackend: getEnv("STORE_BACKEND", "csv"),
		StorePath:    getEnv("STORE_PATH", "expenses.csv"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/expenses.db"),
		ChartPath:    getEnv("CHART_PATH", "expense_dashboard.html"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// Backend returns the configured store backend.
func (c *Config) Backend() store.Backend {
	return store.Backend(c.StoreBackend)
}

// Level returns the configured slog level. Validate has already rejected
// unknown names by the time this is called.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if !c.Backend().IsValid() {
		errors = append(errors, fmt.Sprintf("invalid store backend '%s': must be one of %v", c.StoreBackend, store.Backends()))
	}

	switch c.Backend() {
	case store.CSVBackend:
		if c.StorePath == "" {
			errors = append(errors, "store path cannot be empty when using csv backend")
		}
	case store.SQLiteBackend:
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if c.ChartPath == "" {
		errors = append(errors, "chart path cannot be empty")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
