// Package cli holds the interactive menu loop and the startup helpers shared
// by the entrypoint.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"spendtrack/internal/config"
	"spendtrack/internal/log"
	"spendtrack/internal/store"
	csvstore "spendtrack/internal/store/csv"
	"spendtrack/internal/store/memory"
	"spendtrack/internal/store/sqlite"
)

// SetupLogger initializes structured logging and sets it as the process
// default so packages logging through slog pick it up.
func SetupLogger(cfg *config.Config) *log.Logger {
	logger := log.New(log.Config{Level: cfg.Level(), Component: log.ComponentApp})
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig() *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}

// OpenStore selects and opens the backing store named by the configuration.
func OpenStore(cfg *config.Config, logger *log.Logger) (store.Store, error) {
	backend := cfg.Backend()
	switch backend {
	case store.CSVBackend:
		logger.Info("using csv store", log.FieldBackend, backend.String(), log.FieldPath, cfg.StorePath)
		return csvstore.New(cfg.StorePath), nil
	case store.SQLiteBackend:
		st, err := sqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		logger.Info("using sqlite store", log.FieldBackend, backend.String(), log.FieldPath, cfg.SQLiteDBPath)
		return st, nil
	case store.MemoryBackend:
		logger.Warn("using memory store, data will not survive exit", log.FieldBackend, backend.String())
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", backend)
	}
}
