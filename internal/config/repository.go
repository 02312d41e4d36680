package config

import (
	"fmt"

	"time-travel-tasks/internal/repository"
	"time-travel-tasks/internal/repository/memory"
	"time-travel-tasks/internal/repository/sqlite"
)

// CreateRepository creates the task repository selected by the configuration
func CreateRepository(config *Config) (repository.Repository, error) {
	switch config.Store.Backend {
	case BackendMemory:
		return memory.New(), nil
	case BackendSQLite:
		repo, err := sqlite.New(config.Store.SQLiteDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", config.Store.Backend)
	}
}
