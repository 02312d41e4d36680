package config

import (
	"strings"
	"time"
)

// Store backends understood by CreateRepository.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// DefaultTextMaxLength of zero leaves task text unbounded.
const (
	DefaultSearchMinLength = 3
	DefaultTextMaxLength   = 0
)

// Config holds all configuration options for the tasks service
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Log        LogConfig        `yaml:"log"`
	Store      StoreConfig      `yaml:"store"`
	Validation ValidationConfig `yaml:"validation"`
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	Address           string        `yaml:"address" env:"TASKS_HTTP_ADDRESS" env-default:":8000"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"TASKS_HTTP_READ_HEADER_TIMEOUT" env-default:"5s"`
	RequestTimeout    time.Duration `yaml:"request_timeout" env:"TASKS_HTTP_REQUEST_TIMEOUT" env-default:"10s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" env:"TASKS_HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `yaml:"level" env:"TASKS_LOG_LEVEL" env-default:"INFO"`
	Format string `yaml:"format" env:"TASKS_LOG_FORMAT" env-default:"text"`
}

// StoreConfig selects and configures the task repository
type StoreConfig struct {
	Backend   string `yaml:"backend" env:"TASKS_STORE_BACKEND" env-default:"memory"`
	SQLiteDSN string `yaml:"sqlite_dsn" env:"TASKS_STORE_SQLITE_DSN" env-default:":memory:"`
	SkipSeed  bool   `yaml:"skip_seed" env:"TASKS_STORE_SKIP_SEED"`
}

// ValidationConfig holds request validation limits
type ValidationConfig struct {
	SearchMinLength int `yaml:"search_min_length" env:"TASKS_VALIDATION_SEARCH_MIN" env-default:"3"`
	TextMaxLength   int `yaml:"text_max_length" env:"TASKS_VALIDATION_TEXT_MAX" env-default:"0"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:           ":8000",
			ReadHeaderTimeout: 5 * time.Second,
			RequestTimeout:    10 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Log: LogConfig{
			Level:  "INFO",
			Format: "text",
		},
		Store: StoreConfig{
			Backend:   BackendMemory,
			SQLiteDSN: ":memory:",
		},
		Validation: ValidationConfig{
			SearchMinLength: DefaultSearchMinLength,
			TextMaxLength:   DefaultTextMaxLength,
		},
	}
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return &ConfigError{Field: "http.address", Message: "listen address cannot be empty"}
	}
	if c.HTTP.ReadHeaderTimeout <= 0 {
		return &ConfigError{Field: "http.read_header_timeout", Message: "read header timeout must be positive"}
	}
	if c.HTTP.RequestTimeout <= 0 {
		return &ConfigError{Field: "http.request_timeout", Message: "request timeout must be positive"}
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "http.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	switch strings.ToUpper(c.Log.Level) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return &ConfigError{Field: "log.level", Message: "log level must be one of DEBUG, INFO, WARN, ERROR"}
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return &ConfigError{Field: "log.format", Message: "log format must be text or json"}
	}

	switch c.Store.Backend {
	case BackendMemory:
	case BackendSQLite:
		if c.Store.SQLiteDSN == "" {
			return &ConfigError{Field: "store.sqlite_dsn", Message: "sqlite DSN cannot be empty"}
		}
	default:
		return &ConfigError{Field: "store.backend", Message: "store backend must be memory or sqlite"}
	}

	if c.Validation.SearchMinLength < 1 {
		return &ConfigError{Field: "validation.search_min_length", Message: "search minimum length must be at least 1"}
	}
	if c.Validation.TextMaxLength < 0 {
		return &ConfigError{Field: "validation.text_max_length", Message: "text maximum length cannot be negative"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
