package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML file at path, when one is given
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load(path string) (*Config, error) {
	if err := l.read(path); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// read fills the configuration from the file and the environment.
// Without a path only the environment is read. A path that was asked for
// must exist.
func (l *Loader) read(path string) error {
	if path == "" {
		if err := cleanenv.ReadEnv(l.config); err != nil {
			return fmt.Errorf("cannot read env: %w", err)
		}
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file %q: %w", path, err)
	}
	if err := cleanenv.ReadConfig(path, l.config); err != nil {
		return fmt.Errorf("cannot read config %q: %w", path, err)
	}
	return nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(path string, overrides *ConfigOverrides) (*Config, error) {
	if err := l.read(path); err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(l.config, overrides)
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	Address        *string
	RequestTimeout *time.Duration
	LogLevel       *string
	LogFormat      *string
	StoreBackend   *string
	SQLiteDSN      *string
	SkipSeed       *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.Address != nil {
		config.HTTP.Address = *overrides.Address
	}
	if overrides.RequestTimeout != nil {
		config.HTTP.RequestTimeout = *overrides.RequestTimeout
	}
	if overrides.LogLevel != nil {
		config.Log.Level = *overrides.LogLevel
	}
	if overrides.LogFormat != nil {
		config.Log.Format = *overrides.LogFormat
	}
	if overrides.StoreBackend != nil {
		config.Store.Backend = *overrides.StoreBackend
	}
	if overrides.SQLiteDSN != nil {
		config.Store.SQLiteDSN = *overrides.SQLiteDSN
	}
	if overrides.SkipSeed != nil {
		config.Store.SkipSeed = *overrides.SkipSeed
	}
}
