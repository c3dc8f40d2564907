// Package config reads the service configuration from the environment
package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration
type Config struct {
	Server Server
	Logger Logger
	Rates  Rates
}

// Server represents the HTTP server configuration
type Server struct {
	Address      string        `env:"MONEY_SERVER_ADDRESS" env-default:":8080"`
	ReadTimeout  time.Duration `env:"MONEY_SERVER_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"MONEY_SERVER_WRITE_TIMEOUT" env-default:"10s"`
}

// Logger represents the logger configuration
type Logger struct {
	Level  string `env:"MONEY_LOG_LEVEL" env-default:"info"`
	Pretty bool   `env:"MONEY_LOG_PRETTY" env-default:"false"`
	File   string `env:"MONEY_LOG_FILE" env-default:""`
}

// Rates represents the exchange rate and formatting defaults
type Rates struct {
	DefaultProvider string `env:"MONEY_DEFAULT_PROVIDER" env-default:"DFP"`
	DefaultLocale   string `env:"MONEY_DEFAULT_LOCALE" env-default:"en-US"`
}

var (
	config  Config
	loadErr error
	once    sync.Once
)

// Load reads the configuration once and returns the cached result afterwards
func Load() (*Config, error) {
	once.Do(func() {
		if err := cleanenv.ReadEnv(&config); err != nil {
			loadErr = fmt.Errorf("read env: %w", err)
		}
	})

	return &config, loadErr
}

// Read parses the environment into a fresh Config without caching it
func Read() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return &cfg, nil
}
