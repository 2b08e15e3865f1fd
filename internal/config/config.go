package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"startupsim/internal/errors"
	"startupsim/internal/logger"
)

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Simulation SimulationConfig
	Logging    LoggingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port             string   `env:"PORT" envDefault:"8080"`
	GinMode          string   `env:"GIN_MODE" envDefault:"debug"`
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

// DatabaseConfig holds database connection settings. An empty URL selects
// the in-memory report store.
type DatabaseConfig struct {
	URL          string `env:"DATABASE_URL"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
}

// SimulationConfig holds the knobs of a full simulation run
type SimulationConfig struct {
	PersonaCount     int     `env:"SIM_PERSONA_COUNT" envDefault:"20"`
	ProjectionMonths int     `env:"SIM_PROJECTION_MONTHS" envDefault:"12"`
	Threshold        float64 `env:"SIM_THRESHOLD" envDefault:"0.6"`
	Seed             int64   `env:"SIM_SEED" envDefault:"0"`
	BatchConcurrency int     `env:"SIM_BATCH_CONCURRENCY" envDefault:"4"`
	MaxBatchRuns     int     `env:"SIM_MAX_BATCH_RUNS" envDefault:"50"`
}

// LoggingConfig holds structured logging settings
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"INFO"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Persistent reports whether reports go to Postgres
func (c DatabaseConfig) Persistent() bool {
	return c.URL != ""
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom reads configuration from the given variables instead of the
// process environment
func LoadFrom(environment map[string]string) (*Config, error) {
	return load(env.Options{Environment: environment})
}

func load(opts env.Options) (*Config, error) {
	config := &Config{}
	if err := env.ParseWithOptions(config, opts); err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, fmt.Errorf("parse env: %w", err))
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.ConfigInvalid(fmt.Sprintf("GIN_MODE must be debug, release or test, got %q", config.Server.GinMode))
	}

	sim := config.Simulation
	if sim.PersonaCount <= 0 {
		return errors.ConfigInvalid("SIM_PERSONA_COUNT must be positive")
	}
	if sim.ProjectionMonths <= 0 {
		return errors.ConfigInvalid("SIM_PROJECTION_MONTHS must be positive")
	}
	if sim.Threshold <= 0.5 || sim.Threshold >= 1 {
		return errors.ConfigInvalid("SIM_THRESHOLD must be in (0.5, 1)")
	}
	if sim.BatchConcurrency <= 0 {
		return errors.ConfigInvalid("SIM_BATCH_CONCURRENCY must be positive")
	}
	if sim.MaxBatchRuns <= 0 {
		return errors.ConfigInvalid("SIM_MAX_BATCH_RUNS must be positive")
	}

	if _, err := logger.ParseLevel(config.Logging.Level); err != nil {
		return errors.ConfigInvalid(fmt.Sprintf("LOG_LEVEL must be DEBUG, INFO, WARN or ERROR, got %q", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "json", "text":
	default:
		return errors.ConfigInvalid(fmt.Sprintf("LOG_FORMAT must be json or text, got %q", config.Logging.Format))
	}
	return nil
}
