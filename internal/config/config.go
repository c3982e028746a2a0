package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the user-atlas service.
// Environment variables are automatically parsed from the USER_ATLAS_ prefix.
type Config struct {
	// Environment is informational; it is logged at startup.
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Record store: memory, sqlite or postgres
	DBDriver    string `envconfig:"DB_DRIVER" default:"memory"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:""`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Weather/geocoding provider
	WeatherBaseURL string `envconfig:"WEATHER_BASE_URL" default:"https://api.openweathermap.org"`
	WeatherAPIKey  string `envconfig:"WEATHER_API_KEY" default:""`
	WeatherCountry string `envconfig:"WEATHER_COUNTRY" default:"us"`

	// Health checking
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
}

// ResolveDefaults validates the driver choice and derives driver-specific defaults.
func (c *Config) ResolveDefaults() error {
	switch c.DBDriver {
	case "memory":
	case "sqlite":
		if c.SQLitePath == "" {
			c.SQLitePath = "data/useratlas.db"
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("DB_DRIVER=postgres requires POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Environment variables should be prefixed with USER_ATLAS_
// Example: USER_ATLAS_HTTP_PORT, USER_ATLAS_WEATHER_API_KEY
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("USER_ATLAS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.HTTPPort).
		Str("db_driver", cfg.DBDriver).
		Str("weather_base_url", cfg.WeatherBaseURL).
		Str("weather_api_key_present", func() string {
			if cfg.WeatherAPIKey != "" {
				return "true"
			}
			return "false"
		}()).
		Msg("Configuration loaded")

	return &cfg, nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string { return fmt.Sprintf(":%d", c.HTTPPort) }
