// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file),
// loads them into structured Go types, and validates that required values
// are present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the DASHBOARD_ prefix. Keys are lowercased and
	the prefix is removed; nesting uses "." as delimiter, so the variable
	name itself carries the dot:

		DASHBOARD_DATABASE.URL        -> database.url        -> Config.Database.URL
		DASHBOARD_SERVER.READ_TIMEOUT -> server.read_timeout -> Config.Server.ReadTimeout
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "DASHBOARD_"

// Config is the root configuration object for the application.
//
// Observability, Revalidate and Display are pointers because they are
// optional. If not provided, defaults are injected by LoadConfig.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Revalidate    *RevalidateConfig    `koanf:"revalidate"`
	Display       *DisplayConfig       `koanf:"display"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// DatabaseConfig contains the store endpoint, its access key and pool tuning.
//
// URL is a postgres:// endpoint without credentials in the password slot;
// AccessKey is injected as the password when the DSN is built.
type DatabaseConfig struct {
	URL             string `koanf:"url" validate:"required,url"`
	AccessKey       string `koanf:"access_key" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time"`
}

// RedisConfig contains Redis connection details.
// Address is "host:port". An empty address disables Redis entirely.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, validates it, applies defaults, and returns the result.
//
// Any missing required value is returned as an error; the caller decides
// to exit (cmd/dashboard logs it fatally).
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}
	if mainConfig.Revalidate == nil {
		mainConfig.Revalidate = DefaultRevalidateConfig()
	}
	if mainConfig.Display == nil {
		mainConfig.Display = DefaultDisplayConfig()
	}

	// Service name is fixed; environment always follows primary.env.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}
	mainConfig.Revalidate.fillDefaults()
	if err := mainConfig.Revalidate.Validate(mainConfig.Redis); err != nil {
		return nil, fmt.Errorf("invalid revalidate config: %w", err)
	}

	return mainConfig, nil
}
