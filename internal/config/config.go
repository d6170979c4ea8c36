// Package config manages environment variables.
//
// It reads variables from the `.env` file and the process environment,
// loads them into structured Go types (struct), and validates that
// required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Provide defaults so the relay starts with no configuration at all.
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad config.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	koanf reads config sources and unmarshals them into Config.

	Sources, later ones win:
	- defaults (confmap)
	- env vars with prefix RELAY_, "__" separating nesting levels
	  e.g. RELAY_DOWNSTREAM__TARGET_URL -> downstream.target_url
	- plain PORT, which hosting platforms set for the listener
*/

const (
	// EnvPrefix is the prefix of every env var the relay reads, except PORT.
	EnvPrefix = "RELAY_"

	// DefaultPort is used when neither PORT nor RELAY_SERVER__PORT is set.
	DefaultPort = "3000"

	// DefaultTargetURL is the downstream attendance endpoint responses are forwarded to.
	DefaultTargetURL = "https://electron.attendanceapp.work/attendance-response"
)

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary             `koanf:"primary" validate:"required"`
	Server        ServerConfig        `koanf:"server" validate:"required"`
	Downstream    DownstreamConfig    `koanf:"downstream" validate:"required"`
	Observability ObservabilityConfig `koanf:"observability" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=0"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=0"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=0"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DownstreamConfig describes the single service inbound responses are relayed to.
//
// Timeout bounds one outbound attempt. Zero means no client-side bound.
type DownstreamConfig struct {
	TargetURL string        `koanf:"target_url" validate:"required,url"`
	Timeout   time.Duration `koanf:"timeout" validate:"min=0"`
}

func defaults() map[string]interface{} {
	obs := DefaultObservabilityConfig()

	return map[string]interface{}{
		"primary.env": "development",

		"server.port":                 DefaultPort,
		"server.read_timeout":         10,
		"server.write_timeout":        60,
		"server.idle_timeout":         60,
		"server.shutdown_timeout":     10,
		"server.cors_allowed_origins": []string{"*"},

		"downstream.target_url": DefaultTargetURL,
		"downstream.timeout":    "30s",

		"observability.service_name":                          obs.ServiceName,
		"observability.logging.level":                         obs.Logging.Level,
		"observability.logging.format":                        obs.Logging.Format,
		"observability.new_relic.license_key":                 obs.NewRelic.LicenseKey,
		"observability.new_relic.app_log_forwarding_enabled":  obs.NewRelic.AppLogForwardingEnabled,
		"observability.new_relic.distributed_tracing_enabled": obs.NewRelic.DistributedTracingEnabled,
		"observability.new_relic.debug_logging":               obs.NewRelic.DebugLogging,
		"observability.health_checks.enabled":                 obs.HealthChecks.Enabled,
		"observability.health_checks.interval":                obs.HealthChecks.Interval.String(),
		"observability.health_checks.timeout":                 obs.HealthChecks.Timeout.String(),
		"observability.health_checks.checks":                  obs.HealthChecks.Checks,
	}
}

// envKey turns RELAY_SERVER__READ_TIMEOUT into server.read_timeout.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// LoadConfig loads configuration from defaults and environment variables,
// unmarshals it into Config, validates it, and returns the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load config defaults: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load %s env variables: %w", EnvPrefix, err)
	}

	// Blank keys are skipped, which drops PORTAL=... and an empty PORT.
	err := k.Load(env.ProviderWithValue("PORT", ".", func(key, value string) (string, interface{}) {
		if key != "PORT" || value == "" {
			return "", nil
		}
		return "server.port", value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load PORT: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	// A comma separated RELAY_SERVER__CORS_ALLOWED_ORIGINS arrives as one string.
	mainConfig.Server.CORSAllowedOrigins = splitList(mainConfig.Server.CORSAllowedOrigins)
	mainConfig.Observability.HealthChecks.Checks = splitList(mainConfig.Observability.HealthChecks.Checks)

	// Environment always follows primary.env so logs and traces agree.
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
