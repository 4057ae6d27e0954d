package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the memoir service.
// Environment variables are automatically parsed from the MEMOIR_BACKEND_ prefix.
type Config struct {
	// Build target selects high-level environment: local, cloud-dev, cloud
	BuildTarget string `envconfig:"BUILD_TARGET" default:"local"`

	// Derived or override driver
	DBDriver string `envconfig:"DB_DRIVER" default:"auto"`

	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Postgres Configuration (cloud targets)
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// SQLite Configuration (local target)
	SQLitePath string `envconfig:"SQLITE_PATH" default:"memoir.db"`

	// Generation service
	GenProvider string        `envconfig:"GEN_PROVIDER" default:"gemini"`
	GenModel    string        `envconfig:"GEN_MODEL" default:"gemini-pro"`
	GenAPIKey   string        `envconfig:"GEN_API_KEY" default:""`
	GenBaseURL  string        `envconfig:"GEN_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	GenTimeout  time.Duration `envconfig:"GEN_TIMEOUT" default:"60s"`

	// Identity provider
	AuthBaseURL string `envconfig:"AUTH_BASE_URL" default:""`
	AuthAPIKey  string `envconfig:"AUTH_API_KEY" default:""`

	// Share links are built from this base, e.g. https://memoir.example.com
	ShareBaseURL string `envconfig:"SHARE_BASE_URL" default:"http://localhost:3000"`

	// Comma-separated emails allowed on the admin surface
	AdminEmails []string `envconfig:"ADMIN_EMAILS" default:""`
}

// ResolveDefaults validates BuildTarget and derives DBDriver when set to "auto" or empty.
func (c *Config) ResolveDefaults() error {
	var defaultDB string

	switch c.BuildTarget {
	case "local":
		defaultDB = "sqlite"
	case "cloud-dev", "cloud":
		defaultDB = "postgres"
	default:
		return fmt.Errorf("unsupported BUILD_TARGET: %s", c.BuildTarget)
	}

	if c.DBDriver == "" || c.DBDriver == "auto" {
		c.DBDriver = defaultDB
	}

	allowedDB := map[string]bool{"sqlite": true, "postgres": true}
	if !allowedDB[c.DBDriver] {
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Environment variables should be prefixed with MEMOIR_BACKEND_
// Example: MEMOIR_BACKEND_HTTP_PORT, MEMOIR_BACKEND_POSTGRES_DSN
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("MEMOIR_BACKEND", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("build_target", cfg.BuildTarget).
		Str("db_driver", cfg.DBDriver).
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("gen_provider", cfg.GenProvider).
		Str("gen_model", cfg.GenModel).
		Dur("gen_timeout", cfg.GenTimeout).
		Int("admin_emails", len(cfg.AdminEmails)).
		Str("share_base_url", cfg.ShareBaseURL).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		BuildTarget:  "local",
		DBDriver:     "sqlite",
		Environment:  EnvTesting,
		HTTPPort:     8080,
		SQLitePath:   ":memory:",
		GenProvider:  "gemini",
		GenModel:     "gemini-pro",
		GenTimeout:   60 * time.Second,
		ShareBaseURL: "http://localhost:3000",
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool { return c.Environment == EnvTesting }

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool { return c.Environment == EnvProduction }

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
