// Package config loads the YAML configuration, applies defaults and validates it.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// DefaultRemoteURL is the remote ingestion service used when none is configured
const DefaultRemoteURL = "https://linked-in-post-generator-server.vercel.app"

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Remote   RemoteConfig   `yaml:"remote" json:"remote" jsonschema:"description=Remote ingestion service"`
	Auth     AuthConfig     `yaml:"auth" json:"auth" jsonschema:"description=Sessions and access"`
}

// ServerConfig holds dashboard http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"required,default=127.0.0.1:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"required,default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS links"`
}

// DatabaseConfig holds data store settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"required,default=file:postgen.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// RemoteConfig holds remote ingestion service settings
type RemoteConfig struct {
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"required,description=Remote ingestion service URL"`
	Token   string        `yaml:"token" json:"token" jsonschema:"description=Bearer token for the remote service (can use environment variable)"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=5m,description=Request timeout, ingestion can take minutes"`
}

// AuthConfig holds session settings and the optional bootstrap admin
type AuthConfig struct {
	SessionTTL     time.Duration `yaml:"session_ttl" json:"session_ttl" jsonschema:"default=168h,description=Session lifetime"`
	ResolveTimeout time.Duration `yaml:"resolve_timeout" json:"resolve_timeout" jsonschema:"default=30s,description=Timeout of a single session or role lookup"`
	AdminEmail     string        `yaml:"admin_email" json:"admin_email" jsonschema:"description=Email of the admin account created on start"`
	AdminPassword  string        `yaml:"admin_password" json:"admin_password" jsonschema:"description=Password of the admin account created on start"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.SetDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	if err := Verify(&cfg); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}
	return &cfg, nil
}

// SetDefaults fills in unset values
func (c *Config) SetDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = "127.0.0.1:8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:postgen.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// remote service
	if c.Remote.BaseURL == "" {
		c.Remote.BaseURL = DefaultRemoteURL
	}
	if c.Remote.Timeout == 0 {
		c.Remote.Timeout = 5 * time.Minute
	}

	// auth
	if c.Auth.SessionTTL == 0 {
		c.Auth.SessionTTL = 7 * 24 * time.Hour
	}
	if c.Auth.ResolveTimeout == 0 {
		c.Auth.ResolveTimeout = 30 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if !strings.HasPrefix(cfg.Remote.BaseURL, "http://") && !strings.HasPrefix(cfg.Remote.BaseURL, "https://") {
		return fmt.Errorf("remote.base_url must be an http(s) url, got %q", cfg.Remote.BaseURL)
	}
	if cfg.Remote.Timeout < time.Second {
		return fmt.Errorf("remote timeout must be at least 1 second")
	}
	if cfg.Auth.SessionTTL < time.Minute {
		return fmt.Errorf("auth.session_ttl must be at least 1 minute")
	}
	if (cfg.Auth.AdminEmail == "") != (cfg.Auth.AdminPassword == "") {
		return fmt.Errorf("auth.admin_email and auth.admin_password must be set together")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetRemoteConfig returns remote service configuration
func (c *Config) GetRemoteConfig() RemoteConfig {
	return c.Remote
}
