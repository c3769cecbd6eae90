// Package config handles configuration for the server, layering defaults,
// an optional JSON file, environment variables and command-line flags.
package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the jitsunotes server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP endpoint.
//   - DatabaseURI: store location; "sqlite:///<path>" for a local file,
//     "postgres://..." for PostgreSQL.
//   - BcryptCost: work factor for password hashes.
//   - LogLevel: debug, info, warn or error.
//   - SecureCookie: mark the session cookie Secure (HTTPS deployments).
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
type Config struct {
	EndpointAddrHTTP string
	DatabaseURI      string
	BcryptCost       int
	LogLevel         string
	SecureCookie     bool
	ShutdownTimeout  time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8000"
	c.DatabaseURI = "sqlite:///jiu_jitsu_notes.db"
	c.BcryptCost = bcrypt.DefaultCost
	c.LogLevel = "info"
	c.SecureCookie = false
	c.ShutdownTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
