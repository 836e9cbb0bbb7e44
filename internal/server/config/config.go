// Package config handles configuration for the development API server,
// including defaults, the environment, a JSON overlay and command-line flags.
package config

import "time"

// Config holds runtime settings for the development API server.
//
// Fields:
//   - ListenAddr: HTTP bind address.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps everything in memory.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - SessionLifetime: how long a sign-in stays valid.
//   - AdminEmail / AdminPassword: the user seeded at startup.
//   - SailingsFile: optional JSON file replacing the built-in sailing catalog.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ListenAddr      string
	DatabaseDSN     string
	SecretKey       string
	SessionLifetime time.Duration
	AdminEmail      string
	AdminPassword   string
	SailingsFile    string
	LogLevel        string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret and the admin password must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":3000"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.SessionLifetime = 30 * 24 * time.Hour
	c.AdminEmail = "admin@yacht.local"
	c.AdminPassword = "Yacht123"
	c.SailingsFile = ""
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then the environment,
// then an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
