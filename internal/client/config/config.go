package config

import "time"

// Config holds runtime settings for the yacht client.
//
// Fields:
//   - APIBaseURL: root of the remote API, ending in "/api/".
//   - RequestTimeout: upper bound for a single API request.
//   - CacheDSN: sqlite DSN of the local schedule cache.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	CacheDSN       string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/api/"
	c.RequestTimeout = 10 * time.Second
	c.CacheDSN = "yacht-cache.db"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays the
// environment (and .env), JSON (if present) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
