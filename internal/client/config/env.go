package config

import (
	"github.com/zayats-yacht/yachtclient/internal/envx"
	"github.com/zayats-yacht/yachtclient/internal/flagx"
)

// Environment variables read by parseEnv.
const (
	EnvAPIBaseURL     = "YACHT_API_URL"
	EnvRequestTimeout = "YACHT_REQUEST_TIMEOUT"
	EnvCacheDSN       = "YACHT_CACHE_DSN"
	EnvLogLevel       = "YACHT_LOG_LEVEL"
)

// parseEnv overlays Config with YACHT_* variables from the environment and
// the dotenv file named by -e/-env (default ".env"). Panics on an unreadable
// file or a malformed duration.
func parseEnv(cfg *Config) {
	src, err := envx.Load(flagx.EnvFileFlags())
	if err != nil {
		panic(err)
	}

	src.String(EnvAPIBaseURL, &cfg.APIBaseURL)
	src.String(EnvCacheDSN, &cfg.CacheDSN)
	src.String(EnvLogLevel, &cfg.LogLevel)
	if err := src.Duration(EnvRequestTimeout, &cfg.RequestTimeout); err != nil {
		panic(err)
	}
}
