package config

import (
	"github.com/zayats-yacht/yachtclient/internal/envx"
	"github.com/zayats-yacht/yachtclient/internal/flagx"
)

// Environment variables read by parseEnv.
const (
	EnvListenAddr      = "YACHT_SERVER_ADDR"
	EnvDatabaseDSN     = "YACHT_DATABASE_DSN"
	EnvSecretKey       = "YACHT_SECRET_KEY"
	EnvSessionLifetime = "YACHT_SESSION_LIFETIME"
	EnvAdminEmail      = "YACHT_ADMIN_EMAIL"
	EnvAdminPassword   = "YACHT_ADMIN_PASSWORD"
	EnvSailingsFile    = "YACHT_SAILINGS_FILE"
	EnvLogLevel        = "YACHT_LOG_LEVEL"
)

func parseEnv(cfg *Config) {
	src, err := envx.Load(flagx.EnvFileFlags())
	if err != nil {
		panic(err)
	}

	src.String(EnvListenAddr, &cfg.ListenAddr)
	src.String(EnvDatabaseDSN, &cfg.DatabaseDSN)
	src.String(EnvSecretKey, &cfg.SecretKey)
	src.String(EnvAdminEmail, &cfg.AdminEmail)
	src.String(EnvAdminPassword, &cfg.AdminPassword)
	src.String(EnvSailingsFile, &cfg.SailingsFile)
	src.String(EnvLogLevel, &cfg.LogLevel)
	if err := src.Duration(EnvSessionLifetime, &cfg.SessionLifetime); err != nil {
		panic(err)
	}
}
