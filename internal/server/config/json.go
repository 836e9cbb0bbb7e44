package config

import (
	"encoding/json"
	"os"

	"github.com/zayats-yacht/yachtclient/internal/flagx"
	"github.com/zayats-yacht/yachtclient/internal/timex"
)

// JsonConfig is the on-disk shape of the server config. timex.Duration
// accepts both "720h" and integer nanoseconds; absent fields leave the
// Config untouched.
type JsonConfig struct {
	ListenAddr      *string         `json:"listen_addr"`
	DatabaseDSN     *string         `json:"database_dsn"`
	SecretKey       *string         `json:"secret_key"`
	SessionLifetime *timex.Duration `json:"session_lifetime"`
	AdminEmail      *string         `json:"admin_email"`
	AdminPassword   *string         `json:"admin_password"`
	SailingsFile    *string         `json:"sailings_file"`
	LogLevel        *string         `json:"log_level"`
}

// parseJson loads the file named by -c or -config, if any, into config.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.ListenAddr, c.ListenAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.AdminEmail, c.AdminEmail)
	setString(&config.AdminPassword, c.AdminPassword)
	setString(&config.SailingsFile, c.SailingsFile)
	setString(&config.LogLevel, c.LogLevel)
	if c.SessionLifetime != nil {
		config.SessionLifetime = c.SessionLifetime.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
