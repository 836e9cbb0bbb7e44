package config

import (
	"encoding/json"
	"os"

	"github.com/zayats-yacht/yachtclient/internal/flagx"
	"github.com/zayats-yacht/yachtclient/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields leave the Config untouched.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	CacheDSN       *string         `json:"cache_dsn"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file given via
// -c or -config. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CacheDSN != nil {
		cfg.CacheDSN = *jc.CacheDSN
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
