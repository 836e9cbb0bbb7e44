package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3000/api/", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "yacht-cache.db", c.CacheDSN)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Chdir(t.TempDir())

	path := writeConfigFile(t, `{"api_base_url":"http://json.example/api/","log_level":"warn"}`)
	t.Setenv(EnvAPIBaseURL, "http://env.example/api/")
	t.Setenv(EnvCacheDSN, ":memory:")
	t.Setenv(EnvLogLevel, "debug")

	os.Args = []string{"testbin", "-config", path, "-l", "error"}
	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "http://json.example/api/", cfg.APIBaseURL)
	assert.Equal(t, ":memory:", cfg.CacheDSN)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
