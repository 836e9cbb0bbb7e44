package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	base := func() Config {
		return Config{
			APIBaseURL:     "http://localhost:3000/api/",
			RequestTimeout: 15 * time.Second,
			CacheDSN:       "yacht.db",
			LogLevel:       "info",
		}
	}

	tests := []struct {
		name string
		body string
		want func(c *Config)
	}{
		{
			name: "every field",
			body: `{"api_base_url":"https://staging.yacht.example/api/","request_timeout":"30s","cache_dsn":":memory:","log_level":"debug"}`,
			want: func(c *Config) {
				c.APIBaseURL = "https://staging.yacht.example/api/"
				c.RequestTimeout = 30 * time.Second
				c.CacheDSN = ":memory:"
				c.LogLevel = "debug"
			},
		},
		{
			name: "absent fields keep earlier values",
			body: `{"request_timeout":"2m"}`,
			want: func(c *Config) { c.RequestTimeout = 2 * time.Minute },
		},
		{
			name: "empty object",
			body: `{}`,
			want: func(*Config) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = []string{"yacht", "-c", writeConfigFile(t, tt.body)}

			got := base()
			parseJson(&got)

			want := base()
			tt.want(&want)
			assert.Equal(t, want, got)
		})
	}

	t.Run("no config flag", func(t *testing.T) {
		os.Args = []string{"yacht", "-a", "http://elsewhere/api/"}
		got := base()
		parseJson(&got)
		assert.Equal(t, base(), got)
	})

	t.Run("malformed file panics", func(t *testing.T) {
		os.Args = []string{"yacht", "-config", writeConfigFile(t, `{"request_timeout": "soon"}`)}
		assert.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"yacht", "-config", filepath.Join(t.TempDir(), "nope.json")}
		assert.Panics(t, func() { parseJson(&Config{}) })
	})
}
