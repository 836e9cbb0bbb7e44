package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	serverFlags := []string{"-a", "-d", "-k", "-s", "-f", "-l"}

	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "server flags survive, config and env flags dropped",
			args:    []string{"-c", "server.json", "-a", ":4000", "-e", ".env", "-l", "debug"},
			allowed: serverFlags,
			want:    []string{"-a", ":4000", "-l", "debug"},
		},
		{
			name:    "equals form kept whole",
			args:    []string{"-d=postgres://yacht@localhost/yacht", "-x"},
			allowed: serverFlags,
			want:    []string{"-d=postgres://yacht@localhost/yacht"},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-f"},
			allowed: serverFlags,
			want:    []string{"-f"},
		},
		{
			name:    "next dash token is not taken as value",
			args:    []string{"-s", "-l", "warn"},
			allowed: serverFlags,
			want:    []string{"-s", "-l", "warn"},
		},
		{
			name:    "repeats kept in order",
			args:    []string{"-a", "http://a/api/", "-a", "http://b/api/"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://a/api/", "-a", "http://b/api/"},
		},
		{
			name:    "nothing allowed matches",
			args:    []string{"positional", "--verbose"},
			allowed: serverFlags,
			want:    []string{},
		},
		{
			name:    "no args",
			args:    nil,
			allowed: serverFlags,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func Test_jsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/short.json"}
		assert.Equal(t, "/path/short.json", JsonConfigFlags())
	})

	t.Run("long -config with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", "/path/long.json"}
		assert.Equal(t, "/path/long.json", JsonConfigFlags())
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-x", "1", "-y", "2"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("multiple flags, last wins", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/1.json", "-config", "/path/2.json"}
		assert.Equal(t, "/path/2.json", JsonConfigFlags())
	})

	t.Run("env flag does not leak into json lookup", func(t *testing.T) {
		os.Args = []string{"testbin", "-e", "/path/.env"}
		assert.Empty(t, JsonConfigFlags())
	})
}

func Test_envFileFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -e", func(t *testing.T) {
		os.Args = []string{"testbin", "-e", "/srv/yacht.env", "-a", "http://localhost:3000/api/"}
		assert.Equal(t, "/srv/yacht.env", EnvFileFlags())
	})

	t.Run("long -env with equals", func(t *testing.T) {
		os.Args = []string{"testbin", "-env=/srv/other.env"}
		assert.Equal(t, "/srv/other.env", EnvFileFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "cfg.json"}
		assert.Empty(t, EnvFileFlags())
	})
}
