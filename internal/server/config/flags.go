package config

import (
	"flag"
	"os"
	"time"

	"github.com/zayats-yacht/yachtclient/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-d string   PostgreSQL DSN, empty for in-memory storage
//	-k string   session token HMAC secret key
//	-s int      session lifetime, hours
//	-f string   sailings seed file
//	-l string   log level
//
// Duration flags are accepted as integers and converted to time.Duration.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-s", "-f", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "k", config.SecretKey, "secret key")
	lifetime := fs.Int("s", int(config.SessionLifetime.Hours()), "session lifetime (in hours)")
	fs.StringVar(&config.SailingsFile, "f", config.SailingsFile, "sailings seed file")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionLifetime = time.Duration(*lifetime) * time.Hour
}
