// Package config loads runtime configuration for the yacht client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables YACHT_API_URL, YACHT_REQUEST_TIMEOUT,
//     YACHT_CACHE_DSN and YACHT_LOG_LEVEL, also read from a dotenv file
//     (-e/-env, default ".env").
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   API base URL
//	-t int      request timeout (seconds)
//	-d string   local cache DSN
//	-l string   log level
//
// # JSON schema
//
// Durations are timex.Duration, so "10s" and integer nanoseconds both work:
//
//	{
//	  "api_base_url": "http://localhost:3000/api/",
//	  "request_timeout": "10s",
//	  "cache_dsn": "yacht-cache.db",
//	  "log_level": "debug"
//	}
package config
