// Package flagx holds helpers for reading a handful of flags out of os.Args
// without disturbing flag sets owned by other packages.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns only the allowed flags (and their values) from args.
//
// Two forms are recognised:
//
//	-c conf.json        flag and value as separate arguments
//	--config=conf.json  flag and value joined with '='
//
// A following token that starts with '-' is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, joined := strings.Cut(arg, "="); joined && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// lookupString parses a single string flag known under several names
// (e.g. "c" and "config") from os.Args. The last occurrence wins.
func lookupString(setName, usage string, names ...string) string {
	var value string

	dashed := make([]string, 0, len(names))
	for _, n := range names {
		dashed = append(dashed, "-"+n)
	}
	args := FilterArgs(os.Args[1:], dashed)

	fs := flag.NewFlagSet(setName, flag.ContinueOnError)
	fs.SetOutput(nopWriter{})
	for _, n := range names {
		fs.StringVar(&value, n, "", usage)
	}
	_ = fs.Parse(args)

	return value
}

// JsonConfigFlags returns the JSON config path given via -c or -config,
// or an empty string.
func JsonConfigFlags() string {
	return lookupString("json", "Path to config file", "c", "config")
}

// EnvFileFlags returns the dotenv path given via -e or -env, or an empty
// string.
func EnvFileFlags() string {
	return lookupString("env", "Path to .env file", "e", "env")
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
