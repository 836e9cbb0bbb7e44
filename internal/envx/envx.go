// Package envx reads YACHT_* settings from the process environment and an
// optional dotenv file. Process variables win over the file, as with
// godotenv.Load, but the file is never written into the environment.
package envx

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultFile is read when no explicit path is given and it exists.
const DefaultFile = ".env"

type Source struct {
	file map[string]string
}

// Load reads path, or DefaultFile when path is empty. A missing default
// file is not an error; a missing explicit file is.
func Load(path string) (*Source, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Source{file: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return &Source{file: vars}, nil
}

// Lookup returns the value of key from the environment, then the file.
func (s *Source) Lookup(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok {
		return v, true
	}
	v, ok := s.file[key]
	return v, ok
}

func (s *Source) String(key string, dst *string) {
	if v, ok := s.Lookup(key); ok {
		*dst = v
	}
}

func (s *Source) Duration(key string, dst *time.Duration) error {
	v, ok := s.Lookup(key)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}

func (s *Source) Int(key string, dst *int) error {
	v, ok := s.Lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
