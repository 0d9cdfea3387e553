package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when no other .env path is configured.
const DefaultEnvFile = ".env"

// Lookup returns the value of an environment variable and whether it is set.
type Lookup func(key string) (string, bool)

// ReadEnvFile parses a .env file into a map without touching the process
// environment. A missing file yields an empty map.
func ReadEnvFile(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return vars, nil
}

// MapLookup adapts a map to Lookup.
func MapLookup(m map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Chain consults each Lookup in order and returns the first non-empty value.
func Chain(lookups ...Lookup) Lookup {
	return func(key string) (string, bool) {
		for _, l := range lookups {
			if l == nil {
				continue
			}
			if v, ok := l(key); ok && v != "" {
				return v, true
			}
		}
		return "", false
	}
}

// ProcessEnv returns a Lookup over the process environment followed by the
// variables of envFile, so real environment variables win.
func ProcessEnv(envFile string) (Lookup, error) {
	vars, err := ReadEnvFile(envFile)
	if err != nil {
		return nil, err
	}
	return Chain(os.LookupEnv, MapLookup(vars)), nil
}
