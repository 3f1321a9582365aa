package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LookupFunc reports the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// LoadEnvFile loads a dotenv file into the process environment. Variables
// already present in the environment are kept, so loading twice is harmless.
// An empty path or a missing file is not an error.
func LoadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// EnvFilePath is the dotenv file named by DEPLOYCONF_ENV_FILE, or ".env".
func EnvFilePath() string {
	return getenv(os.LookupEnv, EnvFile, DefaultEnvFile)
}

// getenv treats an empty value the same as an unset one.
func getenv(lookup LookupFunc, k, def string) string {
	v, ok := lookup(k)
	if !ok || v == "" {
		return def
	}
	return v
}

func boolenv(lookup LookupFunc, k string, def bool) bool {
	if v, ok := lookup(k); ok && v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

// MapLookup adapts a plain map to a LookupFunc.
func MapLookup(env map[string]string) LookupFunc {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}
