package config

import (
	"os"
	"strings"
)

// RuntimeConfig carries process settings that are not part of AppConfig:
// logging and the listen address of the lookup server.
type RuntimeConfig struct {
	HTTPAddr  string
	LogLevel  string
	LogFormat string
	Pretty    bool
}

func LoadRuntime() RuntimeConfig {
	return loadRuntime(os.LookupEnv)
}

func loadRuntime(lookup LookupFunc) RuntimeConfig {
	return RuntimeConfig{
		HTTPAddr:  getenv(lookup, "DEPLOYCONF_HTTP_ADDR", ":8080"),
		LogLevel:  strings.ToLower(getenv(lookup, "DEPLOYCONF_LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getenv(lookup, "DEPLOYCONF_LOG_FORMAT", "text")),
		Pretty:    boolenv(lookup, "DEPLOYCONF_LOG_PRETTY", false),
	}
}
