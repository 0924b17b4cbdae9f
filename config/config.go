// Package config exposes the process environment as a plain map with typed
// getters. The environment contract is small: a Mongo connection string, a
// database name, the listen port, and the optional notification settings.
package config

import (
	"os"
	"strconv"
	"strings"
)

// New snapshots the process environment.
func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if key, value, ok := strings.Cut(entry, "="); ok {
			envAsMap[key] = value
		}
	}
	return envAsMap
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}
