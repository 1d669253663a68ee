// Package config reads settings for the server binaries from the
// environment. The scene itself has no configuration; everything it needs
// is derived from the terminal dimensions.
package config

import "os"

// GetEnv returns the value of the environment variable named by key, or
// fallback if the variable is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
