package utils

import (
	"fmt"
	"os"
	"strings"
)

func GetEnvVar(envVar string) (string, error) {
	value, found := os.LookupEnv(envVar)
	if !found || strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("env var '%s' not specified", envVar)
	}
	return strings.TrimSpace(value), nil
}

func GetEnvVarWithDefault(envVar, defaultValue string) string {
	value, found := os.LookupEnv(envVar)
	if !found || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

// GetEnvList splits a comma separated env var, dropping empty items.
func GetEnvList(envVar string, defaultValue []string) []string {
	parts := strings.Split(os.Getenv(envVar), ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
