// Package config provides environment variable helpers that fall back to a
// default, with a warning, when a value is missing or malformed.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Lookup reports the raw value of key and whether it is set to something non-empty.
func Lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

// GetEnvString returns the value of key, or defaultValue when unset or empty.
//
//	addr := GetEnvString("HTTP_ADDR", ":3000")
func GetEnvString(key, defaultValue string) string {
	if v, ok := Lookup(key); ok {
		return v
	}
	return defaultValue
}

// GetEnvInt returns key parsed as an int.
// A value that does not parse yields defaultValue and a warning.
func GetEnvInt(key string, defaultValue int) int {
	valueStr, ok := Lookup(key)
	if !ok {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Int("default", defaultValue),
			slog.String("error", err.Error()))
		return defaultValue
	}
	return value
}

// GetEnvFloat returns key parsed as a float64.
//
//	rps := GetEnvFloat("RATELIMIT_RPS", 10)
func GetEnvFloat(key string, defaultValue float64) float64 {
	valueStr, ok := Lookup(key)
	if !ok {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		slog.Warn("invalid float value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Float64("default", defaultValue),
			slog.String("error", err.Error()))
		return defaultValue
	}
	return value
}

// GetEnvBool returns key parsed with strconv.ParseBool
// ("1", "t", "true", "0", "f", "false" and their capitalised forms).
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr, ok := Lookup(key)
	if !ok {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		slog.Warn("invalid boolean value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Bool("default", defaultValue))
		return defaultValue
	}
	return value
}

// GetEnvDuration returns key parsed with time.ParseDuration ("30s", "1h30m").
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr, ok := Lookup(key)
	if !ok {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.String("default", defaultValue.String()),
			slog.String("error", err.Error()))
		return defaultValue
	}
	return value
}

// GetEnvStringList splits a comma-separated value, trimming items and
// dropping empty ones. An empty result yields defaultValue.
//
//	CORS_ALLOWED_ORIGINS="https://a.example.com, https://b.example.com"
func GetEnvStringList(key string, defaultValue []string) []string {
	valueStr, ok := Lookup(key)
	if !ok {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
