package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type EnvValue interface {
	string | int | bool | time.Duration
}

// GetEnv reads an environment variable and converts it to T, returning
// defaultValue when the variable is unset or empty.
func GetEnv[T EnvValue](name string, defaultValue T) T {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return defaultValue
	}
	value, err := parseEnv[T](name, raw)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return value
}

// GetRequiredEnv is like GetEnv but exits when the variable is missing.
func GetRequiredEnv[T EnvValue](name string) T {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		log.Fatalf("%s environment variable is required", name)
	}
	value, err := parseEnv[T](name, raw)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return value
}

func parseEnv[T EnvValue](name, raw string) (T, error) {
	var value T
	switch ptr := any(&value).(type) {
	case *string:
		*ptr = raw
	case *int:
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return value, fmt.Errorf("environment variable %s is not valid: %q is not an integer", name, raw)
		}
		*ptr = parsed
	case *bool:
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return value, fmt.Errorf("environment variable %s is not valid: %q is not a boolean", name, raw)
		}
		*ptr = parsed
	case *time.Duration:
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return value, fmt.Errorf("environment variable %s is not valid: %q is not a duration", name, raw)
		}
		*ptr = parsed
	}
	return value, nil
}
