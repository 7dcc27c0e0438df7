package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type envVarType interface {
	string | int | bool | time.Duration
}

// GetEnv reads an environment variable, returning defaultValue when it is unset or empty.
// It panics on a value that cannot be parsed into T.
func GetEnv[T envVarType](envVar string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	value, err := parseEnvValue[T](envValue)
	if err != nil {
		panic(fmt.Sprintf("Environment variable %s is not valid: %s", envVar, err))
	}
	return value
}

func GetRequiredEnv[T envVarType](envVar string) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVar)
	}
	value, err := parseEnvValue[T](envValue)
	if err != nil {
		log.Fatalf("%s environment variable is not valid: %s", envVar, err)
	}
	return value
}

func parseEnvValue[T envVarType](envValue string) (T, error) {
	var (
		result T
		parsed any
		err    error
	)
	switch any(result).(type) {
	case string:
		parsed = envValue
	case int:
		parsed, err = strconv.Atoi(envValue)
	case bool:
		parsed, err = strconv.ParseBool(envValue)
	case time.Duration:
		parsed, err = time.ParseDuration(envValue)
	}
	if err != nil {
		return result, err
	}
	return parsed.(T), nil
}
