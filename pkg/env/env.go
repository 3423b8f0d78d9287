package env

import (
	"fmt"
	"os"
	"strconv"

	motmedelEnvErrors "github.com/Motmedel/http_response_go/pkg/env/errors"
	motmedelErrors "github.com/Motmedel/http_response_go/pkg/errors"
)

func GetEnvWithDefault(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvBoolWithDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: %q: strconv parse bool: %w", motmedelEnvErrors.ErrInvalidValue, key, err),
			value,
		)
	}

	return parsed, nil
}

func GetEnvIntWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: %q: strconv atoi: %w", motmedelEnvErrors.ErrInvalidValue, key, err),
			value,
		)
	}

	return parsed, nil
}
