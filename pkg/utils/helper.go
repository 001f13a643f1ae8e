package utils

import (
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return result
}

// ParseIntPtr converts an optional query value to *int, nil when absent
// or unparseable.
func ParseIntPtr(value string) *int {
	if value == "" {
		return nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}

	return &result
}

// StringPtr returns a pointer to s, nil for the empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
