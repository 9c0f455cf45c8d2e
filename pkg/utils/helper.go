package utils

import "strconv"

// ParseInt converts string to int with default value, rejecting values below min
func ParseInt(value string, defaultValue, min int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < min {
		return defaultValue
	}

	return result
}

// ParsePage parses a zero-based page index query parameter
func ParsePage(value string) int {
	return ParseInt(value, 0, 0)
}

// ParseSize parses a page size query parameter, clamping to max
func ParseSize(value string, defaultValue, max int) int {
	size := ParseInt(value, defaultValue, 1)
	if size > max {
		return max
	}
	return size
}
