package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseID parses a positional numeric id, with a helpful message for common mistakes.
func parseID(arg, entityType string) (int, error) {
	arg = strings.TrimSpace(arg)
	trimmed := strings.TrimPrefix(arg, "#")

	id, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id '%s'. Expected a number, e.g. 12", entityType, arg)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s id '%s'. IDs start at 1", entityType, arg)
	}
	return id, nil
}

// parseRating parses a 1..5 rating argument. Range checks happen in the service.
func parseRating(arg string) (int, error) {
	rating, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid rating '%s'. Expected a whole number from 1 to 5", arg)
	}
	return rating, nil
}
