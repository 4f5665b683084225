package service

import (
	"errors"
	"strings"
)

var ErrEmptyUsername = errors.New("username is required")
var ErrInvalidStarAmount = errors.New("invalid star amount")

// validateRequest normalizes the username (trims whitespace, strips a single
// leading @) and checks the business constraints. It has no side effects.
func validateRequest(username string, starAmount int) (string, error) {
	normalized := strings.TrimPrefix(strings.TrimSpace(username), "@")
	if normalized == "" {
		return "", ErrEmptyUsername
	}
	if starAmount <= 0 {
		return "", ErrInvalidStarAmount
	}

	return normalized, nil
}
