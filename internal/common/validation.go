package common

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxFreetLength is the raw character limit for freet and reply content.
	MaxFreetLength = 140
	// MaxCircleNameLength is the raw character limit for circle names.
	MaxCircleNameLength = 50
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 50 {
		return fmt.Errorf("username must be between 3 and 50 characters: %w", ErrInvalidInput)
	}

	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, and underscores: %w", ErrInvalidInput)
	}

	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long: %w", ErrInvalidInput)
	}

	if len(password) > 100 {
		return fmt.Errorf("password must be no more than 100 characters: %w", ErrInvalidInput)
	}

	return nil
}

// ValidateFreetContent rejects whitespace-only content and content over the
// raw 140-character limit. Trimming is only applied to the emptiness check,
// not to the stored content.
func ValidateFreetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("freet content must be at least one character long: %w", ErrInvalidInput)
	}

	if len(content) > MaxFreetLength {
		return fmt.Errorf("freet content must be no more than %d characters: %w", MaxFreetLength, ErrInvalidInput)
	}

	return nil
}

// ValidateCircleName applies the same trim/length rules as freet content but
// with the 50-character circle limit.
func ValidateCircleName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("circle name must be at least one character long: %w", ErrInvalidInput)
	}

	if len(name) > MaxCircleNameLength {
		return fmt.Errorf("circle name must be no more than %d characters: %w", MaxCircleNameLength, ErrInvalidInput)
	}

	return nil
}
