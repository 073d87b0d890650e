package common

import (
	"regexp"
	"strings"

	"pinboard/internal/apperr"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.@+\-]+$`)
)

func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 150 {
		return apperr.InvalidInput("username must be between 3 and 150 characters")
	}

	if !usernameRegex.MatchString(username) {
		return apperr.InvalidInput("username can only contain letters, digits and @.+-_")
	}

	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 8 {
		return apperr.InvalidInput("password must be at least 8 characters long")
	}

	// bcrypt ignores everything past 72 bytes
	if len(password) > 72 {
		return apperr.InvalidInput("password must be at most 72 characters long")
	}

	return nil
}

func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return apperr.InvalidInput("invalid email format")
	}

	return nil
}
