package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hance08/cybank/internal/constants"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z]+$`)
	fullNamePattern = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if strings.Contains(username, " ") {
		return fmt.Errorf("username cannot contain spaces")
	}
	if len(username) < constants.MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", constants.MinUsernameLen)
	}
	if len(username) > constants.MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", constants.MaxUsernameLen)
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters")
	}
	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if strings.Contains(password, " ") {
		return fmt.Errorf("password cannot contain spaces")
	}
	if len(password) < constants.MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", constants.MinPasswordLen)
	}
	return nil
}

func ValidateFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)

	if fullName == "" {
		return fmt.Errorf("full name is required")
	}
	if utf8.RuneCountInString(fullName) < constants.MinNameLen {
		return fmt.Errorf("full name must be at least %d characters long", constants.MinNameLen)
	}
	if utf8.RuneCountInString(fullName) > constants.MaxNameLen {
		return fmt.Errorf("full name must not exceed %d characters", constants.MaxNameLen)
	}
	if !fullNamePattern.MatchString(fullName) {
		return fmt.Errorf("full name can only contain letters, spaces, hyphens, and apostrophes")
	}
	return nil
}

// ValidateEmail accepts an empty email; a non-empty one must look like an address.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}
