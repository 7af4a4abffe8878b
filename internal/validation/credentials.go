package validation

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 4
)

// Validation errors. Messages are shown to the user verbatim.
var (
	ErrEmptyCredentials = errors.New("username and password cannot be empty")
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort = errors.New("password must be at least 4 characters")
)

// ValidateCredentialsPresent проверяет, что оба поля заполнены.
// Строка из одних пробелов считается пустой.
func ValidateCredentialsPresent(username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return ErrEmptyCredentials
	}
	return nil
}

// ValidateRegistration applies the full rule set used when creating an account.
// Lengths are counted in characters, not bytes.
func ValidateRegistration(username, password string) error {
	if err := ValidateCredentialsPresent(username, password); err != nil {
		return err
	}

	if utf8.RuneCountInString(username) < MinUsernameLen {
		return ErrUsernameTooShort
	}

	if utf8.RuneCountInString(password) < MinPasswordLen {
		return ErrPasswordTooShort
	}

	return nil
}
