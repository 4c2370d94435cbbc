package password

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost

	bcryptPrefix = "$2"
)

var (
	ErrInvalidPassword   = errors.New("invalid password")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrHashingPassword   = errors.New("error hashing password")
	ErrVerifyingPassword = errors.New("error verifying password")
)

// Hash generates a bcrypt hash of the password
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(bytes), nil
}

// IsHashed reports whether the stored credential is a bcrypt hash.
func IsHashed(stored string) bool {
	return strings.HasPrefix(strings.TrimSpace(stored), bcryptPrefix)
}

// Verify checks if the provided password matches the hash
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}

		return fmt.Errorf("%w: %w", ErrVerifyingPassword, err)
	}

	return nil
}

// VerifyStored compares a password against a stored credential. Bcrypt hashes
// are always compared as hashes; anything else is a legacy plaintext value and
// only matches when allowPlaintext is set. The boolean result reports whether
// the legacy path was used.
func VerifyStored(password, stored string, allowPlaintext bool) (legacy bool, err error) {
	stored = strings.TrimSpace(stored)

	if IsHashed(stored) {
		return false, Verify(password, stored)
	}

	if !allowPlaintext || password == "" || stored == "" {
		return true, ErrInvalidPassword
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(stored)) != 1 {
		return true, ErrInvalidPassword
	}

	return true, nil
}
