package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	"jobboard_backend/internal/shared/apperror"
)

const (
	// minPasswordLength is the minimum number of characters in a password.
	minPasswordLength = 8

	tempPasswordLength   = 12
	tempPasswordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// dummyHash is compared against when the user does not exist so both
// login paths cost one bcrypt comparison.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// validatePassword checks whether the password meets security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperror.Validation(fmt.Sprintf("password must be at least %d characters long", minPasswordLength))
	}
	return nil
}

// HashPassword returns the bcrypt hash used for every stored credential,
// including accounts created by the maintenance CLI.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// generateTempPassword returns a random password without look-alike characters.
func generateTempPassword() (string, error) {
	max := big.NewInt(int64(len(tempPasswordAlphabet)))
	out := make([]byte, tempPasswordLength)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = tempPasswordAlphabet[n.Int64()]
	}
	return string(out), nil
}
