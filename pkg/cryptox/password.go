package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the fixed bcrypt work factor. Existing deployments carry
// hashes generated at this cost, so changing it only affects new hashes.
const HashCost = 10

// ErrPasswordMismatch reports that a password does not match its hash.
// Any other error from VerifyPassword means the stored hash itself is
// unusable (truncated, corrupted, not bcrypt) and must not be treated
// as a simple wrong password.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword generates a salted bcrypt hash of the given password.
// The salt and cost are embedded in the returned string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a bcrypt hash.
// It returns nil on match, ErrPasswordMismatch when the password is
// wrong, and the underlying bcrypt error for a malformed hash.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}
