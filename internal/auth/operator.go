package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	svcErr "github.com/oggyb/campus-connect/internal/errors"
)

// CheckOperatorToken compares token with the configured operator token in
// constant time. An empty configured token rejects everything.
func CheckOperatorToken(expected, token string) bool {
	if expected == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(token)) == 1
}

// CheckOperatorPassword verifies the confirming credential for destructive
// operator actions against a bcrypt hash.
func CheckOperatorPassword(hash, password string) error {
	if hash == "" || password == "" {
		return svcErr.ErrForbidden.WithMsg("operator confirmation required")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return svcErr.ErrForbidden.WithMsg("operator confirmation rejected")
	}
	return nil
}

// HashOperatorPassword produces the value expected in OPERATOR_PASSWORD_HASH.
func HashOperatorPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}
