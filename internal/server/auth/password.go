// Package auth holds the credential primitives: bcrypt password hashing,
// opaque session token generation and the token expiry rule.
package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jitsunotes/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a salted bcrypt hash of plain. The salt and cost are
// embedded in the result, so two calls on the same input differ.
func HashPassword(plain string, cost int) (string, error) {
	if plain == "" {
		return "", fmt.Errorf("%w: empty password", common.ErrorValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password too long", common.ErrorValidation)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches hash. A malformed hash is
// treated as a mismatch.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
