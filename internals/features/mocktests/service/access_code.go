// file: internals/features/mocktests/service/access_code.go
package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashAccessCode bcrypt-hashes a private test's access code for storage.
func HashAccessCode(code string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(code)), bcrypt.DefaultCost)
}

// VerifyAccessCode checks a presented code against the stored hash.
// Anything that is not a bcrypt hash fails closed.
func VerifyAccessCode(stored []byte, code string) bool {
	code = strings.TrimSpace(code)
	if len(stored) == 0 || code == "" {
		return false
	}
	s := string(stored)
	if strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$") {
		return bcrypt.CompareHashAndPassword(stored, []byte(code)) == nil
	}
	return false
}
