// internals/middlewares/auth/claim_utils.go
package auth

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

/* ======== Claim extractors ======== */

// extractSubject reads the identity-provider subject ("sub").
func extractSubject(claims jwt.MapClaims) (string, error) {
	raw, ok := claims["sub"]
	if !ok {
		return "", fmt.Errorf("no sub claim")
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("invalid sub type")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty sub claim")
	}
	return s, nil
}

// ProfileClaims are the optional profile fields mirrored on sync.
type ProfileClaims struct {
	Email   string
	Name    string
	Picture string
}

// ExtractProfile pulls the profile claims the provider may include.
// All fields are optional.
func ExtractProfile(claims jwt.MapClaims) ProfileClaims {
	p := ProfileClaims{}
	if v, ok := claims["email"].(string); ok {
		p.Email = strings.TrimSpace(v)
	}
	if v, ok := claims["name"].(string); ok {
		p.Name = strings.TrimSpace(v)
	}
	if v, ok := claims["picture"].(string); ok {
		p.Picture = strings.TrimSpace(v)
	}
	return p
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token has no exp")
	}

	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return fmt.Errorf("invalid exp format")
		}
		expUnix = n
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exp format")
		}
		expUnix = n
	default:
		return fmt.Errorf("invalid exp type")
	}

	now := time.Now().UTC()
	expTime := time.Unix(expUnix, 0).UTC()
	if now.After(expTime.Add(skew)) {
		return fmt.Errorf("token expired at %v", expTime)
	}
	return nil
}
