// internals/middlewares/auth/verifier.go
package auth

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"sarathi_backend/internals/configs"
)

// Bearer tokens are minted by the external identity provider. We verify
// them against the provider's JWKS (RS256/ES256). Deployments without a
// JWKS URL (local dev, tests) fall back to an HS256 shared secret.

const jwksCacheTTL = 6 * time.Hour

type Verifier struct {
	jwksURL  string
	issuer   string
	audience string
	hsSecret string

	httpClient *http.Client

	mu        sync.RWMutex
	keys      map[string]interface{} // kid → *rsa.PublicKey | *ecdsa.PublicKey
	fetchedAt time.Time
}

func NewVerifierFromEnv() *Verifier {
	return &Verifier{
		jwksURL:    configs.AuthJWKSURL,
		issuer:     configs.AuthIssuer,
		audience:   configs.AuthAudience,
		hsSecret:   configs.AuthHSSecret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

var (
	defaultVerifier     *Verifier
	defaultVerifierOnce sync.Once
)

// DefaultVerifier is built lazily so configs.LoadEnv has run first.
func DefaultVerifier() *Verifier {
	defaultVerifierOnce.Do(func() {
		defaultVerifier = NewVerifierFromEnv()
	})
	return defaultVerifier
}

// Verify parses and verifies the token, then checks exp (with skew),
// issuer and audience. Returns the claims on success.
func (v *Verifier) Verify(tokenString string) (jwt.MapClaims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, fmt.Errorf("empty token")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{
		ValidMethods:         v.validMethods(),
		SkipClaimsValidation: true, // exp checked manually with skew below
	}

	if _, err := parser.ParseWithClaims(tokenString, claims, v.keyFunc); err != nil {
		return nil, fmt.Errorf("token parse: %w", err)
	}

	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		return nil, err
	}
	if v.issuer != "" {
		if iss, _ := claims["iss"].(string); iss != v.issuer {
			return nil, fmt.Errorf("unexpected issuer %q", iss)
		}
	}
	if v.audience != "" && !audienceMatches(claims["aud"], v.audience) {
		return nil, fmt.Errorf("audience mismatch")
	}

	return claims, nil
}

func (v *Verifier) validMethods() []string {
	if v.jwksURL == "" {
		return []string{"HS256"}
	}
	return []string{"RS256", "ES256"}
}

func (v *Verifier) keyFunc(token *jwt.Token) (interface{}, error) {
	if v.jwksURL == "" {
		if v.hsSecret == "" {
			return nil, fmt.Errorf("no verification key configured")
		}
		return []byte(v.hsSecret), nil
	}

	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return nil, fmt.Errorf("token has no kid header")
	}
	return v.keyForKid(kid)
}

// keyForKid serves from the cache, refreshing when the kid is unknown or
// the cache is older than the TTL. A failed refresh falls back to the
// cached set so transient JWKS outages do not log everyone out.
func (v *Verifier) keyForKid(kid string) (interface{}, error) {
	v.mu.RLock()
	key, ok := v.keys[kid]
	fresh := time.Since(v.fetchedAt) < jwksCacheTTL
	v.mu.RUnlock()

	if ok && fresh {
		return key, nil
	}

	if err := v.refreshKeys(); err != nil {
		if ok {
			return key, nil
		}
		return nil, fmt.Errorf("jwks refresh: %w", err)
	}

	v.mu.RLock()
	key, ok = v.keys[kid]
	v.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown signing key %q", kid)
	}
	return key, nil
}

func (v *Verifier) refreshKeys() error {
	resp, err := v.httpClient.Get(v.jwksURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks endpoint returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	keys, err := ParseJWKS(body)
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.keys = keys
	v.fetchedAt = time.Now()
	v.mu.Unlock()
	return nil
}

/* ======== JWKS parsing ======== */

type jwksDoc struct {
	Keys []jwkKey `json:"keys"`
}

type jwkKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	// RSA
	N string `json:"n"`
	E string `json:"e"`
	// EC
	Crv string `json:"crv"`
	X   string `json:"x"`
	Y   string `json:"y"`
}

// ParseJWKS turns a JWKS document into a kid → public key map.
// Unsupported key types are skipped, not fatal.
func ParseJWKS(data []byte) (map[string]interface{}, error) {
	var doc jwksDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("jwks decode: %w", err)
	}
	if len(doc.Keys) == 0 {
		return nil, fmt.Errorf("jwks has no keys")
	}

	out := make(map[string]interface{}, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kid == "" || (k.Use != "" && k.Use != "sig") {
			continue
		}
		switch k.Kty {
		case "RSA":
			pub, err := rsaKeyFromJWK(k)
			if err != nil {
				continue
			}
			out[k.Kid] = pub
		case "EC":
			pub, err := ecdsaKeyFromJWK(k)
			if err != nil {
				continue
			}
			out[k.Kid] = pub
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("jwks has no usable signing keys")
	}
	return out, nil
}

func rsaKeyFromJWK(k jwkKey) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, err
	}
	eb, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, err
	}
	e := 0
	for _, b := range eb {
		e = e<<8 | int(b)
	}
	if e == 0 {
		return nil, fmt.Errorf("zero exponent")
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nb),
		E: e,
	}, nil
}

func ecdsaKeyFromJWK(k jwkKey) (*ecdsa.PublicKey, error) {
	var curve elliptic.Curve
	switch k.Crv {
	case "P-256":
		curve = elliptic.P256()
	case "P-384":
		curve = elliptic.P384()
	case "P-521":
		curve = elliptic.P521()
	default:
		return nil, fmt.Errorf("unsupported curve %q", k.Crv)
	}
	xb, err := base64.RawURLEncoding.DecodeString(k.X)
	if err != nil {
		return nil, err
	}
	yb, err := base64.RawURLEncoding.DecodeString(k.Y)
	if err != nil {
		return nil, err
	}
	return &ecdsa.PublicKey{
		Curve: curve,
		X:     new(big.Int).SetBytes(xb),
		Y:     new(big.Int).SetBytes(yb),
	}, nil
}

/* ======== claim helpers ======== */

func audienceMatches(aud interface{}, want string) bool {
	switch t := aud.(type) {
	case string:
		return t == want
	case []interface{}:
		for _, it := range t {
			if s, ok := it.(string); ok && s == want {
				return true
			}
		}
	case []string:
		for _, s := range t {
			if s == want {
				return true
			}
		}
	}
	return false
}
