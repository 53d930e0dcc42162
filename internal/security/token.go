package security

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"banner-rotator/internal/core/port"
)

// CapManageOptions is required for every admin endpoint.
const CapManageOptions = "manage_options"

// Claims are carried by admin bearer tokens.
type Claims struct {
	Capabilities []string `json:"caps"`
	jwt.RegisteredClaims
}

// Can reports whether the claims grant capability.
func (c *Claims) Can(capability string) bool {
	return slices.Contains(c.Capabilities, capability)
}

// Tokens signs and parses HS256 admin tokens.
type Tokens struct {
	secret []byte
	now    func() time.Time
}

// NewTokens returns a token service using secret.
func NewTokens(secret []byte) *Tokens {
	return &Tokens{secret: secret, now: time.Now}
}

// Issue signs a token for subject with the given capabilities.
func (t *Tokens) Issue(subject string, caps []string, ttl time.Duration) (string, error) {
	now := t.now()
	claims := Claims{
		Capabilities: caps,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse validates a raw token and returns its claims. Malformed, expired or
// foreign tokens yield port.ErrUnauthorized.
func (t *Tokens) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", port.ErrUnauthorized)
	}
	return claims, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errors.New("missing bearer token")
	}
	return strings.TrimSpace(token), nil
}
