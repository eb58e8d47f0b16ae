package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the informational content of an access token. Nothing here
// is verified; the server remains the authority on token validity.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
	IssuedAt  time.Time
	Raw       jwt.MapClaims
}

// ParseClaims decodes the claims of a JWT without verifying its signature.
func ParseClaims(token string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}

	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return nil, fmt.Errorf("decoding token claims: %w", err)
	}

	result := &TokenClaims{Raw: claims}

	if sub, err := claims.GetSubject(); err == nil {
		result.Subject = sub
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		result.ExpiresAt = exp.Time
	}

	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		result.IssuedAt = iat.Time
	}

	return result, nil
}

// Expired reports whether the token's exp claim lies before now. Tokens
// without an exp claim never report expired.
func (c *TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
