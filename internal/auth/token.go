package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pbxops/server/pbxops/users"
)

// session tokens are valid for a fixed window from issuance and are never
// revoked server-side before expiry
const TokenTTL = 7 * 24 * time.Hour

// TokenManager issues and verifies session tokens with a server-held secret.
// The secret comes from configuration; there is no fallback.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// creates a token manager with the configured signing secret
func NewTokenManager(secret string) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret must not be empty")
	}

	return &TokenManager{secret: []byte(secret), ttl: TokenTTL}, nil
}

// creates a signed session token for the user
func (m *TokenManager) Generate(user *users.User) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(m.secret)
}

// verifies a session token and returns its claims
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return m.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// extracts and verifies the bearer token from an Authorization header value.
// A missing header, a malformed header, a bad signature and an expired token
// all yield the same unauthenticated state; the second return reports whether
// the caller holds a valid session.
func (m *TokenManager) FromAuthHeader(header string) (*Claims, bool) {
	if header == "" {
		return nil, false
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := m.Validate(parts[1])
	if err != nil {
		return nil, false
	}

	return claims, true
}
