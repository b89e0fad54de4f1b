package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pbxops/server/pbxops/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-testing"

func testUser() *users.User {
	return &users.User{
		ID:       "user-123",
		Username: "alice",
		Email:    "alice@example.com",
	}
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	_, err := NewTokenManager("")

	assert.Error(t, err)
}

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	tm, err := NewTokenManager(testSecret)
	require.NoError(t, err)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3, len(strings.Split(token, ".")), "JWT should have 3 parts")

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm, err := NewTokenManager(testSecret)
	require.NoError(t, err)

	// create an expired token signed with the right secret
	claims := Claims{
		UserID:   "user-123",
		Username: "alice",
		Email:    "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Validate(tokenString)
	assert.Error(t, err, "expired token should be rejected")
}

func TestTokenManager_TamperedToken(t *testing.T) {
	tm, err := NewTokenManager(testSecret)
	require.NoError(t, err)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	tampered := token[:len(token)-5] + "XXXXX"

	_, err = tm.Validate(tampered)
	assert.Error(t, err, "tampered token should be rejected")
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm, err := NewTokenManager(testSecret)
	require.NoError(t, err)

	other, err := NewTokenManager("different-secret-key")
	require.NoError(t, err)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err, "token signed with different secret should be rejected")
}

func TestTokenManager_AlgorithmConfusionAttack(t *testing.T) {
	tm, err := NewTokenManager(testSecret)
	require.NoError(t, err)

	claims := Claims{
		UserID: "attacker",
		Email:  "attacker@evil.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType) //nolint:errcheck // test code

	_, err = tm.Validate(tokenString)
	assert.Error(t, err, "token with 'none' algorithm should be rejected")
}

func TestTokenManager_TokenExpiration(t *testing.T) {
	tm, err := NewTokenManager(testSecret)
	require.NoError(t, err)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)

	// expiration should be approximately 7 days from now
	expectedExpiry := time.Now().Add(TokenTTL)
	timeDiff := claims.ExpiresAt.Time.Sub(expectedExpiry).Abs()

	assert.Less(t, timeDiff, 5*time.Second)
}

func TestFromAuthHeader(t *testing.T) {
	tm, err := NewTokenManager(testSecret)
	require.NoError(t, err)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	claims, ok := tm.FromAuthHeader("Bearer " + token)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims.UserID)

	badHeaders := []string{
		"",
		token,
		"Bearer",
		"Basic " + token,
		"Bearer not.a.jwt",
		"Bearer " + token + " extra",
	}

	for _, header := range badHeaders {
		_, ok := tm.FromAuthHeader(header)
		assert.False(t, ok, "header %q should not authenticate", header)
	}
}
