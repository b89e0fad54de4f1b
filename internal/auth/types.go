package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pbxops/server/pbxops/users"
)

var (
	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords. Callers must not distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrConflict is returned when registration would duplicate a username,
	// email or provider id.
	ErrConflict = errors.New("account already exists")
)

// ValidationError reports malformed registration or sign-in input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErr(reason string) error {
	return &ValidationError{Reason: reason}
}

// Claims are the session token claims embedded in every issued JWT.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// ExternalIdentity is a provider-verified third-party identity assertion.
type ExternalIdentity struct {
	Provider string
	Subject  string
	Email    string
	Name     string
}

// Service implements the credential authenticator, registration and OAuth
// account linking against an injected user store.
type Service struct {
	store       users.Store
	bcryptCost  int
	demoEnabled bool
}

// RegisterParams carries validated-at-the-edge registration input.
type RegisterParams struct {
	Username string
	Email    string
	Password string
	Company  string
}
