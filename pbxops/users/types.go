package users

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrConflict is returned when a create would violate a uniqueness
	// constraint on username, email or provider id.
	ErrConflict = errors.New("user already exists")
)

// User is an identity record. PasswordHash is empty for OAuth-only accounts
// and is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Provider     string    `json:"provider,omitempty"`
	ProviderID   string    `json:"-"`
	Company      string    `json:"company,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser contains the fields needed to create a user record. The store
// assigns the id and creation timestamp.
type NewUser struct {
	Username     string
	Email        string
	PasswordHash string
	Provider     string
	ProviderID   string
	Company      string
}

// Store is the credential store contract consumed by the auth service.
// Postgres backs it in production; MemStore backs it in tests.
type Store interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByProvider(ctx context.Context, provider, providerID string) (*User, error)
	Create(ctx context.Context, n *NewUser) (*User, error)
}

// Repository handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

var _ Store = (*Repository)(nil)
