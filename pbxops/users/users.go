package users

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pbxops/server/internal/errors"
)

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// inserts a new user record. A store-level uniqueness violation on username,
// email or provider id is surfaced as ErrConflict.
func (r *Repository) Create(ctx context.Context, n *NewUser) (*User, error) {
	user, err := r.scanOne(r.db.QueryRow(
		ctx,
		queryCreate,
		n.Username,
		n.Email,
		n.PasswordHash,
		n.Provider,
		n.ProviderID,
		n.Company,
	))

	if err != nil {
		if errors.IsUniqueViolation(err) {
			return nil, ErrConflict
		}

		return nil, err
	}

	return user, nil
}

// finds a user by their ID
func (r *Repository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.find(ctx, queryFindByID, id)
}

// finds a user by username
func (r *Repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	return r.find(ctx, queryFindByUsername, username)
}

// finds a user by email, case-insensitively
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.find(ctx, queryFindByEmail, email)
}

// finds a user by OAuth provider subject id
func (r *Repository) FindByProvider(ctx context.Context, provider, providerID string) (*User, error) {
	return r.find(ctx, queryFindByProvider, provider, providerID)
}

func (r *Repository) find(ctx context.Context, query string, args ...any) (*User, error) {
	user, err := r.scanOne(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.IsNoRows(err) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *Repository) scanOne(row rowScanner) (*User, error) {
	var user User

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Provider,
		&user.ProviderID,
		&user.Company,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}
