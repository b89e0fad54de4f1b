package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pbxops/server/pbxops/users"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// deliberately loose: the mail system is the real validator, this only
// catches obvious typos
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// the demo account bypasses the store entirely; only active when
// DEMO_LOGIN_ENABLED is set
const (
	demoUsername = "demo"
	demoPassword = "demo123"
)

// creates an auth service over the given user store
func NewService(store users.Store, bcryptCost int, demoEnabled bool) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	return &Service{
		store:       store,
		bcryptCost:  bcryptCost,
		demoEnabled: demoEnabled,
	}
}

// Authenticate validates a username/password pair against the store. Unknown
// usernames and wrong passwords both return ErrInvalidCredentials so the
// response never reveals whether the account exists.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*users.User, error) {
	if username == "" || password == "" {
		return nil, validationErr("username and password are required")
	}

	if s.demoEnabled && username == demoUsername && password == demoPassword {
		return demoUser(), nil
	}

	user, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, fmt.Errorf("credential lookup: %w", err)
	}

	if user.PasswordHash == "" {
		// OAuth-only account, no local password to compare
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Register validates input, hashes the password and creates the user record.
// The store's uniqueness constraints are authoritative for duplicates.
func (s *Service) Register(ctx context.Context, p RegisterParams) (*users.User, error) {
	if p.Username == "" || p.Email == "" || p.Password == "" {
		return nil, validationErr("username, email and password are required")
	}

	if len(p.Password) < minPasswordLength {
		return nil, validationErr("password must be at least 6 characters")
	}

	if !emailRegex.MatchString(p.Email) {
		return nil, validationErr("email address is not valid")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.store.Create(ctx, &users.NewUser{
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: string(hash),
		Company:      p.Company,
	})

	if err != nil {
		if errors.Is(err, users.ErrConflict) {
			return nil, ErrConflict
		}

		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// LinkExternal finds the user linked to a verified provider identity, or
// creates one with a generated username and no password hash. Two concurrent
// first sign-ins with the same subject race on the provider-id constraint;
// the loser re-reads the winner's row.
func (s *Service) LinkExternal(ctx context.Context, ident ExternalIdentity) (*users.User, error) {
	if ident.Provider == "" || ident.Subject == "" {
		return nil, validationErr("provider identity is incomplete")
	}

	if ident.Email == "" {
		return nil, validationErr("identity provider did not supply an email address")
	}

	user, err := s.store.FindByProvider(ctx, ident.Provider, ident.Subject)
	if err == nil {
		return user, nil
	}

	if !errors.Is(err, users.ErrNotFound) {
		return nil, fmt.Errorf("provider lookup: %w", err)
	}

	// a generated username can still collide, so allow one regeneration
	// before giving up
	for attempt := 0; attempt < 2; attempt++ {
		user, err = s.store.Create(ctx, &users.NewUser{
			Username:   generateUsername(ident.Email),
			Email:      ident.Email,
			Provider:   ident.Provider,
			ProviderID: ident.Subject,
		})

		if err == nil {
			return user, nil
		}

		if !errors.Is(err, users.ErrConflict) {
			return nil, fmt.Errorf("create linked user: %w", err)
		}

		// the conflict may be the concurrent sign-in with the same subject
		if existing, lookupErr := s.store.FindByProvider(ctx, ident.Provider, ident.Subject); lookupErr == nil {
			return existing, nil
		}
	}

	return nil, ErrConflict
}

// derives a unique-ish username from the email local part plus a random
// suffix, e.g. "bob@y.com" -> "bob_1a2b3c4d"
func generateUsername(email string) string {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}

	local = strings.ToLower(local)
	local = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, local)

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	return local + "_" + suffix
}

// returns the synthetic demo account user
func demoUser() *users.User {
	return &users.User{
		ID:        "00000000-0000-0000-0000-0000000000de",
		Username:  demoUsername,
		Email:     "demo@pbxops.example",
		Company:   "Demo Telecom",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
