package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/pbxops/server/pbxops/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MinCost keeps the hashing fast in tests
func newTestService(demoEnabled bool) (*Service, *users.MemStore) {
	store := users.NewMemStore()
	return NewService(store, bcrypt.MinCost, demoEnabled), store
}

func register(t *testing.T, svc *Service, username, email, password string) *users.User {
	t.Helper()

	user, err := svc.Register(context.Background(), RegisterParams{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)

	return user
}

func TestRegister_Success(t *testing.T) {
	svc, store := newTestService(false)

	user := register(t, svc, "alice", "alice@example.com", "secret1")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, 1, store.Count())

	// the stored hash must verify against the original password
	stored, err := store.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegister_ValidationFailures(t *testing.T) {
	svc, store := newTestService(false)

	testCases := []struct {
		name   string
		params RegisterParams
	}{
		{"missing username", RegisterParams{Email: "a@b.com", Password: "secret1"}},
		{"missing email", RegisterParams{Username: "alice", Password: "secret1"}},
		{"missing password", RegisterParams{Username: "alice", Email: "a@b.com"}},
		{"short password", RegisterParams{Username: "alice", Email: "a@b.com", Password: "12345"}},
		{"bad email", RegisterParams{Username: "alice", Email: "not-an-email", Password: "secret1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.params)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}

	assert.Equal(t, 0, store.Count(), "no user should be created on validation failure")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, store := newTestService(false)

	register(t, svc, "alice", "alice@example.com", "secret1")

	_, err := svc.Register(context.Background(), RegisterParams{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, store.Count(), "duplicate registration must not create a second user")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(false)

	register(t, svc, "alice", "alice@example.com", "secret1")

	_, err := svc.Register(context.Background(), RegisterParams{
		Username: "alice2",
		Email:    "Alice@Example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrConflict, "email uniqueness is case-insensitive")
}

func TestAuthenticate_Success(t *testing.T) {
	svc, _ := newTestService(false)

	register(t, svc, "alice", "alice@example.com", "secret1")

	user, err := svc.Authenticate(context.Background(), "alice", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthenticate_IndistinguishableFailures(t *testing.T) {
	svc, _ := newTestService(false)

	register(t, svc, "alice", "alice@example.com", "secret1")

	// wrong password and unknown username must produce the same error
	_, wrongPassErr := svc.Authenticate(context.Background(), "alice", "wrong-pass")
	_, unknownUserErr := svc.Authenticate(context.Background(), "nobody", "secret1")

	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUserErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr.Error(), unknownUserErr.Error())
}

func TestAuthenticate_OAuthOnlyAccount(t *testing.T) {
	svc, _ := newTestService(false)

	linked, err := svc.LinkExternal(context.Background(), ExternalIdentity{
		Provider: "google",
		Subject:  "sub-1",
		Email:    "bob@example.com",
	})
	require.NoError(t, err)

	// no password hash exists, so any password must fail
	_, err = svc.Authenticate(context.Background(), linked.Username, "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_DemoAccount(t *testing.T) {
	svc, store := newTestService(true)

	user, err := svc.Authenticate(context.Background(), "demo", "demo123")

	require.NoError(t, err)
	assert.Equal(t, "demo", user.Username)
	assert.Equal(t, 0, store.Count(), "demo account never touches the store")

	_, err = svc.Authenticate(context.Background(), "demo", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_DemoAccountDisabled(t *testing.T) {
	svc, _ := newTestService(false)

	_, err := svc.Authenticate(context.Background(), "demo", "demo123")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLinkExternal_CreatesAndReuses(t *testing.T) {
	svc, store := newTestService(false)

	ident := ExternalIdentity{
		Provider: "google",
		Subject:  "sub-42",
		Email:    "Bob.Smith@example.com",
	}

	first, err := svc.LinkExternal(context.Background(), ident)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.Username, "bob-smith_"), "username %q should derive from the email local part", first.Username)
	assert.Empty(t, first.PasswordHash)

	// a second sign-in with the same subject reuses the account
	second, err := svc.LinkExternal(context.Background(), ident)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, store.Count())
}

func TestLinkExternal_MissingEmail(t *testing.T) {
	svc, _ := newTestService(false)

	_, err := svc.LinkExternal(context.Background(), ExternalIdentity{
		Provider: "microsoft",
		Subject:  "sub-1",
	})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestGenerateUsername(t *testing.T) {
	name := generateUsername("Alice.O'Neil+tag@example.com")

	parts := strings.Split(name, "_")
	require.Len(t, parts, 2)
	assert.Equal(t, "alice-o-neil-tag", parts[0])
	assert.Len(t, parts[1], 8)

	// suffixes are random, so two calls differ
	assert.NotEqual(t, name, generateUsername("Alice.O'Neil+tag@example.com"))
}
