package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_CreateAndFind(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	created, err := store.Create(ctx, &NewUser{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Company:      "Acme Telecom",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := store.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byEmail, err := store.FindByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID, "email lookup is case-insensitive")
}

func TestMemStore_NotFound(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	_, err := store.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.FindByUsername(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.FindByProvider(ctx, "google", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStore_UniquenessConstraints(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	_, err := store.Create(ctx, &NewUser{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = store.Create(ctx, &NewUser{Username: "alice", Email: "other@example.com"})
	assert.ErrorIs(t, err, ErrConflict, "duplicate username")

	_, err = store.Create(ctx, &NewUser{Username: "alice2", Email: "Alice@Example.com"})
	assert.ErrorIs(t, err, ErrConflict, "duplicate email, case-insensitive")

	_, err = store.Create(ctx, &NewUser{
		Username: "bob", Email: "bob@example.com",
		Provider: "google", ProviderID: "sub-1",
	})
	require.NoError(t, err)

	_, err = store.Create(ctx, &NewUser{
		Username: "bob2", Email: "bob2@example.com",
		Provider: "google", ProviderID: "sub-1",
	})
	assert.ErrorIs(t, err, ErrConflict, "duplicate provider identity")

	assert.Equal(t, 2, store.Count())
}

func TestMemStore_FindByProvider(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	created, err := store.Create(ctx, &NewUser{
		Username: "bob", Email: "bob@example.com",
		Provider: "microsoft", ProviderID: "ms-1",
	})
	require.NoError(t, err)

	found, err := store.FindByProvider(ctx, "microsoft", "ms-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// same subject under a different provider is a different identity
	_, err = store.FindByProvider(ctx, "google", "ms-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStore_ReturnsCopies(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	created, err := store.Create(ctx, &NewUser{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	found, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)

	found.Username = "mutated"

	again, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", again.Username, "mutating a returned user must not affect the store")
}
