package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStore implements Store with in-memory storage. It enforces the same
// uniqueness constraints as the Postgres schema and exists so the auth
// service can be tested without a database.
type MemStore struct {
	mu    sync.RWMutex
	users map[string]*User // keyed by id
}

var _ Store = (*MemStore)(nil)

// creates a new in-memory user store
func NewMemStore() *MemStore {
	return &MemStore{users: make(map[string]*User)}
}

func (s *MemStore) Create(_ context.Context, n *NewUser) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == n.Username || strings.EqualFold(u.Email, n.Email) {
			return nil, ErrConflict
		}

		if n.Provider != "" && u.Provider == n.Provider && u.ProviderID == n.ProviderID {
			return nil, ErrConflict
		}
	}

	user := &User{
		ID:           uuid.NewString(),
		Username:     n.Username,
		Email:        n.Email,
		PasswordHash: n.PasswordHash,
		Provider:     n.Provider,
		ProviderID:   n.ProviderID,
		Company:      n.Company,
		CreatedAt:    time.Now().UTC(),
	}

	s.users[user.ID] = user

	return user, nil
}

func (s *MemStore) FindByID(_ context.Context, id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[id]; ok {
		return copyUser(u), nil
	}

	return nil, ErrNotFound
}

func (s *MemStore) FindByUsername(_ context.Context, username string) (*User, error) {
	return s.findBy(func(u *User) bool { return u.Username == username })
}

func (s *MemStore) FindByEmail(_ context.Context, email string) (*User, error) {
	return s.findBy(func(u *User) bool { return strings.EqualFold(u.Email, email) })
}

func (s *MemStore) FindByProvider(_ context.Context, provider, providerID string) (*User, error) {
	return s.findBy(func(u *User) bool {
		return u.Provider == provider && u.ProviderID == providerID
	})
}

// returns the number of stored users
func (s *MemStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users)
}

func (s *MemStore) findBy(match func(*User) bool) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if match(u) {
			return copyUser(u), nil
		}
	}

	return nil, ErrNotFound
}

func copyUser(u *User) *User {
	clone := *u
	return &clone
}
