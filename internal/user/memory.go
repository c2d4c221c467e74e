package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps users in process memory. Emails are unique by exact
// value, like the users_email_key constraint.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]*User
	byEmail map[string]string
	now     func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[string]*User),
		byEmail: make(map[string]string),
		now:     time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, newUser CreateUser, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[newUser.Email]; taken {
		return ErrDuplicateEmail
	}

	u := &User{
		ID:           uuid.NewString(),
		Name:         newUser.Name,
		Email:        newUser.Email,
		PasswordHash: passwordHash,
		CreatedAt:    s.now().UTC(),
	}
	s.byID[u.ID] = u
	s.byEmail[u.Email] = u.ID
	return nil
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return s.copyOf(id), nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.byID[id]; !ok {
		return nil, ErrNotFound
	}
	return s.copyOf(id), nil
}

// copyOf must be called with mu held.
func (s *MemoryStore) copyOf(id string) *User {
	u := *s.byID[id]
	return &u
}
