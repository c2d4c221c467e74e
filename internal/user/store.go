package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// Store persists users. Lookups report absence with ErrNotFound and Create
// reports a taken email with ErrDuplicateEmail.
type Store interface {
	Create(ctx context.Context, newUser CreateUser, passwordHash string) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}
