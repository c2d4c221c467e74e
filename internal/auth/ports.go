package auth

import (
	"context"

	"github.com/redmonkez12/goals-api/internal/user"
)

// PasswordService hashes plaintext passwords and checks them against a
// stored hash. Matches reports a wrong password as (false, nil); an error
// means the hash itself could not be checked.
type PasswordService interface {
	Hash(plaintext string) (string, error)
	Matches(plaintext, hash string) (bool, error)
}

// TokenService issues an opaque bearer token for a signed-in user.
type TokenService interface {
	Issue(userID string) (string, error)
}

// UserByEmailFinder looks a user up by email. Absence is user.ErrNotFound.
type UserByEmailFinder interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

// UserByIDFinder looks a user up by id. Absence is user.ErrNotFound.
type UserByIDFinder interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

// UserCreator persists a new user with an already hashed password.
type UserCreator interface {
	Create(ctx context.Context, newUser user.CreateUser, passwordHash string) error
}

// SignUpStore is what sign-up needs from user storage.
type SignUpStore interface {
	UserByEmailFinder
	UserCreator
}
