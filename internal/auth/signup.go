package auth

import (
	"context"
	"errors"

	"github.com/redmonkez12/goals-api/internal/apperr"
	"github.com/redmonkez12/goals-api/internal/user"
	"github.com/redmonkez12/goals-api/internal/validate"
)

// SignUpUser registers a new account.
type SignUpUser struct {
	users     SignUpStore
	passwords PasswordService
}

func NewSignUpUser(users SignUpStore, passwords PasswordService) *SignUpUser {
	return &SignUpUser{users: users, passwords: passwords}
}

// Execute validates the input, rejects a taken email, hashes the password
// and stores the user. A uniqueness violation raised by the store (a
// concurrent sign-up won the race) is reported the same as a taken email.
func (uc *SignUpUser) Execute(ctx context.Context, newUser user.CreateUser) error {
	if err := validateSignUp(newUser); err != nil {
		return err
	}

	existing, err := uc.users.FindByEmail(ctx, newUser.Email)
	switch {
	case err == nil && existing != nil:
		return apperr.EmailAlreadyTaken()
	case err != nil && !errors.Is(err, user.ErrNotFound):
		return err
	}

	hash, err := uc.passwords.Hash(newUser.Password)
	if err != nil {
		return err
	}

	if err := uc.users.Create(ctx, newUser, hash); err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return apperr.EmailAlreadyTaken()
		}
		return err
	}
	return nil
}

func validateSignUp(u user.CreateUser) error {
	if err := validate.Name(u.Name); err != nil {
		return err
	}
	if err := validate.Email(u.Email); err != nil {
		return err
	}
	return validate.Password(u.Password)
}
