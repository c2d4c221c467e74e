package auth

import (
	"context"
	"errors"

	"github.com/redmonkez12/goals-api/internal/apperr"
	"github.com/redmonkez12/goals-api/internal/user"
	"github.com/redmonkez12/goals-api/internal/validate"
)

// SignInUser exchanges credentials for a token.
type SignInUser struct {
	users     UserByEmailFinder
	passwords PasswordService
	tokens    TokenService
}

func NewSignInUser(users UserByEmailFinder, passwords PasswordService, tokens TokenService) *SignInUser {
	return &SignInUser{users: users, passwords: passwords, tokens: tokens}
}

func (uc *SignInUser) Execute(ctx context.Context, creds SignInCredentials) (*SignedUser, error) {
	if err := validate.Email(creds.Email); err != nil {
		return nil, err
	}
	if err := validate.Password(creds.Password); err != nil {
		return nil, err
	}

	found, err := uc.users.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperr.NotFound("User not found with the e-mail passed")
		}
		return nil, err
	}
	if found == nil {
		return nil, apperr.NotFound("User not found with the e-mail passed")
	}

	ok, err := uc.passwords.Matches(creds.Password, found.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.PasswordNotMatch()
	}

	token, err := uc.tokens.Issue(found.ID)
	if err != nil {
		return nil, err
	}

	return &SignedUser{
		ID:    found.ID,
		Name:  found.Name,
		Email: found.Email,
		Token: token,
	}, nil
}
