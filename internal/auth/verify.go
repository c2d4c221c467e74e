package auth

import (
	"context"
	"errors"

	"github.com/redmonkez12/goals-api/internal/apperr"
	"github.com/redmonkez12/goals-api/internal/user"
	"github.com/redmonkez12/goals-api/internal/validate"
)

// VerifyUser confirms that an authenticated id still names a stored user.
type VerifyUser struct {
	users UserByIDFinder
}

func NewVerifyUser(users UserByIDFinder) *VerifyUser {
	return &VerifyUser{users: users}
}

func (uc *VerifyUser) Execute(ctx context.Context, userID string) error {
	if err := validate.UserID(userID); err != nil {
		return err
	}

	found, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return apperr.NotFound("User Not Found by authUserId")
		}
		return err
	}
	if found == nil {
		return apperr.NotFound("User Not Found by authUserId")
	}
	return nil
}
