package goal

import (
	"context"
	"errors"

	"github.com/redmonkez12/goals-api/internal/apperr"
	"github.com/redmonkez12/goals-api/internal/user"
)

// ListGoals returns the goals of an existing user.
type ListGoals struct {
	users OwnerFinder
	goals Lister
}

func NewListGoals(users OwnerFinder, goals Lister) *ListGoals {
	return &ListGoals{users: users, goals: goals}
}

func (uc *ListGoals) Execute(ctx context.Context, userID string) ([]Goal, error) {
	owner, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	if owner == nil {
		return nil, apperr.NotFound("User not found")
	}

	return uc.goals.ListByOwner(ctx, userID)
}
