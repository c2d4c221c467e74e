package goal

import (
	"context"
	"errors"

	"github.com/redmonkez12/goals-api/internal/apperr"
	"github.com/redmonkez12/goals-api/internal/user"
	"github.com/redmonkez12/goals-api/internal/validate"
)

// OwnerFinder resolves the user a goal is being added for.
type OwnerFinder interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

// AddGoal records a new goal for an existing user.
type AddGoal struct {
	users OwnerFinder
	goals Store
}

func NewAddGoal(users OwnerFinder, goals Store) *AddGoal {
	return &AddGoal{users: users, goals: goals}
}

// Execute validates the text, checks the owner exists and stores the goal.
// The owner id is not format-checked here; an unknown id is NotFound.
func (uc *AddGoal) Execute(ctx context.Context, newGoal CreateGoal, userID string) error {
	if err := validate.GoalText(newGoal.Text); err != nil {
		return err
	}

	owner, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return apperr.NotFound("User not found")
		}
		return err
	}
	if owner == nil {
		return apperr.NotFound("User not found")
	}

	return uc.goals.Create(ctx, newGoal, userID)
}
