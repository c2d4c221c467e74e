package goal

import "context"

// Store persists goals on behalf of an owner.
type Store interface {
	Create(ctx context.Context, newGoal CreateGoal, ownerID string) error
}

// Lister reads back an owner's goals, newest first.
type Lister interface {
	ListByOwner(ctx context.Context, ownerID string) ([]Goal, error)
}
