package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/goals-api/internal/database"
)

// Repository handles goal persistence in Postgres
type Repository struct {
	db *bun.DB
}

var (
	_ Store  = (*Repository)(nil)
	_ Lister = (*Repository)(nil)
)

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a goal owned by ownerID
func (r *Repository) Create(ctx context.Context, newGoal CreateGoal, ownerID string) error {
	dbGoal := &database.Goal{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Text:    newGoal.Text,
	}

	_, err := r.db.NewInsert().
		Model(dbGoal).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}

	return nil
}

// ListByOwner returns the owner's goals, newest first
func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]Goal, error) {
	var rows []database.Goal
	err := r.db.NewSelect().
		Model(&rows).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	goals := make([]Goal, 0, len(rows))
	for i := range rows {
		goals = append(goals, mapDBGoalToModel(&rows[i]))
	}
	return goals, nil
}

func mapDBGoalToModel(dbg *database.Goal) Goal {
	return Goal{
		ID:        dbg.ID,
		OwnerID:   dbg.OwnerID,
		Text:      dbg.Text,
		CreatedAt: dbg.CreatedAt,
	}
}
