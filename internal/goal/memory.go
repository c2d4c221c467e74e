package goal

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps goals in process memory, grouped by owner.
type MemoryStore struct {
	mu      sync.RWMutex
	byOwner map[string][]Goal
	now     func() time.Time
}

var (
	_ Store  = (*MemoryStore)(nil)
	_ Lister = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byOwner: make(map[string][]Goal),
		now:     time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, newGoal CreateGoal, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byOwner[ownerID] = append(s.byOwner[ownerID], Goal{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Text:      newGoal.Text,
		CreatedAt: s.now().UTC(),
	})
	return nil
}

func (s *MemoryStore) ListByOwner(_ context.Context, ownerID string) ([]Goal, error) {
	s.mu.RLock()
	goals := append([]Goal(nil), s.byOwner[ownerID]...)
	s.mu.RUnlock()

	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].CreatedAt.After(goals[j].CreatedAt)
	})
	return goals, nil
}
