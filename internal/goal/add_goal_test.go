package goal

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/goals-api/internal/apperr"
	"github.com/redmonkez12/goals-api/internal/user"
)

type mockOwnerFinder struct {
	mock.Mock
}

func (m *mockOwnerFinder) FindByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*user.User), args.Error(1)
}

type mockGoalStore struct {
	mock.Mock
}

func (m *mockGoalStore) Create(ctx context.Context, newGoal CreateGoal, ownerID string) error {
	args := m.Called(ctx, newGoal, ownerID)
	return args.Error(0)
}

func TestAddGoal_Success(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.NewString()
	users := new(mockOwnerFinder)
	goals := new(mockGoalStore)

	users.On("FindByID", ctx, ownerID).
		Return(&user.User{ID: ownerID, Name: "John Doe", Email: "john@doe.com"}, nil).Once()
	goals.On("Create", ctx, CreateGoal{Text: "NEW GOAL TEXT"}, ownerID).Return(nil).Once()

	err := NewAddGoal(users, goals).Execute(ctx, CreateGoal{Text: "NEW GOAL TEXT"}, ownerID)

	require.NoError(t, err)
	users.AssertExpectations(t)
	goals.AssertExpectations(t)
	goals.AssertNumberOfCalls(t, "Create", 1)
}

func TestAddGoal_InvalidText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantMsg string
	}{
		{name: "empty", text: "", wantMsg: "text required"},
		{name: "blank", text: "   ", wantMsg: "text required"},
		{name: "too short", text: "00", wantMsg: "text length out of range"},
		{name: "too long", text: strings.Repeat("0", 121), wantMsg: "text length out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mockOwnerFinder)
			goals := new(mockGoalStore)

			err := NewAddGoal(users, goals).Execute(context.Background(), CreateGoal{Text: tt.text}, uuid.NewString())

			require.Error(t, err)
			assert.True(t, errors.Is(err, apperr.ErrInvalidGoal))
			assert.Equal(t, tt.wantMsg, err.Error())
			users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
			goals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAddGoal_OwnerNotFound(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.NewString()
	users := new(mockOwnerFinder)
	goals := new(mockGoalStore)

	users.On("FindByID", ctx, ownerID).Return((*user.User)(nil), user.ErrNotFound).Once()

	err := NewAddGoal(users, goals).Execute(ctx, CreateGoal{Text: "NEW GOAL TEXT"}, ownerID)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Equal(t, "User not found", err.Error())
	goals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddGoal_CollaboratorFailuresPassThrough(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.NewString()

	t.Run("owner lookup", func(t *testing.T) {
		boom := errors.New("db down")
		users := new(mockOwnerFinder)
		goals := new(mockGoalStore)
		users.On("FindByID", ctx, ownerID).Return((*user.User)(nil), boom).Once()

		err := NewAddGoal(users, goals).Execute(ctx, CreateGoal{Text: "NEW GOAL TEXT"}, ownerID)

		assert.Same(t, boom, err)
		_, classified := apperr.KindOf(err)
		assert.False(t, classified)
		goals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("goal write", func(t *testing.T) {
		boom := errors.New("disk full")
		users := new(mockOwnerFinder)
		goals := new(mockGoalStore)
		users.On("FindByID", ctx, ownerID).Return(&user.User{ID: ownerID}, nil).Once()
		goals.On("Create", ctx, CreateGoal{Text: "NEW GOAL TEXT"}, ownerID).Return(boom).Once()

		err := NewAddGoal(users, goals).Execute(ctx, CreateGoal{Text: "NEW GOAL TEXT"}, ownerID)

		assert.Same(t, boom, err)
	})
}

func TestAddGoal_WithMemoryStores(t *testing.T) {
	ctx := context.Background()
	users := user.NewMemoryStore()
	goals := NewMemoryStore()
	require.NoError(t, users.Create(ctx, user.CreateUser{Name: "John Doe", Email: "john@doe.com"}, "HASH"))
	owner, err := users.FindByEmail(ctx, "john@doe.com")
	require.NoError(t, err)

	uc := NewAddGoal(users, goals)
	require.NoError(t, uc.Execute(ctx, CreateGoal{Text: "Run a marathon"}, owner.ID))

	stored, err := goals.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Run a marathon", stored[0].Text)
	assert.Equal(t, owner.ID, stored[0].OwnerID)

	err = uc.Execute(ctx, CreateGoal{Text: "Run a marathon"}, uuid.NewString())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
