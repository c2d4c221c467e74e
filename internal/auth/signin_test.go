package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/goals-api/internal/apperr"
	"github.com/redmonkez12/goals-api/internal/user"
)

const storedID = "3f1c2a9e-7b4d-4e1a-9c2f-0a1b2c3d4e5f"

var (
	creds      = SignInCredentials{Email: "john@doe.com", Password: "1234"}
	storedUser = &user.User{ID: storedID, Name: "John Doe", Email: "john@doe.com", PasswordHash: "HASH"}
)

func TestSignInUser_Success(t *testing.T) {
	ctx := context.Background()
	store := new(mockUserStore)
	passwords := new(mockPasswordService)
	tokens := new(mockTokenService)

	store.On("FindByEmail", ctx, "john@doe.com").Return(storedUser, nil).Once()
	passwords.On("Matches", "1234", "HASH").Return(true, nil).Once()
	tokens.On("Issue", storedID).Return("TOKEN", nil).Once()

	got, err := NewSignInUser(store, passwords, tokens).Execute(ctx, creds)

	require.NoError(t, err)
	assert.Equal(t, &SignedUser{ID: storedID, Name: "John Doe", Email: "john@doe.com", Token: "TOKEN"}, got)
	store.AssertExpectations(t)
	passwords.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestSignInUser_WrongPassword(t *testing.T) {
	ctx := context.Background()
	store := new(mockUserStore)
	passwords := new(mockPasswordService)
	tokens := new(mockTokenService)

	store.On("FindByEmail", ctx, "john@doe.com").Return(storedUser, nil).Once()
	passwords.On("Matches", "1234", "HASH").Return(false, nil).Once()

	got, err := NewSignInUser(store, passwords, tokens).Execute(ctx, creds)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperr.ErrMismatch)
	assert.Equal(t, "Password is not a match to the password hash", err.Error())
	tokens.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestSignInUser_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	store := new(mockUserStore)
	passwords := new(mockPasswordService)
	tokens := new(mockTokenService)

	store.On("FindByEmail", ctx, "john@doe.com").Return((*user.User)(nil), user.ErrNotFound).Once()

	_, err := NewSignInUser(store, passwords, tokens).Execute(ctx, creds)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, "User not found with the e-mail passed", err.Error())
	passwords.AssertNotCalled(t, "Matches", mock.Anything, mock.Anything)
	tokens.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestSignInUser_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		creds   SignInCredentials
		wantMsg string
	}{
		{name: "blank email", creds: SignInCredentials{Email: "", Password: "1234"}, wantMsg: "email required"},
		{name: "bad email", creds: SignInCredentials{Email: "johndoe", Password: "1234"}, wantMsg: "email format invalid"},
		{name: "blank password", creds: SignInCredentials{Email: "john@doe.com", Password: "\t"}, wantMsg: "password required"},
		{name: "long password", creds: SignInCredentials{Email: "john@doe.com", Password: "012345678901234567890123456789012"}, wantMsg: "password length out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockUserStore)
			passwords := new(mockPasswordService)
			tokens := new(mockTokenService)

			_, err := NewSignInUser(store, passwords, tokens).Execute(context.Background(), tt.creds)

			assert.ErrorIs(t, err, apperr.ErrInvalidUser)
			assert.Equal(t, tt.wantMsg, err.Error())
			store.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
		})
	}
}

func TestSignInUser_CollaboratorFailuresPassThrough(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("argon2: malformed hash")

	t.Run("matches", func(t *testing.T) {
		store := new(mockUserStore)
		passwords := new(mockPasswordService)
		tokens := new(mockTokenService)
		store.On("FindByEmail", ctx, "john@doe.com").Return(storedUser, nil).Once()
		passwords.On("Matches", "1234", "HASH").Return(false, boom).Once()

		_, err := NewSignInUser(store, passwords, tokens).Execute(ctx, creds)

		assert.Same(t, boom, err)
		tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("issue", func(t *testing.T) {
		store := new(mockUserStore)
		passwords := new(mockPasswordService)
		tokens := new(mockTokenService)
		store.On("FindByEmail", ctx, "john@doe.com").Return(storedUser, nil).Once()
		passwords.On("Matches", "1234", "HASH").Return(true, nil).Once()
		tokens.On("Issue", storedID).Return("", boom).Once()

		got, err := NewSignInUser(store, passwords, tokens).Execute(ctx, creds)

		assert.Nil(t, got)
		assert.Same(t, boom, err)
	})
}
