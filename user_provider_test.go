package credentials_test

import (
	"context"
	"testing"

	credentials "github.com/goliatone/go-credentials"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedUser(t *testing.T, username, password string, role credentials.UserRole) *credentials.User {
	t.Helper()

	hash, err := credentials.HashPassword(password)
	require.NoError(t, err)

	return &credentials.User{
		ID:           uuid.New(),
		Username:     username,
		Role:         role,
		PasswordHash: hash,
	}
}

func TestUserProvider_VerifyIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return the identity", func(t *testing.T) {
		user := storedUser(t, "bob", "hunter2", credentials.RoleUser)

		store := &MockUserStore{}
		store.On("GetByIdentifier", mock.Anything, "bob").Return(user, nil)

		provider := credentials.NewUserProvider(store)
		identity, err := provider.VerifyIdentity(ctx, "bob", "hunter2")

		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), identity.ID())
		assert.Equal(t, "bob", identity.Username())
		assert.Equal(t, "user", identity.Role())
	})

	t.Run("unknown user and wrong password yield the same error", func(t *testing.T) {
		user := storedUser(t, "bob", "hunter2", credentials.RoleUser)

		store := &MockUserStore{}
		store.On("GetByIdentifier", mock.Anything, "bob").Return(user, nil)
		store.On("GetByIdentifier", mock.Anything, "nobody").
			Return(nil, goerrors.New("not found", goerrors.CategoryNotFound).WithCode(goerrors.CodeNotFound))

		provider := credentials.NewUserProvider(store)

		_, wrongPassErr := provider.VerifyIdentity(ctx, "bob", "hunter3")
		_, missingUserErr := provider.VerifyIdentity(ctx, "nobody", "hunter2")

		assert.ErrorIs(t, wrongPassErr, credentials.ErrMismatchedHashAndPassword)
		assert.ErrorIs(t, missingUserErr, credentials.ErrMismatchedHashAndPassword)
		assert.Equal(t, wrongPassErr, missingUserErr)
	})

	t.Run("store failures are wrapped as internal", func(t *testing.T) {
		store := &MockUserStore{}
		store.On("GetByIdentifier", mock.Anything, "bob").
			Return(nil, goerrors.New("disk on fire", goerrors.CategoryInternal))

		provider := credentials.NewUserProvider(store)
		_, err := provider.VerifyIdentity(ctx, "bob", "hunter2")

		require.Error(t, err)
		assert.NotErrorIs(t, err, credentials.ErrMismatchedHashAndPassword)

		var richErr *goerrors.Error
		require.True(t, goerrors.As(err, &richErr))
		assert.Equal(t, goerrors.CategoryInternal, richErr.Category)
	})

	t.Run("invalid stored role is rejected", func(t *testing.T) {
		user := storedUser(t, "bob", "hunter2", credentials.UserRole("superuser"))

		store := &MockUserStore{}
		store.On("GetByIdentifier", mock.Anything, "bob").Return(user, nil)

		provider := credentials.NewUserProvider(store)
		_, err := provider.VerifyIdentity(ctx, "bob", "hunter2")

		assert.Error(t, err)
	})
}

func TestUserProvider_FindIdentityByIdentifier(t *testing.T) {
	ctx := context.Background()

	t.Run("finds the identity without password check", func(t *testing.T) {
		user := storedUser(t, "bob", "hunter2", credentials.RoleAdmin)

		store := &MockUserStore{}
		store.On("GetByIdentifier", mock.Anything, "bob").Return(user, nil)

		provider := credentials.NewUserProvider(store)
		identity, err := provider.FindIdentityByIdentifier(ctx, "bob")

		require.NoError(t, err)
		assert.Equal(t, "admin", identity.Role())
	})

	t.Run("propagates store errors", func(t *testing.T) {
		store := &MockUserStore{}
		store.On("GetByIdentifier", mock.Anything, "nobody").
			Return(nil, goerrors.New("not found", goerrors.CategoryNotFound))

		provider := credentials.NewUserProvider(store)
		_, err := provider.FindIdentityByIdentifier(ctx, "nobody")

		assert.Error(t, err)
	})
}
