package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mediahub/internal/domain"
)

func testUser(id, email string) *domain.User {
	return &domain.User{
		ID:           id,
		Name:         "User " + id,
		Email:        email,
		PasswordHash: "hash",
		Role:         domain.RoleUser,
		Active:       true,
		CreatedAt:    baseTime,
		UpdatedAt:    baseTime,
	}
}

func TestStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, testUser("u1", "Ada@Example.com")))

	t.Run("email lookup is case insensitive", func(t *testing.T) {
		u, err := store.GetUserByEmail(ctx, "ADA@example.com")
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
		assert.Equal(t, "ada@example.com", u.Email)
		assert.True(t, u.Active)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := store.CreateUser(ctx, testUser("u2", "ada@example.com"))
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("update and password", func(t *testing.T) {
		u, err := store.GetUserByID(ctx, "u1")
		require.NoError(t, err)
		u.Role = domain.RoleModerator
		u.Active = false
		require.NoError(t, store.UpdateUser(ctx, u))
		require.NoError(t, store.UpdatePassword(ctx, "u1", "new-hash"))

		got, err := store.GetUserByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleModerator, got.Role)
		assert.False(t, got.Active)
		assert.Equal(t, "new-hash", got.PasswordHash)
	})

	t.Run("list and delete", func(t *testing.T) {
		require.NoError(t, store.CreateUser(ctx, testUser("u3", "bob@example.com")))

		users, err := store.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)

		require.NoError(t, store.DeleteUser(ctx, "u3"))
		assert.ErrorIs(t, store.DeleteUser(ctx, "u3"), domain.ErrNotFound)

		_, err = store.GetUserByID(ctx, "u3")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
