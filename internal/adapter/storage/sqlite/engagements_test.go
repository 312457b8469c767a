package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mediahub/internal/domain"
)

func engagement(userID, mediaID string, kind domain.ListKind, at time.Time) *domain.Engagement {
	return &domain.Engagement{UserID: userID, MediaID: mediaID, Kind: kind, CreatedAt: at, UpdatedAt: at}
}

func TestStore_Engagements(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	saveMedia(t, store, testMedia("m1", domain.MediaTypeMovie, "Heat"), testMedia("m2", domain.MediaTypeMovie, "Amelie"))
	require.NoError(t, store.CreateUser(ctx, testUser("u1", "ada@example.com")))
	require.NoError(t, store.CreateUser(ctx, testUser("u2", "bob@example.com")))

	t.Run("duplicate without refresh", func(t *testing.T) {
		require.NoError(t, store.AddEngagement(ctx, engagement("u1", "m1", domain.ListFavorites, baseTime), false))

		err := store.AddEngagement(ctx, engagement("u1", "m1", domain.ListFavorites, baseTime), false)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)

		ok, err := store.HasEngagement(ctx, "u1", "m1", domain.ListFavorites)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.HasEngagement(ctx, "u1", "m1", domain.ListLikes)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("refresh moves the entry to the top", func(t *testing.T) {
		require.NoError(t, store.AddEngagement(ctx, engagement("u1", "m1", domain.ListHistory, baseTime), true))
		require.NoError(t, store.AddEngagement(ctx, engagement("u1", "m2", domain.ListHistory, baseTime.Add(time.Minute)), true))
		require.NoError(t, store.AddEngagement(ctx, engagement("u1", "m1", domain.ListHistory, baseTime.Add(time.Hour)), true))

		list, err := store.ListEngagements(ctx, "u1", domain.ListHistory)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "m1", list[0].MediaID)
		assert.True(t, baseTime.Equal(list[0].CreatedAt))
		assert.True(t, baseTime.Add(time.Hour).Equal(list[0].UpdatedAt))
		require.NotNil(t, list[0].Media)
		assert.Equal(t, "Heat", list[0].Media.Title)
		assert.Equal(t, "m2", list[1].MediaID)
	})

	t.Run("unknown media", func(t *testing.T) {
		err := store.AddEngagement(ctx, engagement("u1", "gone", domain.ListLikes, baseTime), false)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("counts across users", func(t *testing.T) {
		require.NoError(t, store.AddEngagement(ctx, engagement("u1", "m2", domain.ListLikes, baseTime), false))
		require.NoError(t, store.AddEngagement(ctx, engagement("u2", "m2", domain.ListLikes, baseTime), false))

		n, err := store.CountEngagements(ctx, "m2", domain.ListLikes)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("remove and clear", func(t *testing.T) {
		require.NoError(t, store.RemoveEngagement(ctx, "u1", "m1", domain.ListFavorites))
		assert.ErrorIs(t, store.RemoveEngagement(ctx, "u1", "m1", domain.ListFavorites), domain.ErrNotFound)

		n, err := store.ClearEngagements(ctx, "u1", domain.ListHistory)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		list, err := store.ListEngagements(ctx, "u1", domain.ListHistory)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("deleting a user drops their lists", func(t *testing.T) {
		require.NoError(t, store.DeleteUser(ctx, "u2"))

		n, err := store.CountEngagements(ctx, "m2", domain.ListLikes)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}
