package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mediahub/internal/domain"
)

var baseTime = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testMedia(id string, mediaType domain.MediaType, title string) *domain.Media {
	return &domain.Media{
		ID:        id,
		Type:      mediaType,
		Title:     title,
		Plot:      title + " plot",
		CreatedAt: baseTime,
		UpdatedAt: baseTime,
	}
}

func saveMedia(t *testing.T, s *Store, media ...*domain.Media) {
	t.Helper()
	for _, m := range media {
		require.NoError(t, s.Save(context.Background(), m))
	}
}

func TestNewStore(t *testing.T) {
	t.Run("applies every migration", func(t *testing.T) {
		store := newTestStore(t)

		version, err := store.SchemaVersion()
		require.NoError(t, err)
		assert.Equal(t, int64(5), version)
		assert.NoError(t, store.Ping(context.Background()))
	})

	t.Run("reopens an existing database", func(t *testing.T) {
		dir := t.TempDir()
		first, err := NewStore(dir)
		require.NoError(t, err)
		saveMedia(t, first, testMedia("m1", domain.MediaTypeMovie, "Heat"))
		require.NoError(t, first.Close())

		second, err := NewStore(dir)
		require.NoError(t, err)
		defer second.Close()

		m, err := second.Get(context.Background(), "m1")
		require.NoError(t, err)
		assert.Equal(t, "Heat", m.Title)
	})
}

func TestAffectedOne(t *testing.T) {
	store := newTestStore(t)

	err := store.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
