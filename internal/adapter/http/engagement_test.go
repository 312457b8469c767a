package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mediahub/internal/domain"
)

func TestEngagement(t *testing.T) {
	env := newTestEnv(t)
	_, alice := env.user(t, domain.RoleUser, "alice@example.com")
	_, bob := env.user(t, domain.RoleUser, "bob@example.com")
	heat := env.media(t, domain.MediaTypeMovie, "Heat")
	ronin := env.media(t, domain.MediaTypeMovie, "Ronin")

	add := func(token, kind, mediaID string) int {
		return env.do(t, http.MethodPost, "/api/v1/me/"+kind, map[string]string{"mediaId": mediaID}, token).Code
	}

	t.Run("requires a user", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/api/v1/me/favorites", nil, "").Code)
	})

	t.Run("favorites reject duplicates", func(t *testing.T) {
		assert.Equal(t, http.StatusCreated, add(alice, "favorites", heat.ID))
		assert.Equal(t, http.StatusConflict, add(alice, "favorites", heat.ID))
		assert.Equal(t, http.StatusNotFound, add(alice, "favorites", "missing"))
		assert.Equal(t, http.StatusBadRequest, add(alice, "bookmarks", heat.ID))
	})

	t.Run("history refreshes", func(t *testing.T) {
		assert.Equal(t, http.StatusCreated, add(alice, "history", heat.ID))
		assert.Equal(t, http.StatusCreated, add(alice, "history", ronin.ID))
		assert.Equal(t, http.StatusCreated, add(alice, "history", heat.ID))

		rec := env.do(t, http.MethodGet, "/api/v1/me/history", nil, alice)
		require.Equal(t, http.StatusOK, rec.Code)
		entries := decodeData[[]domain.Engagement](t, rec)
		require.Len(t, entries, 2)
		titles := map[string]string{}
		for _, e := range entries {
			require.NotNil(t, e.Media)
			titles[e.MediaID] = e.Media.Title
		}
		assert.Equal(t, map[string]string{heat.ID: "Heat", ronin.ID: "Ronin"}, titles)
	})

	t.Run("lists are per user", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/me/favorites", nil, bob)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"data":[]`)
	})

	t.Run("watch later accepts a dashed path", func(t *testing.T) {
		assert.Equal(t, http.StatusCreated, add(alice, "watch-later", ronin.ID))

		rec := env.do(t, http.MethodGet, "/api/v1/me/watch_later/"+ronin.ID, nil, alice)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]bool{"contains": true}, decodeData[map[string]bool](t, rec))

		rec = env.do(t, http.MethodGet, "/api/v1/me/watch-later/"+heat.ID, nil, alice)
		assert.Equal(t, map[string]bool{"contains": false}, decodeData[map[string]bool](t, rec))
	})

	t.Run("likes are counted per media", func(t *testing.T) {
		assert.Equal(t, http.StatusCreated, add(alice, "likes", heat.ID))
		assert.Equal(t, http.StatusCreated, add(bob, "likes", heat.ID))

		rec := env.do(t, http.MethodGet, "/api/v1/media/"+heat.ID+"/likes", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]int64{"likes": 2}, decodeData[map[string]int64](t, rec))

		assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/api/v1/media/missing/likes", nil, "").Code)
	})

	t.Run("remove", func(t *testing.T) {
		path := "/api/v1/me/favorites/" + heat.ID
		assert.Equal(t, http.StatusOK, env.do(t, http.MethodDelete, path, nil, alice).Code)
		assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, path, nil, alice).Code)
	})

	t.Run("clear", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodDelete, "/api/v1/me/likes", nil, alice).Code)

		rec := env.do(t, http.MethodDelete, "/api/v1/me/history", nil, alice)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]int64{"removed": 2}, decodeData[map[string]int64](t, rec))
	})
}
