package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/service"
)

func TestParseMediaQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    domain.MediaQuery
		wantErr bool
	}{
		{
			name:  "defaults",
			query: "",
			want:  domain.MediaQuery{Sort: domain.SortLatest, Page: 1, Limit: domain.DefaultPageLimit},
		},
		{
			name:  "all filters",
			query: "type=Movie&genre=Drama&language=French&year=1995&q=heat&sort=rating&minRating=7.5&minVotes=100&page=2&limit=20&playable=true&breaking=1&featured=false",
			want: domain.MediaQuery{
				Type: domain.MediaTypeMovie, Genre: "Drama", Language: "French", Year: 1995, Text: "heat",
				Sort: domain.SortRating, MinRating: 7.5, MinVotes: 100, Page: 2, Limit: 20,
				Playable: true, Breaking: true,
			},
		},
		{
			name:  "limit is clamped",
			query: "limit=1000&page=-3",
			want:  domain.MediaQuery{Sort: domain.SortLatest, Page: 1, Limit: domain.MaxPageLimit},
		},
		{name: "unknown type", query: "type=podcast", wantErr: true},
		{name: "unknown sort", query: "sort=random", wantErr: true},
		{name: "bad year", query: "year=nineties", wantErr: true},
		{name: "bad rating", query: "minRating=high", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/media?"+tt.query, nil)
			got, err := parseMediaQuery(r)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMedia_CRUD(t *testing.T) {
	env := newTestEnv(t)
	_, manager := env.user(t, domain.RoleContentManager, "cm@example.com")
	_, member := env.user(t, domain.RoleUser, "user@example.com")

	body := map[string]any{
		"type":   "movie",
		"title":  "Heat",
		"plot":   "A crew of thieves and a detective.",
		"genres": []string{"Crime", " ", "Drama"},
		"imdb":   map[string]any{"rating": 8.3, "votes": 700000},
	}

	t.Run("anonymous create is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodPost, "/api/v1/media", body, "").Code)
	})

	t.Run("regular users cannot create", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, env.do(t, http.MethodPost, "/api/v1/media", body, member).Code)
	})

	rec := env.do(t, http.MethodPost, "/api/v1/media", body, manager)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeData[domain.Media](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"Crime", "Drama"}, created.Genres)

	t.Run("get", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/media/"+created.ID, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Heat", decodeData[domain.Media](t, rec).Title)
	})

	t.Run("update", func(t *testing.T) {
		update := map[string]any{"type": "movie", "title": "Heat (1995)", "plot": "Updated plot."}
		rec := env.do(t, http.MethodPut, "/api/v1/media/"+created.ID, update, manager)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Heat (1995)", decodeData[domain.Media](t, rec).Title)
	})

	t.Run("invalid rating", func(t *testing.T) {
		bad := map[string]any{"type": "movie", "title": "X", "plot": "Y", "imdb": map[string]any{"rating": 11}}
		assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodPost, "/api/v1/media", bad, manager).Code)
	})

	t.Run("record view", func(t *testing.T) {
		require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/media/"+created.ID+"/view", nil, "").Code)
		rec := env.do(t, http.MethodGet, "/api/v1/media/"+created.ID, nil, "")
		assert.Equal(t, int64(1), decodeData[domain.Media](t, rec).Views)
	})

	t.Run("delete", func(t *testing.T) {
		require.Equal(t, http.StatusOK, env.do(t, http.MethodDelete, "/api/v1/media/"+created.ID, nil, manager).Code)
		assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/api/v1/media/"+created.ID, nil, "").Code)
		assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/api/v1/media/"+created.ID, nil, manager).Code)
	})
}

func TestMedia_Listings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	heat := env.media(t, domain.MediaTypeMovie, "Heat", "Crime", "Drama")
	ronin := env.media(t, domain.MediaTypeMovie, "Ronin", "Crime", "Action")
	env.media(t, domain.MediaTypeTVShow, "The Wire", "Crime")
	env.media(t, domain.MediaTypeDocumentary, "Planet Earth", "Nature")

	heat.IMDb = domain.IMDb{Rating: 8.3, Votes: 700000}
	_, err := env.catalog.Update(ctx, heat.ID, heat)
	require.NoError(t, err)

	t.Run("list filters by type", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/media?type=movie", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		page := decodeData[mediaPage](t, rec)
		assert.Len(t, page.Media, 2)
		assert.Equal(t, 1, page.Page)
	})

	t.Run("list rejects bad input", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/api/v1/media?sort=random", nil, "").Code)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/media?type=game", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"media":[]`)
	})

	t.Run("genres", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/media/genres?type=movie", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"Action", "Crime", "Drama"}, decodeData[[]string](t, rec))
	})

	t.Run("popular", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/media/popular", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		popular := decodeData[[]domain.Media](t, rec)
		require.Len(t, popular, 1)
		assert.Equal(t, heat.ID, popular[0].ID)
	})

	t.Run("related", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/media/"+ronin.ID+"/related", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		related := decodeData[[]domain.Media](t, rec)
		ids := make([]string, 0, len(related))
		for _, m := range related {
			ids = append(ids, m.ID)
		}
		assert.Contains(t, ids, heat.ID)
		assert.NotContains(t, ids, ronin.ID)
	})

	t.Run("related of unknown media", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/api/v1/media/nope/related", nil, "").Code)
	})

	t.Run("search", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/media/search?q=ronin", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		result := decodeData[service.SearchResult](t, rec)
		require.Len(t, result.Results, 1)
		assert.Equal(t, ronin.ID, result.Results[0].ID)
		assert.NotEmpty(t, result.Suggestions)
	})

	t.Run("search needs text", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/api/v1/media/search", nil, "").Code)
	})

	t.Run("latest", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/media/latest?limit=2", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeData[[]domain.Media](t, rec), 2)
	})
}

func TestMedia_SportsAndNews(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now().UTC()
	start, end := now.Add(-time.Hour), now.Add(time.Hour)
	later := now.Add(24 * time.Hour)

	live, err := env.catalog.Create(ctx, &domain.Media{
		Type: domain.MediaTypeSport, Title: "Final", Plot: "Cup final",
		Sport: &domain.SportDetails{StartTime: &start, EndTime: &end, Status: domain.EventStatusLive},
	})
	require.NoError(t, err)
	live.MarkIngestReady(domain.NewTranscodeResult(domain.DefaultLadder(), "stream"))
	require.NoError(t, env.store.UpdateIngest(ctx, live))

	upcoming, err := env.catalog.Create(ctx, &domain.Media{
		Type: domain.MediaTypeSport, Title: "Semi", Plot: "Semi final",
		Sport: &domain.SportDetails{StartTime: &later, Status: domain.EventStatusScheduled},
	})
	require.NoError(t, err)

	breaking, err := env.catalog.Create(ctx, &domain.Media{
		Type: domain.MediaTypeNews, Title: "Flash", Plot: "Breaking story",
		News: &domain.NewsDetails{Breaking: true},
	})
	require.NoError(t, err)

	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/sports/live", live.ID},
		{"/api/v1/sports/upcoming", upcoming.ID},
		{"/api/v1/news/breaking", breaking.ID},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, tt.path, nil, "")
			require.Equal(t, http.StatusOK, rec.Code)
			got := decodeData[[]domain.Media](t, rec)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].ID)
		})
	}
}
