package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/port/mocks"
)

type fileRemoverSpy struct {
	removed []string
}

func (f *fileRemoverSpy) RemoveMediaFiles(id string) {
	f.removed = append(f.removed, id)
}

func mediaWithRating(id string, rating float64) *domain.Media {
	return &domain.Media{ID: id, Type: domain.MediaTypeMovie, Title: id, Plot: "p", IMDb: domain.IMDb{Rating: rating}}
}

func TestCatalogService_Create(t *testing.T) {
	store := mocks.NewMediaStoreMock(t)
	svc := NewCatalogService(store, nil)
	released := time.Date(1995, 12, 15, 0, 0, 0, 0, time.UTC)

	store.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.Media")).Return(nil).Once()

	in := &domain.Media{
		ID:           "client-chosen",
		Type:         " Movie ",
		Title:        " Heat ",
		Plot:         "A heist",
		Genres:       []string{"Crime", " ", "Drama"},
		Released:     &released,
		Views:        99,
		IngestStatus: domain.IngestStatusReady,
	}
	m, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.NotEqual(t, "client-chosen", m.ID)
	assert.Equal(t, domain.MediaTypeMovie, m.Type)
	assert.Equal(t, "Heat", m.Title)
	assert.Equal(t, []string{"Crime", "Drama"}, m.Genres)
	assert.Equal(t, 1995, m.Year)
	assert.Zero(t, m.Views)
	assert.Equal(t, domain.IngestStatusNone, m.IngestStatus)
}

func TestCatalogService_Create_Invalid(t *testing.T) {
	store := mocks.NewMediaStoreMock(t)
	svc := NewCatalogService(store, nil)

	_, err := svc.Create(context.Background(), &domain.Media{Type: domain.MediaTypeMovie, Title: "No plot"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(context.Background(), &domain.Media{Type: "podcast", Title: "T", Plot: "P"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogService_Update_KeepsServerFields(t *testing.T) {
	store := mocks.NewMediaStoreMock(t)
	svc := NewCatalogService(store, nil)
	current := mediaWithRating("m1", 8)
	current.PosterURL = "/poster.jpg"
	current.Views = 12
	current.Playback = &domain.TranscodeResult{MasterPlaylist: "/hls/master.m3u8"}
	current.IngestStatus = domain.IngestStatusReady

	store.EXPECT().Get(mock.Anything, "m1").Return(current, nil).Once()
	store.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Media")).Return(nil).Once()

	updated, err := svc.Update(context.Background(), "m1", &domain.Media{
		Type: domain.MediaTypeMovie, Title: "Heat (Director's cut)", Plot: "Longer",
	})
	require.NoError(t, err)

	assert.Equal(t, "m1", updated.ID)
	assert.Equal(t, "Heat (Director's cut)", updated.Title)
	assert.Equal(t, "/poster.jpg", updated.PosterURL)
	assert.Equal(t, int64(12), updated.Views)
	assert.True(t, updated.IsPlayable())
	assert.Equal(t, domain.IngestStatusReady, updated.IngestStatus)
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	store := mocks.NewMediaStoreMock(t)
	svc := NewCatalogService(store, nil)
	store.EXPECT().Get(mock.Anything, "nope").Return(nil, domain.ErrNotFound).Once()

	_, err := svc.Update(context.Background(), "nope", &domain.Media{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_Delete_RemovesFiles(t *testing.T) {
	store := mocks.NewMediaStoreMock(t)
	spy := &fileRemoverSpy{}
	svc := NewCatalogService(store, spy)

	store.EXPECT().Delete(mock.Anything, "m1").Return(nil).Once()
	store.EXPECT().Delete(mock.Anything, "m2").Return(domain.ErrNotFound).Once()

	require.NoError(t, svc.Delete(context.Background(), "m1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "m2"), domain.ErrNotFound)
	assert.Equal(t, []string{"m1"}, spy.removed)
}

func TestCatalogService_LiveSports(t *testing.T) {
	store := mocks.NewMediaStoreMock(t)
	svc := NewCatalogService(store, nil)
	fixed := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	store.EXPECT().List(mock.Anything, mock.MatchedBy(func(q domain.MediaQuery) bool {
		return q.Type == domain.MediaTypeSport && q.Playable && q.LiveAt != nil && q.LiveAt.Equal(fixed) &&
			q.Sort == domain.SortStartTime && q.Limit == 8 && q.Page == 1
	})).Return([]*domain.Media{}, nil).Once()

	_, err := svc.LiveSports(context.Background())
	require.NoError(t, err)
}

func TestCatalogService_BreakingNewsAndPopularQueries(t *testing.T) {
	store := mocks.NewMediaStoreMock(t)
	svc := NewCatalogService(store, nil)

	store.EXPECT().List(mock.Anything, mock.MatchedBy(func(q domain.MediaQuery) bool {
		return q.Type == domain.MediaTypeNews && q.Breaking && q.Sort == domain.SortLatest && q.Limit == 6
	})).Return(nil, nil).Once()
	store.EXPECT().List(mock.Anything, mock.MatchedBy(func(q domain.MediaQuery) bool {
		return q.MinVotes == DefaultPopularVotes && q.Sort == domain.SortVotes && q.Limit == domain.DefaultPageLimit
	})).Return(nil, nil).Once()

	_, err := svc.BreakingNews(context.Background())
	require.NoError(t, err)
	_, err = svc.Popular(context.Background(), 0, 0)
	require.NoError(t, err)
}

func TestCatalogService_Search_Fallback(t *testing.T) {
	store := mocks.NewMediaStoreMock(t)
	svc := NewCatalogService(store, nil)
	hit := mediaWithRating("hit", 6)

	store.EXPECT().List(mock.Anything, mock.MatchedBy(func(q domain.MediaQuery) bool {
		return q.Text == "heat"
	})).Return([]*domain.Media{hit}, nil).Once()
	store.EXPECT().List(mock.Anything, mock.MatchedBy(func(q domain.MediaQuery) bool {
		return q.Text == "" && q.Sort == domain.SortVotes
	})).Return([]*domain.Media{hit, mediaWithRating("popular", 9)}, nil).Once()

	res, err := svc.Search(context.Background(), "heat", 0)
	require.NoError(t, err)

	assert.Len(t, res.Results, 1)
	require.Len(t, res.Suggestions, 1)
	assert.Equal(t, "popular", res.Suggestions[0].ID)

	_, err = svc.Search(context.Background(), "", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogService_Related(t *testing.T) {
	store := mocks.NewMediaStoreMock(t)
	svc := NewCatalogService(store, nil)
	source := mediaWithRating("src", 8)
	source.Genres = []string{"Crime", "Drama"}

	store.EXPECT().Get(mock.Anything, "src").Return(source, nil).Once()
	store.EXPECT().List(mock.Anything, mock.MatchedBy(func(q domain.MediaQuery) bool {
		return q.Genre == "Crime" && q.ExcludeID == "src"
	})).Return([]*domain.Media{mediaWithRating("a", 6), mediaWithRating("b", 9)}, nil).Once()
	store.EXPECT().List(mock.Anything, mock.MatchedBy(func(q domain.MediaQuery) bool {
		return q.Genre == "Drama"
	})).Return([]*domain.Media{mediaWithRating("b", 9), mediaWithRating("c", 7)}, nil).Once()
	store.EXPECT().List(mock.Anything, mock.MatchedBy(func(q domain.MediaQuery) bool {
		return q.Genre == "" && q.Type == domain.MediaTypeMovie
	})).Return([]*domain.Media{mediaWithRating("d", 5)}, nil).Once()

	related, err := svc.Related(context.Background(), "src")
	require.NoError(t, err)

	ids := make([]string, len(related))
	for i, m := range related {
		ids[i] = m.ID
	}
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids)
}

func TestCatalogService_Genres(t *testing.T) {
	store := mocks.NewMediaStoreMock(t)
	svc := NewCatalogService(store, nil)
	store.EXPECT().Genres(mock.Anything, domain.MediaTypeSport).Return([]string{"Football", "Tennis"}, nil).Once()

	genres, err := svc.Genres(context.Background(), domain.MediaTypeSport)
	require.NoError(t, err)
	assert.Equal(t, []string{"Football", "Tennis"}, genres)

	_, err = svc.Genres(context.Background(), "podcast")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
