package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/infrastructure/logger"
	"github.com/bnema/mediahub/internal/port"
)

const (
	liveSportsLimit      = 8
	breakingNewsLimit    = 6
	relatedLimit         = 10
	searchFallbackBelow  = 5
	trendingMinRating    = 7.0
	DefaultPopularVotes  = 1000
	defaultTrendingLimit = 10
)

// MediaFileRemover deletes the files that belong to a media record.
type MediaFileRemover interface {
	RemoveMediaFiles(mediaID string)
}

type CatalogService struct {
	store port.MediaStore
	files MediaFileRemover
	now   func() time.Time
}

func NewCatalogService(store port.MediaStore, files MediaFileRemover) *CatalogService {
	return &CatalogService{store: store, files: files, now: time.Now}
}

// Create stores a new media record. Server-managed fields on the input are reset.
func (s *CatalogService) Create(ctx context.Context, m *domain.Media) (*domain.Media, error) {
	now := s.now().UTC()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now
	m.Playback = nil
	m.IngestStatus = domain.IngestStatusNone
	m.IngestError = ""
	m.Views = 0
	if err := prepare(m); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("save media: %w", err)
	}
	logger.Info.Printf("media created: id=%s type=%s title=%s", m.ID, m.Type, logger.SanitizeForLog(m.Title))
	return m, nil
}

// Update replaces the editable fields of a record. Playback, ingest state,
// views and an unset poster keep their stored values.
func (s *CatalogService) Update(ctx context.Context, id string, in *domain.Media) (*domain.Media, error) {
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in.ID = current.ID
	in.CreatedAt = current.CreatedAt
	in.UpdatedAt = s.now().UTC()
	in.Playback = current.Playback
	in.IngestStatus = current.IngestStatus
	in.IngestError = current.IngestError
	in.Views = current.Views
	if in.PosterURL == "" {
		in.PosterURL = current.PosterURL
	}
	if err := prepare(in); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, in); err != nil {
		return nil, fmt.Errorf("update media: %w", err)
	}
	return in, nil
}

func prepare(m *domain.Media) error {
	m.Normalize()
	if m.Year == 0 && m.Released != nil {
		m.Year = m.Released.Year()
	}
	return m.Validate()
}

// Delete removes the record and, best effort, its stored files.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	if s.files != nil {
		s.files.RemoveMediaFiles(id)
	}
	logger.Info.Printf("media deleted: id=%s", id)
	return nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Media, error) {
	return s.store.Get(ctx, id)
}

func (s *CatalogService) List(ctx context.Context, q domain.MediaQuery) ([]*domain.Media, error) {
	q.Normalize()
	return s.store.List(ctx, q)
}

func (s *CatalogService) Latest(ctx context.Context, mediaType domain.MediaType, limit int) ([]*domain.Media, error) {
	return s.List(ctx, domain.MediaQuery{Type: mediaType, Sort: domain.SortLatest, Limit: limit})
}

func (s *CatalogService) Trending(ctx context.Context, limit int) ([]*domain.Media, error) {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}
	return s.List(ctx, domain.MediaQuery{MinRating: trendingMinRating, Sort: domain.SortRating, Limit: limit})
}

// Popular lists the most voted media. minVotes <= 0 uses DefaultPopularVotes.
func (s *CatalogService) Popular(ctx context.Context, minVotes, limit int) ([]*domain.Media, error) {
	if minVotes <= 0 {
		minVotes = DefaultPopularVotes
	}
	return s.List(ctx, domain.MediaQuery{MinVotes: minVotes, Sort: domain.SortVotes, Limit: limit})
}

// LiveSports lists playable sport events whose window contains now.
func (s *CatalogService) LiveSports(ctx context.Context) ([]*domain.Media, error) {
	now := s.now().UTC()
	return s.List(ctx, domain.MediaQuery{
		Type:     domain.MediaTypeSport,
		Playable: true,
		LiveAt:   &now,
		Sort:     domain.SortStartTime,
		Limit:    liveSportsLimit,
	})
}

func (s *CatalogService) UpcomingSports(ctx context.Context, limit int) ([]*domain.Media, error) {
	now := s.now().UTC()
	return s.List(ctx, domain.MediaQuery{
		Type:          domain.MediaTypeSport,
		UpcomingAfter: &now,
		Sort:          domain.SortStartTime,
		Limit:         limit,
	})
}

func (s *CatalogService) BreakingNews(ctx context.Context) ([]*domain.Media, error) {
	return s.List(ctx, domain.MediaQuery{
		Type:     domain.MediaTypeNews,
		Breaking: true,
		Sort:     domain.SortLatest,
		Limit:    breakingNewsLimit,
	})
}

// SearchResult holds text matches plus popular suggestions when matches are scarce.
type SearchResult struct {
	Results     []*domain.Media `json:"results"`
	Suggestions []*domain.Media `json:"suggestions,omitempty"`
}

func (s *CatalogService) Search(ctx context.Context, text string, limit int) (*SearchResult, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: search text is required", domain.ErrInvalidInput)
	}
	results, err := s.List(ctx, domain.MediaQuery{Text: text, Sort: domain.SortRating, Limit: limit})
	if err != nil {
		return nil, err
	}
	out := &SearchResult{Results: results}
	if len(results) >= searchFallbackBelow {
		return out, nil
	}

	popular, err := s.Popular(ctx, 0, searchFallbackBelow*2)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(results))
	for _, m := range results {
		seen[m.ID] = true
	}
	for _, m := range popular {
		if !seen[m.ID] {
			out.Suggestions = append(out.Suggestions, m)
		}
	}
	return out, nil
}

// Related returns media sharing a genre with id, topped up with the same type,
// best rated first.
func (s *CatalogService) Related(ctx context.Context, id string) ([]*domain.Media, error) {
	m, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var related []*domain.Media
	collect := func(q domain.MediaQuery) error {
		q.ExcludeID = m.ID
		q.Sort = domain.SortRating
		q.Limit = relatedLimit
		found, err := s.List(ctx, q)
		if err != nil {
			return err
		}
		for _, r := range found {
			if len(related) < relatedLimit && !seen[r.ID] {
				seen[r.ID] = true
				related = append(related, r)
			}
		}
		return nil
	}

	for _, genre := range m.Genres {
		if len(related) >= relatedLimit {
			break
		}
		if err := collect(domain.MediaQuery{Genre: genre}); err != nil {
			return nil, err
		}
	}
	if len(related) < relatedLimit {
		if err := collect(domain.MediaQuery{Type: m.Type}); err != nil {
			return nil, err
		}
	}

	slices.SortStableFunc(related, func(a, b *domain.Media) int {
		return cmp.Compare(b.IMDb.Rating, a.IMDb.Rating)
	})
	return related, nil
}

func (s *CatalogService) RecordView(ctx context.Context, id string) error {
	return s.store.IncrementViews(ctx, id)
}

// Genres lists the distinct genres in use, optionally for one media type.
func (s *CatalogService) Genres(ctx context.Context, mediaType domain.MediaType) ([]string, error) {
	if mediaType != "" && !mediaType.Valid() {
		return nil, fmt.Errorf("%w: unknown media type %q", domain.ErrInvalidInput, mediaType)
	}
	return s.store.Genres(ctx, mediaType)
}
