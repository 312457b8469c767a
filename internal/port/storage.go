package port

import (
	"context"

	"github.com/bnema/mediahub/internal/domain"
)

type MediaStore interface {
	Save(ctx context.Context, m *domain.Media) error
	Update(ctx context.Context, m *domain.Media) error
	Get(ctx context.Context, id string) (*domain.Media, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q domain.MediaQuery) ([]*domain.Media, error)
	Genres(ctx context.Context, mediaType domain.MediaType) ([]string, error)
	IncrementViews(ctx context.Context, id string) error
	UpdateIngest(ctx context.Context, m *domain.Media) error
	UpdatePoster(ctx context.Context, id, posterURL string) error
}

type SliderStore interface {
	SaveSlider(ctx context.Context, s *domain.Slider) error
	UpdateSlider(ctx context.Context, s *domain.Slider) error
	GetSlider(ctx context.Context, id string) (*domain.Slider, error)
	DeleteSlider(ctx context.Context, id string) error
	// ListSliders orders by position. An empty page lists every page.
	ListSliders(ctx context.Context, page domain.PageType) ([]*domain.Slider, error)
}

type EngagementStore interface {
	// AddEngagement returns domain.ErrAlreadyExists for a duplicate unless refresh is set,
	// in which case the existing entry's timestamp is bumped.
	AddEngagement(ctx context.Context, e *domain.Engagement, refresh bool) error
	RemoveEngagement(ctx context.Context, userID, mediaID string, kind domain.ListKind) error
	ListEngagements(ctx context.Context, userID string, kind domain.ListKind) ([]*domain.Engagement, error)
	HasEngagement(ctx context.Context, userID, mediaID string, kind domain.ListKind) (bool, error)
	ClearEngagements(ctx context.Context, userID string, kind domain.ListKind) (int64, error)
	CountEngagements(ctx context.Context, mediaID string, kind domain.ListKind) (int64, error)
}
