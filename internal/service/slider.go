package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/infrastructure/logger"
	"github.com/bnema/mediahub/internal/port"
)

type SliderService struct {
	sliders port.SliderStore
	media   port.MediaStore
	now     func() time.Time
}

func NewSliderService(sliders port.SliderStore, media port.MediaStore) *SliderService {
	return &SliderService{sliders: sliders, media: media, now: time.Now}
}

func (s *SliderService) Create(ctx context.Context, in *domain.Slider) (*domain.Slider, error) {
	now := s.now().UTC()
	in.ID = uuid.NewString()
	in.CreatedAt = now
	in.UpdatedAt = now
	in.Media = nil
	if err := s.prepare(ctx, in, now); err != nil {
		return nil, err
	}
	if err := s.sliders.SaveSlider(ctx, in); err != nil {
		return nil, fmt.Errorf("save slider: %w", err)
	}
	logger.Info.Printf("slider created: id=%s page=%s media=%s", in.ID, in.PageType, in.MediaID)
	return in, nil
}

func (s *SliderService) Update(ctx context.Context, id string, in *domain.Slider) (*domain.Slider, error) {
	current, err := s.sliders.GetSlider(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	in.ID = current.ID
	in.CreatedAt = current.CreatedAt
	in.UpdatedAt = now
	in.Media = nil
	if in.StartDate.IsZero() {
		in.StartDate = current.StartDate
	}
	if err := s.prepare(ctx, in, now); err != nil {
		return nil, err
	}
	if err := s.sliders.UpdateSlider(ctx, in); err != nil {
		return nil, fmt.Errorf("update slider: %w", err)
	}
	return in, nil
}

func (s *SliderService) prepare(ctx context.Context, sl *domain.Slider, now time.Time) error {
	sl.ApplyDefaults(now)
	if err := sl.Validate(); err != nil {
		return err
	}
	if _, err := s.media.Get(ctx, sl.MediaID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: media %s does not exist", domain.ErrInvalidInput, sl.MediaID)
		}
		return err
	}
	return nil
}

func (s *SliderService) Delete(ctx context.Context, id string) error {
	return s.sliders.DeleteSlider(ctx, id)
}

func (s *SliderService) Get(ctx context.Context, id string) (*domain.Slider, error) {
	return s.sliders.GetSlider(ctx, id)
}

// ListAll returns every slider of every page, ordered by position.
func (s *SliderService) ListAll(ctx context.Context) ([]*domain.Slider, error) {
	return s.sliders.ListSliders(ctx, "")
}

// Active returns the sliders of a page visible now, each with its media
// embedded. Sliders whose media has gone are skipped.
func (s *SliderService) Active(ctx context.Context, page domain.PageType) ([]*domain.Slider, error) {
	if page == "" {
		page = domain.PageHome
	}
	if !page.Valid() {
		return nil, fmt.Errorf("%w: unknown page type %q", domain.ErrInvalidInput, page)
	}

	all, err := s.sliders.ListSliders(ctx, page)
	if err != nil {
		return nil, err
	}

	now := s.now()
	shown := make([]*domain.Slider, 0, len(all))
	for _, sl := range all {
		if !sl.ShownAt(now) {
			continue
		}
		media, err := s.media.Get(ctx, sl.MediaID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		sl.Media = media
		shown = append(shown, sl)
	}
	return shown, nil
}
