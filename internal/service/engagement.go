package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/port"
)

// EngagementService manages the per-user favorites, likes, history and watch later lists.
type EngagementService struct {
	lists port.EngagementStore
	media port.MediaStore
	now   func() time.Time
}

func NewEngagementService(lists port.EngagementStore, media port.MediaStore) *EngagementService {
	return &EngagementService{lists: lists, media: media, now: time.Now}
}

func checkKind(kind domain.ListKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown list %q", domain.ErrInvalidInput, kind)
	}
	return nil
}

// Add puts a media record on a list. Adding twice fails with
// domain.ErrAlreadyExists, except for history where it refreshes the entry.
func (s *EngagementService) Add(ctx context.Context, userID, mediaID string, kind domain.ListKind) (*domain.Engagement, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	media, err := s.media.Get(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	e := &domain.Engagement{
		UserID:    userID,
		MediaID:   media.ID,
		Kind:      kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.lists.AddEngagement(ctx, e, kind.Refreshes()); err != nil {
		return nil, err
	}
	e.Media = media
	return e, nil
}

func (s *EngagementService) Remove(ctx context.Context, userID, mediaID string, kind domain.ListKind) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	return s.lists.RemoveEngagement(ctx, userID, mediaID, kind)
}

// List returns the entries of one list, newest first, with media embedded.
func (s *EngagementService) List(ctx context.Context, userID string, kind domain.ListKind) ([]*domain.Engagement, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return s.lists.ListEngagements(ctx, userID, kind)
}

func (s *EngagementService) Contains(ctx context.Context, userID, mediaID string, kind domain.ListKind) (bool, error) {
	if err := checkKind(kind); err != nil {
		return false, err
	}
	return s.lists.HasEngagement(ctx, userID, mediaID, kind)
}

// Clear empties a list. Only history and watch later can be cleared.
func (s *EngagementService) Clear(ctx context.Context, userID string, kind domain.ListKind) (int64, error) {
	if err := checkKind(kind); err != nil {
		return 0, err
	}
	if !kind.Clearable() {
		return 0, fmt.Errorf("%w: %s cannot be cleared", domain.ErrInvalidInput, kind)
	}
	return s.lists.ClearEngagements(ctx, userID, kind)
}

func (s *EngagementService) LikeCount(ctx context.Context, mediaID string) (int64, error) {
	if _, err := s.media.Get(ctx, mediaID); err != nil {
		return 0, err
	}
	return s.lists.CountEngagements(ctx, mediaID, domain.ListLikes)
}
