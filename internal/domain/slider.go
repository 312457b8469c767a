package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PageType string

const (
	PageHome    PageType = "home"
	PageMovies  PageType = "movies"
	PageTVShows PageType = "tvshows"
	PageSports  PageType = "sports"
	PageNews    PageType = "news"
)

func (p PageType) Valid() bool {
	switch p {
	case PageHome, PageMovies, PageTVShows, PageSports, PageNews:
		return true
	}
	return false
}

const (
	DefaultSliderButtonText = "Play Now"
	DefaultSliderBackground = "rgba(0,0,0,0.5)"
)

type Slider struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	MediaID     string     `json:"mediaId"`
	PageType    PageType   `json:"pageType"`
	Active      bool       `json:"isActive"`
	Order       int        `json:"order"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	ButtonText  string     `json:"buttonText"`
	ButtonLink  string     `json:"buttonLink,omitempty"`
	Background  string     `json:"backgroundColor"`
	Media       *Media     `json:"media,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func NewSlider(title, description, mediaID string, page PageType) *Slider {
	now := time.Now().UTC()
	return &Slider{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		MediaID:     mediaID,
		PageType:    page,
		Active:      true,
		StartDate:   now,
		ButtonText:  DefaultSliderButtonText,
		Background:  DefaultSliderBackground,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyDefaults fills optional fields left empty by the caller.
func (s *Slider) ApplyDefaults(now time.Time) {
	s.Title = strings.TrimSpace(s.Title)
	s.Description = strings.TrimSpace(s.Description)
	if s.PageType == "" {
		s.PageType = PageHome
	}
	if s.ButtonText == "" {
		s.ButtonText = DefaultSliderButtonText
	}
	if s.Background == "" {
		s.Background = DefaultSliderBackground
	}
	if s.StartDate.IsZero() {
		s.StartDate = now
	}
}

func (s *Slider) Validate() error {
	if s.Title == "" || s.Description == "" {
		return fmt.Errorf("%w: title and description are required", ErrInvalidInput)
	}
	if s.MediaID == "" {
		return fmt.Errorf("%w: media id is required", ErrInvalidInput)
	}
	if !s.PageType.Valid() {
		return fmt.Errorf("%w: unknown page type %q", ErrInvalidInput, s.PageType)
	}
	if s.EndDate != nil && s.EndDate.Before(s.StartDate) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}
	return nil
}

// ShownAt reports whether the slider is visible at now.
func (s *Slider) ShownAt(now time.Time) bool {
	if !s.Active || now.Before(s.StartDate) {
		return false
	}
	return s.EndDate == nil || now.Before(*s.EndDate)
}
