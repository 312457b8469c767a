package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type MediaType string

const (
	MediaTypeMovie       MediaType = "movie"
	MediaTypeTVShow      MediaType = "tvshow"
	MediaTypeDocumentary MediaType = "documentary"
	MediaTypeShortFilm   MediaType = "shortfilm"
	MediaTypeSport       MediaType = "sport"
	MediaTypeNews        MediaType = "news"
	MediaTypeMusic       MediaType = "music"
	MediaTypeGame        MediaType = "game"
)

var mediaTypes = map[MediaType]bool{
	MediaTypeMovie: true, MediaTypeTVShow: true, MediaTypeDocumentary: true, MediaTypeShortFilm: true,
	MediaTypeSport: true, MediaTypeNews: true, MediaTypeMusic: true, MediaTypeGame: true,
}

func (t MediaType) Valid() bool {
	return mediaTypes[t]
}

// IngestStatus tracks the video pipeline for a media record. Empty means no upload yet.
type IngestStatus string

const (
	IngestStatusNone       IngestStatus = ""
	IngestStatusPending    IngestStatus = "pending"
	IngestStatusProcessing IngestStatus = "processing"
	IngestStatusReady      IngestStatus = "ready"
	IngestStatusFailed     IngestStatus = "failed"
)

type EventStatus string

const (
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusLive      EventStatus = "live"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

type IMDb struct {
	Rating float64 `json:"rating"`
	Votes  int     `json:"votes"`
}

type SportDetails struct {
	StartTime  *time.Time  `json:"startTime,omitempty"`
	EndTime    *time.Time  `json:"endTime,omitempty"`
	Tournament string      `json:"tournament,omitempty"`
	Teams      []string    `json:"teams,omitempty"`
	Venue      string      `json:"venue,omitempty"`
	Status     EventStatus `json:"status,omitempty"`
}

type NewsDetails struct {
	Breaking bool     `json:"breaking"`
	Featured bool     `json:"featured"`
	Author   string   `json:"author,omitempty"`
	Source   string   `json:"source,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type Media struct {
	ID           string           `json:"id"`
	Type         MediaType        `json:"type"`
	Title        string           `json:"title"`
	Plot         string           `json:"plot"`
	FullPlot     string           `json:"fullplot,omitempty"`
	Genres       []string         `json:"genres"`
	Runtime      int              `json:"runtime,omitempty"`
	Rated        string           `json:"rated,omitempty"`
	Cast         []string         `json:"cast"`
	Directors    []string         `json:"directors"`
	Writers      []string         `json:"writers"`
	Languages    []string         `json:"languages"`
	Countries    []string         `json:"countries"`
	Released     *time.Time       `json:"released,omitempty"`
	Year         int              `json:"year,omitempty"`
	IMDb         IMDb             `json:"imdb"`
	PosterURL    string           `json:"posterUrl,omitempty"`
	Playback     *TranscodeResult `json:"videoUrl,omitempty"`
	IngestStatus IngestStatus     `json:"ingestStatus,omitempty"`
	IngestError  string           `json:"ingestError,omitempty"`
	Sport        *SportDetails    `json:"sportDetails,omitempty"`
	News         *NewsDetails     `json:"newsDetails,omitempty"`
	Views        int64            `json:"views"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func NewMedia(mediaType MediaType, title, plot string) *Media {
	now := time.Now().UTC()
	return &Media{
		ID:        uuid.NewString(),
		Type:      mediaType,
		Title:     title,
		Plot:      plot,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Normalize trims text fields and drops blank list entries.
func (m *Media) Normalize() {
	m.Title = strings.TrimSpace(m.Title)
	m.Plot = strings.TrimSpace(m.Plot)
	m.Type = MediaType(strings.ToLower(strings.TrimSpace(string(m.Type))))
	m.Genres = cleanList(m.Genres)
	m.Cast = cleanList(m.Cast)
	m.Directors = cleanList(m.Directors)
	m.Writers = cleanList(m.Writers)
	m.Languages = cleanList(m.Languages)
	m.Countries = cleanList(m.Countries)
	if m.Sport != nil {
		m.Sport.Teams = cleanList(m.Sport.Teams)
	}
	if m.News != nil {
		m.News.Tags = cleanList(m.News.Tags)
	}
}

func (m *Media) Validate() error {
	if m.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if m.Plot == "" {
		return fmt.Errorf("%w: plot is required", ErrInvalidInput)
	}
	if !m.Type.Valid() {
		return fmt.Errorf("%w: unknown media type %q", ErrInvalidInput, m.Type)
	}
	if m.IMDb.Rating < 0 || m.IMDb.Rating > 10 {
		return fmt.Errorf("%w: rating must be between 0 and 10", ErrInvalidInput)
	}
	if m.IMDb.Votes < 0 {
		return fmt.Errorf("%w: votes must not be negative", ErrInvalidInput)
	}
	if m.Sport != nil && m.Sport.StartTime != nil && m.Sport.EndTime != nil && m.Sport.EndTime.Before(*m.Sport.StartTime) {
		return fmt.Errorf("%w: sport end time is before start time", ErrInvalidInput)
	}
	return nil
}

// The Mark* transitions other than ready drop Playback: a new ingest removes
// the previous HLS output before encoding, so the old URLs would dangle.

func (m *Media) MarkIngestPending() {
	m.IngestStatus = IngestStatusPending
	m.IngestError = ""
	m.Playback = nil
}

func (m *Media) MarkIngestProcessing() {
	m.IngestStatus = IngestStatusProcessing
	m.IngestError = ""
	m.Playback = nil
}

func (m *Media) MarkIngestReady(playback *TranscodeResult) {
	m.IngestStatus = IngestStatusReady
	m.IngestError = ""
	m.Playback = playback
}

func (m *Media) MarkIngestFailed(err error) {
	m.IngestStatus = IngestStatusFailed
	m.IngestError = err.Error()
	m.Playback = nil
}

func (m *Media) IsPlayable() bool {
	return m.Playback != nil && m.Playback.MasterPlaylist != ""
}

// IsLive reports whether a sport event is streaming at now.
func (m *Media) IsLive(now time.Time) bool {
	if m.Type != MediaTypeSport || m.Sport == nil || !m.IsPlayable() {
		return false
	}
	if m.Sport.StartTime == nil || m.Sport.EndTime == nil {
		return false
	}
	return !now.Before(*m.Sport.StartTime) && now.Before(*m.Sport.EndTime)
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
