package domain

import "time"

type SortOrder string

const (
	SortLatest    SortOrder = "latest"
	SortRating    SortOrder = "rating"
	SortVotes     SortOrder = "votes"
	SortViews     SortOrder = "views"
	SortStartTime SortOrder = "start_time"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// MediaQuery filters a catalog listing. Zero fields do not filter.
type MediaQuery struct {
	Type          MediaType
	Genre         string
	Language      string
	Year          int
	Text          string
	MinRating     float64
	MinVotes      int
	Breaking      bool
	Featured      bool
	Playable      bool
	LiveAt        *time.Time
	UpcomingAfter *time.Time
	ExcludeID     string
	Sort          SortOrder
	Page          int
	Limit         int
}

// Normalize clamps paging and fills the default sort.
func (q *MediaQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageLimit
	}
	if q.Limit > MaxPageLimit {
		q.Limit = MaxPageLimit
	}
	if q.Sort == "" {
		q.Sort = SortLatest
	}
}

func (q *MediaQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
