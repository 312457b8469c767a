package domain

import "time"

// ListKind names a per-user engagement list.
type ListKind string

const (
	ListFavorites  ListKind = "favorites"
	ListLikes      ListKind = "likes"
	ListHistory    ListKind = "history"
	ListWatchLater ListKind = "watch_later"
)

func (k ListKind) Valid() bool {
	switch k {
	case ListFavorites, ListLikes, ListHistory, ListWatchLater:
		return true
	}
	return false
}

// Refreshes reports whether adding an existing entry updates it instead of failing.
func (k ListKind) Refreshes() bool {
	return k == ListHistory
}

// Clearable reports whether the whole list may be wiped by its owner.
func (k ListKind) Clearable() bool {
	return k == ListHistory || k == ListWatchLater
}

type Engagement struct {
	UserID    string    `json:"userId"`
	MediaID   string    `json:"mediaId"`
	Kind      ListKind  `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Media     *Media    `json:"media,omitempty"`
}
