package http

import (
	"net/http"
	"strings"

	"github.com/bnema/mediahub/internal/domain"
)

// listKind reads the {kind} path segment. URLs may spell watch_later with a dash.
func listKind(r *http.Request) domain.ListKind {
	return domain.ListKind(strings.ReplaceAll(strings.ToLower(r.PathValue("kind")), "-", "_"))
}

func (s *Server) handleListEngagements(w http.ResponseWriter, r *http.Request) {
	entries, err := s.engagement.List(r.Context(), currentUser(r).ID, listKind(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []*domain.Engagement{}
	}
	writeData(w, http.StatusOK, entries)
}

func (s *Server) handleAddEngagement(w http.ResponseWriter, r *http.Request) {
	var in struct {
		MediaID string `json:"mediaId"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	entry, err := s.engagement.Add(r.Context(), currentUser(r).ID, strings.TrimSpace(in.MediaID), listKind(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, entry)
}

func (s *Server) handleContainsEngagement(w http.ResponseWriter, r *http.Request) {
	found, err := s.engagement.Contains(r.Context(), currentUser(r).ID, r.PathValue("mediaID"), listKind(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"contains": found})
}

func (s *Server) handleRemoveEngagement(w http.ResponseWriter, r *http.Request) {
	if err := s.engagement.Remove(r.Context(), currentUser(r).ID, r.PathValue("mediaID"), listKind(r)); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "removed")
}

func (s *Server) handleClearEngagements(w http.ResponseWriter, r *http.Request) {
	n, err := s.engagement.Clear(r.Context(), currentUser(r).ID, listKind(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, map[string]int64{"removed": n})
}
