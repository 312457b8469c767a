package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/infrastructure/logger"
)

type mediaPage struct {
	Media []*domain.Media `json:"media"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

var sortOrders = map[domain.SortOrder]bool{
	domain.SortLatest:    true,
	domain.SortRating:    true,
	domain.SortVotes:     true,
	domain.SortViews:     true,
	domain.SortStartTime: true,
}

func queryMediaType(r *http.Request) (domain.MediaType, error) {
	t := domain.MediaType(strings.ToLower(r.URL.Query().Get("type")))
	if t != "" && !t.Valid() {
		return "", fmt.Errorf("%w: unknown media type %q", domain.ErrInvalidInput, t)
	}
	return t, nil
}

// parseMediaQuery reads the catalog listing filters from the query string.
func parseMediaQuery(r *http.Request) (domain.MediaQuery, error) {
	qs := r.URL.Query()
	q := domain.MediaQuery{
		Genre:    qs.Get("genre"),
		Language: qs.Get("language"),
		Text:     strings.TrimSpace(qs.Get("q")),
		Sort:     domain.SortOrder(qs.Get("sort")),
		Breaking: queryBool(r, "breaking"),
		Featured: queryBool(r, "featured"),
		Playable: queryBool(r, "playable"),
	}
	if q.Sort != "" && !sortOrders[q.Sort] {
		return q, fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, q.Sort)
	}

	var err error
	if q.Type, err = queryMediaType(r); err != nil {
		return q, err
	}
	if q.Year, err = queryInt(r, "year", 0); err != nil {
		return q, err
	}
	if q.MinRating, err = queryFloat(r, "minRating"); err != nil {
		return q, err
	}
	if q.MinVotes, err = queryInt(r, "minVotes", 0); err != nil {
		return q, err
	}
	if q.Page, err = queryInt(r, "page", 1); err != nil {
		return q, err
	}
	if q.Limit, err = queryInt(r, "limit", domain.DefaultPageLimit); err != nil {
		return q, err
	}
	q.Normalize()
	return q, nil
}

func (s *Server) handleListMedia(w http.ResponseWriter, r *http.Request) {
	q, err := parseMediaQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	media, err := s.catalog.List(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if media == nil {
		media = []*domain.Media{}
	}
	writeData(w, http.StatusOK, mediaPage{Media: media, Page: q.Page, Limit: q.Limit})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", domain.DefaultPageLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	result, err := s.catalog.Search(r.Context(), strings.TrimSpace(r.URL.Query().Get("q")), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, result)
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	mediaType, err := queryMediaType(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", domain.DefaultPageLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.writeMediaList(w, r)(s.catalog.Latest(r.Context(), mediaType, limit))
}

func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.writeMediaList(w, r)(s.catalog.Trending(r.Context(), limit))
}

func (s *Server) handlePopular(w http.ResponseWriter, r *http.Request) {
	minVotes, err := queryInt(r, "minVotes", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", domain.DefaultPageLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.writeMediaList(w, r)(s.catalog.Popular(r.Context(), minVotes, limit))
}

func (s *Server) handleLiveSports(w http.ResponseWriter, r *http.Request) {
	s.writeMediaList(w, r)(s.catalog.LiveSports(r.Context()))
}

func (s *Server) handleUpcomingSports(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", domain.DefaultPageLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.writeMediaList(w, r)(s.catalog.UpcomingSports(r.Context(), limit))
}

func (s *Server) handleBreakingNews(w http.ResponseWriter, r *http.Request) {
	s.writeMediaList(w, r)(s.catalog.BreakingNews(r.Context()))
}

func (s *Server) handleRelated(w http.ResponseWriter, r *http.Request) {
	s.writeMediaList(w, r)(s.catalog.Related(r.Context(), r.PathValue("id")))
}

// writeMediaList adapts a catalog call returning (list, error) into a response.
func (s *Server) writeMediaList(w http.ResponseWriter, r *http.Request) func([]*domain.Media, error) {
	return func(media []*domain.Media, err error) {
		if err != nil {
			writeError(w, r, err)
			return
		}
		if media == nil {
			media = []*domain.Media{}
		}
		writeData(w, http.StatusOK, media)
	}
}

func (s *Server) handleGenres(w http.ResponseWriter, r *http.Request) {
	mediaType, err := queryMediaType(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	genres, err := s.catalog.Genres(r.Context(), mediaType)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if genres == nil {
		genres = []string{}
	}
	writeData(w, http.StatusOK, genres)
}

func (s *Server) handleGetMedia(w http.ResponseWriter, r *http.Request) {
	media, err := s.catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, media)
}

func (s *Server) handleRecordView(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.RecordView(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "view recorded")
}

func (s *Server) handleLikeCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.engagement.LikeCount(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, map[string]int64{"likes": count})
}

func (s *Server) handleCreateMedia(w http.ResponseWriter, r *http.Request) {
	var in domain.Media
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	media, err := s.catalog.Create(r.Context(), &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, media)
}

func (s *Server) handleUpdateMedia(w http.ResponseWriter, r *http.Request) {
	var in domain.Media
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	media, err := s.catalog.Update(r.Context(), r.PathValue("id"), &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, media)
}

func (s *Server) handleDeleteMedia(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.catalog.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	logger.Info.Printf("media %s deleted by %s", id, currentUser(r).ID)
	writeMessage(w, http.StatusOK, "media deleted")
}
