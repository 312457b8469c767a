package http

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"github.com/bnema/mediahub/internal/adapter/http/templates"
	"github.com/bnema/mediahub/internal/domain"
)

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	media, err := s.catalog.Get(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		templ.Handler(templates.NotFound(), templ.WithStatus(http.StatusNotFound)).ServeHTTP(w, r)
		return
	case err != nil:
		writeError(w, r, err)
		return
	}
	templ.Handler(templates.Watch(media)).ServeHTTP(w, r)
}
