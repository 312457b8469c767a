package http

import (
	"net/http"

	"github.com/bnema/mediahub/internal/domain"
)

func (s *Server) handleActiveSliders(w http.ResponseWriter, r *http.Request) {
	sliders, err := s.sliders.Active(r.Context(), domain.PageType(r.URL.Query().Get("page")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSliders(w, sliders)
}

func (s *Server) handleListSliders(w http.ResponseWriter, r *http.Request) {
	sliders, err := s.sliders.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSliders(w, sliders)
}

func writeSliders(w http.ResponseWriter, sliders []*domain.Slider) {
	if sliders == nil {
		sliders = []*domain.Slider{}
	}
	writeData(w, http.StatusOK, sliders)
}

func (s *Server) handleCreateSlider(w http.ResponseWriter, r *http.Request) {
	in := domain.Slider{Active: true}
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	slider, err := s.sliders.Create(r.Context(), &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, slider)
}

func (s *Server) handleUpdateSlider(w http.ResponseWriter, r *http.Request) {
	var in domain.Slider
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	slider, err := s.sliders.Update(r.Context(), r.PathValue("id"), &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, slider)
}

func (s *Server) handleDeleteSlider(w http.ResponseWriter, r *http.Request) {
	if err := s.sliders.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "slider deleted")
}
