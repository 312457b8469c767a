package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/bnema/mediahub/internal/adapter/http/validation"
	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/infrastructure/logger"
)

const (
	multipartMemory   = 32 << 20
	multipartOverhead = 1 << 20
)

type uploadResponse struct {
	Job       *domain.IngestJob `json:"job,omitempty"`
	PosterURL string            `json:"posterUrl,omitempty"`
}

// handleUpload accepts a multipart form with a "video" and/or a "poster" file.
// The poster is stored right away, the video is queued for ingestion.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	r.Body = http.MaxBytesReader(w, r.Body, s.maxVideoBytes+s.maxImageBytes+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, err)
			return
		}
		writeError(w, r, fmt.Errorf("%w: malformed multipart form", domain.ErrInvalidInput))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logger.Warn.Printf("remove multipart temp files: %v", err)
		}
	}()

	video, videoHeader, err := formFile(r, "video")
	if err != nil {
		writeError(w, r, err)
		return
	}
	poster, posterHeader, err := formFile(r, "poster")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if video == nil && poster == nil {
		writeError(w, r, fmt.Errorf("%w: a video or poster file is required", domain.ErrInvalidInput))
		return
	}
	if video != nil {
		defer video.Close()
		if err := checkUpload(video, videoHeader, validation.KindVideo, s.maxVideoBytes); err != nil {
			writeError(w, r, err)
			return
		}
	}
	if poster != nil {
		defer poster.Close()
		if err := checkUpload(poster, posterHeader, validation.KindImage, s.maxImageBytes); err != nil {
			writeError(w, r, err)
			return
		}
	}

	var resp uploadResponse
	if poster != nil {
		url, err := s.uploads.AcceptPoster(r.Context(), id, poster, validation.SanitizeFilename(posterHeader.Filename))
		if err != nil {
			writeError(w, r, err)
			return
		}
		resp.PosterURL = url
	}
	if video != nil {
		job, err := s.uploads.AcceptVideo(r.Context(), id, video, validation.SanitizeFilename(videoHeader.Filename))
		if err != nil {
			writeError(w, r, err)
			return
		}
		resp.Job = job
	}

	status := http.StatusOK
	if resp.Job != nil {
		status = http.StatusAccepted
	}
	writeData(w, status, resp)
}

// formFile returns a nil file when the field is absent.
func formFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	f, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read %s: %v", domain.ErrInvalidInput, field, err)
	}
	return f, header, nil
}

func checkUpload(f multipart.File, header *multipart.FileHeader, kind validation.Kind, limit int64) error {
	if header.Size > limit {
		return &http.MaxBytesError{Limit: limit}
	}
	mimeType, err := validation.Check(f, kind)
	if err != nil {
		logger.Warn.Printf("rejected upload %s: %v", logger.SanitizeForLog(header.Filename), err)
		return err
	}
	logger.Debug.Printf("upload %s detected as %s", logger.SanitizeForLog(header.Filename), mimeType)
	return nil
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: job id must be an integer", domain.ErrInvalidInput))
		return
	}
	job, err := s.jobs.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, job)
}
