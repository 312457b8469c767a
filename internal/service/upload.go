package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/infrastructure/logger"
	"github.com/bnema/mediahub/internal/port"
)

const (
	// PublicRoute is the URL prefix under which DataDir/public/uploads is served.
	PublicRoute = "/api/v1/public/uploads"
	streamStem  = "stream"
)

// UploadService stores incoming files, queues video ingestion and runs it for
// claimed jobs.
type UploadService struct {
	store      port.MediaStore
	jobs       port.JobQueue
	ingest     *IngestCoordinator
	events     EventPublisher
	dataDir    string
	publicBase string
}

// NewUploadService wires uploads. publicBase is an optional absolute URL prefix
// for playback and poster links; empty means site-relative links.
func NewUploadService(store port.MediaStore, jobs port.JobQueue, ingest *IngestCoordinator, events EventPublisher, dataDir, publicBase string) *UploadService {
	return &UploadService{
		store:      store,
		jobs:       jobs,
		ingest:     ingest,
		events:     events,
		dataDir:    dataDir,
		publicBase: strings.TrimSuffix(publicBase, "/"),
	}
}

// PublicUploadsDir is the directory served under PublicRoute.
func (s *UploadService) PublicUploadsDir() string {
	return filepath.Join(s.dataDir, "public", "uploads")
}

func (s *UploadService) tmpDir() string {
	return filepath.Join(s.dataDir, "uploads", "tmp")
}

func (s *UploadService) videoDir(mediaID string) string {
	return filepath.Join(s.PublicUploadsDir(), "videos", mediaID)
}

func (s *UploadService) posterDir(mediaID string) string {
	return filepath.Join(s.PublicUploadsDir(), "posters", mediaID)
}

func (s *UploadService) publicURL(parts ...string) string {
	return s.publicBase + PublicRoute + "/" + strings.Join(parts, "/")
}

// AcceptVideo stores the upload under a generated name and queues ingestion.
func (s *UploadService) AcceptVideo(ctx context.Context, mediaID string, r io.Reader, filename string) (*domain.IngestJob, error) {
	media, err := s.store.Get(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	sourcePath, err := s.saveFile(s.tmpDir(), r, filename)
	if err != nil {
		return nil, err
	}

	media.MarkIngestPending()
	if err := s.store.UpdateIngest(ctx, media); err != nil {
		os.Remove(sourcePath)
		return nil, fmt.Errorf("mark media pending: %w", err)
	}

	job, err := s.jobs.Enqueue(ctx, media.ID, sourcePath)
	if err != nil {
		os.Remove(sourcePath)
		return nil, fmt.Errorf("enqueue ingest job: %w", err)
	}

	logger.Info.Printf("video queued: media=%s job=%d file=%s", media.ID, job.ID, logger.SanitizeForLog(filename))
	s.publish(media.ID, Event{Type: EventTypeStatus, Status: domain.IngestStatusPending, JobID: job.ID})
	return job, nil
}

// AcceptPoster replaces the poster of a media record and returns its public URL.
func (s *UploadService) AcceptPoster(ctx context.Context, mediaID string, r io.Reader, filename string) (string, error) {
	if _, err := s.store.Get(ctx, mediaID); err != nil {
		return "", err
	}

	dir := s.posterDir(mediaID)
	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("remove previous poster: %w", err)
	}
	path, err := s.saveFile(dir, r, filename)
	if err != nil {
		return "", err
	}

	url := s.publicURL("posters", mediaID, filepath.Base(path))
	if err := s.store.UpdatePoster(ctx, mediaID, url); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("record poster: %w", err)
	}
	return url, nil
}

// Process runs one claimed ingest job to completion and records the outcome on
// the media record. The returned error is the ingestion failure, if any.
func (s *UploadService) Process(ctx context.Context, job *domain.IngestJob) error {
	// The outcome must be persisted even when ctx was cancelled mid-ingest.
	persistCtx := context.WithoutCancel(ctx)

	media, err := s.store.Get(persistCtx, job.MediaID)
	if err != nil {
		if rmErr := os.Remove(job.SourcePath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			logger.Warn.Printf("remove orphaned source %s: %v", job.SourcePath, rmErr)
		}
		return fmt.Errorf("load media %s: %w", job.MediaID, err)
	}

	media.MarkIngestProcessing()
	if err := s.store.UpdateIngest(persistCtx, media); err != nil {
		logger.Error.Printf("mark media %s processing: %v", media.ID, err)
	}
	s.publish(media.ID, Event{Type: EventTypeStatus, Status: domain.IngestStatusProcessing, JobID: job.ID})

	result, ingestErr := s.ingest.Ingest(ctx, job.SourcePath, s.videoDir(media.ID), streamStem)
	if ingestErr != nil {
		media.MarkIngestFailed(ingestErr)
		if err := s.store.UpdateIngest(persistCtx, media); err != nil {
			logger.Error.Printf("mark media %s failed: %v", media.ID, err)
		}
		s.publish(media.ID, Event{Type: EventTypeStatus, Status: domain.IngestStatusFailed, Message: ingestErr.Error(), JobID: job.ID})
		return ingestErr
	}

	playback := result.WithBase(s.publicURL("videos", media.ID))
	media.MarkIngestReady(playback)
	if err := s.store.UpdateIngest(persistCtx, media); err != nil {
		return fmt.Errorf("record playback for %s: %w", media.ID, err)
	}
	s.publish(media.ID, Event{Type: EventTypeStatus, Status: domain.IngestStatusReady, JobID: job.ID, Playback: playback})
	return nil
}

// RemoveMediaFiles deletes the HLS output and posters of a media record.
func (s *UploadService) RemoveMediaFiles(mediaID string) {
	videoDir := s.videoDir(mediaID)
	for _, p := range []string{videoDir, videoDir + ".lock", s.posterDir(mediaID)} {
		if err := os.RemoveAll(p); err != nil {
			logger.Warn.Printf("remove %s: %v", p, err)
		}
	}
}

func (s *UploadService) saveFile(dir string, r io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	path := filepath.Join(dir, uuid.NewString()+safeExt(filename))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path, nil
}

// safeExt keeps a short alphanumeric extension from a client filename.
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) < 2 || len(ext) > 8 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

func (s *UploadService) publish(mediaID string, event Event) {
	if s.events != nil {
		s.events.Publish(mediaID, event)
	}
}
