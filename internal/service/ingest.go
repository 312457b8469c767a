package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/infrastructure/logger"
	"github.com/bnema/mediahub/internal/infrastructure/metrics"
	"github.com/bnema/mediahub/internal/port"
)

const lockRetryDelay = 200 * time.Millisecond

// IngestCoordinator owns one source file per call: it turns it into an HLS
// ladder under outputDir and removes the source whatever the outcome.
type IngestCoordinator struct {
	orchestrator *Orchestrator
	prober       port.Prober
	locks        *keyedLock
	metrics      *metrics.Metrics
}

// NewIngestCoordinator wires the coordinator. prober and m may be nil.
func NewIngestCoordinator(orchestrator *Orchestrator, prober port.Prober, m *metrics.Metrics) *IngestCoordinator {
	return &IngestCoordinator{
		orchestrator: orchestrator,
		prober:       prober,
		locks:        newKeyedLock(),
		metrics:      m,
	}
}

// Ingest transcodes sourcePath into outputDir/hls. Concurrent calls for the same
// outputDir are serialized, within this process and across processes.
//
// A missing source, or one that is not a regular file, returns
// *domain.SourceNotFoundError without touching the filesystem. On any other failure the partial rendition output is removed.
func (c *IngestCoordinator) Ingest(ctx context.Context, sourcePath, outputDir, stem string) (*domain.TranscodeResult, error) {
	info, err := os.Stat(sourcePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.metrics.IngestionDone("source_missing")
			return nil, &domain.SourceNotFoundError{Path: sourcePath}
		}
		c.discardSource(sourcePath)
		c.metrics.IngestionDone("failed")
		return nil, fmt.Errorf("stat source: %w", err)
	}
	if !info.Mode().IsRegular() {
		c.metrics.IngestionDone("source_missing")
		return nil, &domain.SourceNotFoundError{Path: sourcePath}
	}

	root, err := filepath.Abs(outputDir)
	if err != nil {
		c.discardSource(sourcePath)
		return nil, fmt.Errorf("resolve output directory: %w", err)
	}

	unlock, err := c.lock(ctx, root)
	if err != nil {
		c.discardSource(sourcePath)
		c.metrics.IngestionDone("failed")
		return nil, err
	}
	defer unlock()

	result, err := c.run(ctx, sourcePath, root, stem)
	c.discardSource(sourcePath)
	if err != nil {
		c.cleanupOutput(root)
		c.metrics.IngestionDone("failed")
		logger.Error.Printf("ingestion of %s failed: %v", root, err)
		return nil, err
	}

	c.metrics.IngestionDone("success")
	logger.Info.Printf("ingestion of %s done (%d renditions)", root, len(result.Order))
	return result, nil
}

func (c *IngestCoordinator) run(ctx context.Context, sourcePath, root, stem string) (*domain.TranscodeResult, error) {
	hlsDir := filepath.Join(root, domain.HLSDir)
	if err := os.MkdirAll(hlsDir, 0755); err != nil {
		return nil, fmt.Errorf("create hls directory: %w", err)
	}

	// A previous ingestion into the same root must not stay visible as playable.
	if err := os.Remove(filepath.Join(root, filepath.FromSlash(domain.MasterPlaylistPath()))); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("remove stale master playlist: %w", err)
	}
	for _, spec := range c.orchestrator.Ladder() {
		if err := os.RemoveAll(filepath.Join(root, filepath.FromSlash(domain.RenditionDir(spec.Name)))); err != nil {
			return nil, fmt.Errorf("remove stale rendition %s: %w", spec.Name, err)
		}
	}

	return c.orchestrator.Run(ctx, sourcePath, root, stem, c.probe(ctx, sourcePath))
}

func (c *IngestCoordinator) lock(ctx context.Context, root string) (func(), error) {
	release, err := c.locks.Lock(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("wait for ingestion lock on %s: %w", root, err)
	}

	if err := os.MkdirAll(filepath.Dir(root), 0755); err != nil {
		release()
		return nil, fmt.Errorf("create output parent: %w", err)
	}
	fileLock := flock.New(root + ".lock")
	locked, err := fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		release()
		if err == nil {
			err = errors.New("lock not acquired")
		}
		return nil, fmt.Errorf("acquire file lock on %s: %w", root, err)
	}

	return func() {
		if err := fileLock.Unlock(); err != nil {
			logger.Warn.Printf("release file lock on %s: %v", root, err)
		}
		release()
	}, nil
}

func (c *IngestCoordinator) probe(ctx context.Context, sourcePath string) domain.Dimensions {
	if c.prober == nil {
		return domain.Dimensions{}
	}
	result, err := c.prober.Probe(ctx, sourcePath)
	if err != nil {
		logger.Warn.Printf("probe %s failed, assuming 16:9: %v", sourcePath, err)
		return domain.Dimensions{}
	}
	return result.Dimensions()
}

func (c *IngestCoordinator) discardSource(sourcePath string) {
	if err := os.Remove(sourcePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		c.metrics.CleanupError()
		logger.Warn.Printf("remove source %s: %v", sourcePath, err)
	}
}

// cleanupOutput removes every rendition directory and the master playlist. The
// hls directory itself goes only when nothing else is left in it.
func (c *IngestCoordinator) cleanupOutput(root string) {
	hlsDir := filepath.Join(root, domain.HLSDir)
	for _, spec := range c.orchestrator.Ladder() {
		dir := filepath.Join(root, filepath.FromSlash(domain.RenditionDir(spec.Name)))
		if err := os.RemoveAll(dir); err != nil {
			c.metrics.CleanupError()
			logger.Warn.Printf("remove partial rendition %s: %v", dir, err)
		}
	}
	for _, name := range []string{domain.MasterPlaylistName, domain.MasterPlaylistName + ".tmp"} {
		if err := os.Remove(filepath.Join(hlsDir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			c.metrics.CleanupError()
			logger.Warn.Printf("remove %s: %v", name, err)
		}
	}

	entries, err := os.ReadDir(hlsDir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.metrics.CleanupError()
			logger.Warn.Printf("read %s: %v", hlsDir, err)
		}
		return
	}
	if len(entries) == 0 {
		if err := os.Remove(hlsDir); err != nil {
			c.metrics.CleanupError()
			logger.Warn.Printf("remove %s: %v", hlsDir, err)
		}
	}
}
