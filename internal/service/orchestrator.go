package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/infrastructure/logger"
	"github.com/bnema/mediahub/internal/infrastructure/metrics"
	"github.com/bnema/mediahub/internal/port"
)

// Orchestrator fans one source out to every ladder rendition and writes the
// master manifest once all of them succeeded.
type Orchestrator struct {
	encoder port.RenditionEncoder
	ladder  []domain.RenditionSpec
	slots   *semaphore.Weighted
	metrics *metrics.Metrics
}

type OrchestratorOption func(*Orchestrator)

// WithEncodeLimit caps concurrent encoder processes across all runs. n <= 0 means unbounded.
func WithEncodeLimit(n int) OrchestratorOption {
	return func(o *Orchestrator) {
		if n > 0 {
			o.slots = semaphore.NewWeighted(int64(n))
		} else {
			o.slots = nil
		}
	}
}

func WithMetrics(m *metrics.Metrics) OrchestratorOption {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

func NewOrchestrator(encoder port.RenditionEncoder, ladder []domain.RenditionSpec, opts ...OrchestratorOption) (*Orchestrator, error) {
	if encoder == nil {
		return nil, errors.New("orchestrator: encoder is required")
	}
	if err := domain.ValidateLadder(ladder); err != nil {
		return nil, err
	}
	o := &Orchestrator{
		encoder: encoder,
		ladder:  slices.Clone(ladder),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

func (o *Orchestrator) Ladder() []domain.RenditionSpec {
	return slices.Clone(o.ladder)
}

// Run encodes every rendition concurrently and blocks until each job is
// terminal, even when some fail early. On any failure the returned error is a
// *domain.IngestionFailedError listing all failed renditions and no manifest is
// written.
func (o *Orchestrator) Run(ctx context.Context, source, outputRoot, stem string, src domain.Dimensions) (*domain.TranscodeResult, error) {
	jobs := make([]*domain.RenditionJob, len(o.ladder))
	var wg sync.WaitGroup
	for i, spec := range o.ladder {
		job := domain.NewRenditionJob(spec, source, outputRoot)
		jobs[i] = job
		wg.Add(1)
		go func() {
			defer wg.Done()
			o.runJob(ctx, job, stem)
		}()
	}
	wg.Wait()

	var failures []*domain.EncodingFailedError
	for _, job := range jobs {
		if job.State != domain.JobStateSucceeded {
			failures = append(failures, asEncodingFailed(job.Spec.Name, job.Err))
		}
	}
	if len(failures) > 0 {
		return nil, &domain.IngestionFailedError{Failures: failures}
	}

	master := filepath.Join(outputRoot, filepath.FromSlash(domain.MasterPlaylistPath()))
	if err := os.MkdirAll(filepath.Dir(master), 0755); err != nil {
		return nil, fmt.Errorf("create hls directory: %w", err)
	}
	if err := writeFileAtomic(master, domain.BuildMasterManifest(o.ladder, stem, src)); err != nil {
		return nil, fmt.Errorf("write master manifest: %w", err)
	}

	result := domain.NewTranscodeResult(o.ladder, stem)
	for _, job := range jobs {
		result.Playlists[job.Spec.Name] = job.Playlist
	}
	return result, nil
}

func (o *Orchestrator) runJob(ctx context.Context, job *domain.RenditionJob, stem string) {
	name := job.Spec.Name
	if err := job.Start(); err != nil {
		logger.Error.Printf("rendition %s: %v", name, err)
		return
	}
	fail := func(err error) {
		if ferr := job.Fail(asEncodingFailed(name, err)); ferr != nil {
			logger.Error.Printf("rendition %s: %v", name, ferr)
		}
	}

	if o.slots != nil {
		waitStart := time.Now()
		if err := o.slots.Acquire(ctx, 1); err != nil {
			fail(fmt.Errorf("waiting for encode slot: %w", err))
			return
		}
		defer o.slots.Release(1)
		o.metrics.ObserveSlotWait(time.Since(waitStart))
	}
	// Acquire may succeed on an already cancelled context.
	if err := ctx.Err(); err != nil {
		fail(err)
		return
	}

	o.metrics.RenditionStarted()
	defer o.metrics.RenditionFinished()

	start := time.Now()
	playlist, err := o.encoder.EncodeRendition(ctx, port.RenditionRequest{
		InputPath:  job.InputPath,
		OutputRoot: job.OutputRoot,
		Stem:       stem,
		Spec:       job.Spec,
	})
	o.metrics.ObserveRendition(name, err, time.Since(start))
	if err != nil {
		logger.Error.Printf("rendition %s failed: %v", name, err)
		fail(err)
		return
	}
	logger.Info.Printf("rendition %s done in %s", name, time.Since(start).Round(time.Millisecond))
	if err := job.Succeed(playlist); err != nil {
		logger.Error.Printf("rendition %s: %v", name, err)
	}
}

func asEncodingFailed(rendition string, err error) *domain.EncodingFailedError {
	if err == nil {
		err = errors.New("rendition did not complete")
	}
	var ef *domain.EncodingFailedError
	if errors.As(err, &ef) && ef.Rendition == rendition {
		return ef
	}
	return &domain.EncodingFailedError{Rendition: rendition, Cause: err}
}

// writeFileAtomic writes to a sibling temp file and renames it over path so
// readers never observe a partial file.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
