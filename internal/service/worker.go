package service

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/infrastructure/backoff"
	"github.com/bnema/mediahub/internal/infrastructure/logger"
	"github.com/bnema/mediahub/internal/port"
)

// JobProcessor runs a claimed ingest job.
type JobProcessor interface {
	Process(ctx context.Context, job *domain.IngestJob) error
}

type WorkerPool struct {
	jobQueue     port.JobQueue
	processor    JobProcessor
	workers      int
	pollInterval time.Duration
	claimBackoff *backoff.Backoff
	wg           sync.WaitGroup
}

func NewWorkerPool(jobQueue port.JobQueue, processor JobProcessor, workers int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	return &WorkerPool{
		jobQueue:     jobQueue,
		processor:    processor,
		workers:      workers,
		pollInterval: 500 * time.Millisecond,
		claimBackoff: backoff.New(500*time.Millisecond, 30*time.Second, 2),
	}
}

// Start resets jobs left running by a previous process and launches the
// workers. They stop when ctx is done; Wait blocks until they have.
func (wp *WorkerPool) Start(ctx context.Context) {
	n, err := wp.jobQueue.ResetStalled(ctx)
	if err != nil {
		logger.Error.Printf("failed to reset stalled jobs: %v", err)
	} else if n > 0 {
		logger.Info.Printf("reset %d stalled ingest jobs", n)
	}

	for i := range wp.workers {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			wp.runWorker(ctx, i)
		}()
	}
	logger.Info.Printf("started %d workers", wp.workers)
}

func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

func (wp *WorkerPool) runWorker(ctx context.Context, id int) {
	failures := 0
	for {
		if ctx.Err() != nil {
			logger.Info.Printf("worker %d shutting down", id)
			return
		}

		job, err := wp.jobQueue.Claim(ctx)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			failures++
			logger.Error.Printf("worker %d: failed to claim job: %v", id, err)
			_ = wp.claimBackoff.Wait(ctx, failures)
			continue
		}
		failures = 0

		if job == nil {
			wp.sleep(ctx, wp.pollInterval)
			continue
		}

		logger.Info.Printf("worker %d: processing job %d (media=%s, attempt=%d)", id, job.ID, job.MediaID, job.Attempts)
		wp.processJob(ctx, job)
	}
}

func (wp *WorkerPool) processJob(ctx context.Context, job *domain.IngestJob) {
	err := wp.processor.Process(ctx, job)

	// Job bookkeeping must land even during shutdown.
	doneCtx := context.WithoutCancel(ctx)
	if err != nil {
		logger.Error.Printf("job %d failed: %v", job.ID, err)
		if failErr := wp.jobQueue.Fail(doneCtx, job.ID, err.Error()); failErr != nil {
			logger.Error.Printf("job %d: record failure: %v", job.ID, failErr)
		}
		return
	}

	if err := wp.jobQueue.Complete(doneCtx, job.ID); err != nil {
		logger.Error.Printf("job %d: record completion: %v", job.ID, err)
		return
	}
	logger.Info.Printf("job %d completed", job.ID)
}

func (wp *WorkerPool) sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
