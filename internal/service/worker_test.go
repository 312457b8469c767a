package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/port/mocks"
)

type recordingProcessor struct {
	mu   sync.Mutex
	seen []int64
	err  error
	done chan struct{}
}

func (p *recordingProcessor) Process(_ context.Context, job *domain.IngestJob) error {
	p.mu.Lock()
	p.seen = append(p.seen, job.ID)
	p.mu.Unlock()
	if p.done != nil {
		close(p.done)
	}
	return p.err
}

func runPoolUntil(t *testing.T, wp *WorkerPool, done <-chan struct{}) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	wp.pollInterval = 5 * time.Millisecond
	wp.Start(ctx)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("job was not processed")
	}
	// Let the completion bookkeeping run before shutting down.
	time.Sleep(20 * time.Millisecond)
	cancel()
	wp.Wait()
}

func TestWorkerPool_CompletesJob(t *testing.T) {
	queue := mocks.NewJobQueueMock(t)
	job := &domain.IngestJob{ID: 7, MediaID: "m1", SourcePath: "/tmp/x.mp4"}

	queue.EXPECT().ResetStalled(mock.Anything).Return(int64(1), nil).Once()
	queue.EXPECT().Claim(mock.Anything).Return(job, nil).Once()
	queue.EXPECT().Claim(mock.Anything).Return(nil, nil).Maybe()
	queue.EXPECT().Complete(mock.Anything, int64(7)).Return(nil).Once()

	proc := &recordingProcessor{done: make(chan struct{})}
	runPoolUntil(t, NewWorkerPool(queue, proc, 1), proc.done)

	assert.Equal(t, []int64{7}, proc.seen)
}

func TestWorkerPool_FailsJob(t *testing.T) {
	queue := mocks.NewJobQueueMock(t)
	job := &domain.IngestJob{ID: 9, MediaID: "m1"}

	queue.EXPECT().ResetStalled(mock.Anything).Return(int64(0), nil).Once()
	queue.EXPECT().Claim(mock.Anything).Return(job, nil).Once()
	queue.EXPECT().Claim(mock.Anything).Return(nil, nil).Maybe()
	queue.EXPECT().Fail(mock.Anything, int64(9), "encode 480p: exit status 1").Return(nil).Once()

	proc := &recordingProcessor{
		done: make(chan struct{}),
		err:  &domain.EncodingFailedError{Rendition: "480p", Cause: errors.New("exit status 1")},
	}
	runPoolUntil(t, NewWorkerPool(queue, proc, 1), proc.done)
}

func TestWorkerPool_ClaimErrorBacksOff(t *testing.T) {
	queue := mocks.NewJobQueueMock(t)
	job := &domain.IngestJob{ID: 3, MediaID: "m1"}

	queue.EXPECT().ResetStalled(mock.Anything).Return(int64(0), errors.New("db locked")).Once()
	queue.EXPECT().Claim(mock.Anything).Return(nil, errors.New("db locked")).Once()
	queue.EXPECT().Claim(mock.Anything).Return(job, nil).Once()
	queue.EXPECT().Claim(mock.Anything).Return(nil, nil).Maybe()
	queue.EXPECT().Complete(mock.Anything, int64(3)).Return(nil).Once()

	proc := &recordingProcessor{done: make(chan struct{})}
	wp := NewWorkerPool(queue, proc, 1)
	wp.claimBackoff.Min = time.Millisecond
	runPoolUntil(t, wp, proc.done)
}

func TestWorkerPool_StopsOnCancel(t *testing.T) {
	queue := mocks.NewJobQueueMock(t)
	queue.EXPECT().ResetStalled(mock.Anything).Return(int64(0), nil).Once()
	queue.EXPECT().Claim(mock.Anything).Return(nil, nil).Maybe()

	wp := NewWorkerPool(queue, &recordingProcessor{}, 3)
	ctx, cancel := context.WithCancel(context.Background())
	wp.Start(ctx)
	cancel()

	stopped := make(chan struct{})
	go func() {
		wp.Wait()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("workers did not stop")
	}
}
