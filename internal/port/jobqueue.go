package port

import (
	"context"

	"github.com/bnema/mediahub/internal/domain"
)

type JobQueue interface {
	Enqueue(ctx context.Context, mediaID, sourcePath string) (*domain.IngestJob, error)
	// Claim returns nil, nil when no job is pending.
	Claim(ctx context.Context) (*domain.IngestJob, error)
	Get(ctx context.Context, id int64) (*domain.IngestJob, error)
	Complete(ctx context.Context, jobID int64) error
	Fail(ctx context.Context, jobID int64, errMsg string) error
	ResetStalled(ctx context.Context) (int64, error)
}
