package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/port"
)

const jobColumns = `id, media_id, source_path, status, error_message, attempts, created_at, started_at, completed_at`

type JobQueue struct {
	db  *sql.DB
	now func() time.Time
}

func NewJobQueue(store *Store) *JobQueue {
	return &JobQueue{
		db:  store.db,
		now: time.Now,
	}
}

func scanJob(sc rowScanner) (*domain.IngestJob, error) {
	var (
		j           domain.IngestJob
		status      string
		createdAt   int64
		startedAt   sql.NullInt64
		completedAt sql.NullInt64
	)
	err := sc.Scan(&j.ID, &j.MediaID, &j.SourcePath, &status, &j.ErrorMessage, &j.Attempts,
		&createdAt, &startedAt, &completedAt)
	if err != nil {
		return nil, err
	}
	j.Status = domain.JobStatus(status)
	j.CreatedAt = fromMillis(createdAt)
	j.StartedAt = nullTime(startedAt)
	j.CompletedAt = nullTime(completedAt)
	return &j, nil
}

func (q *JobQueue) Enqueue(ctx context.Context, mediaID, sourcePath string) (*domain.IngestJob, error) {
	j, err := scanJob(q.db.QueryRowContext(ctx, `INSERT INTO ingest_jobs (media_id, source_path, status, created_at)
		VALUES (?, ?, ?, ?) RETURNING `+jobColumns,
		mediaID, sourcePath, string(domain.JobStatusPending), toMillis(q.now())))
	if isForeignKeyViolation(err) {
		return nil, domain.ErrNotFound
	}
	return j, err
}

func (q *JobQueue) Claim(ctx context.Context) (*domain.IngestJob, error) {
	j, err := scanJob(q.db.QueryRowContext(ctx, `UPDATE ingest_jobs
		SET status = 'running', attempts = attempts + 1, started_at = ?
		WHERE id = (SELECT id FROM ingest_jobs WHERE status = 'pending' ORDER BY id LIMIT 1)
		RETURNING `+jobColumns, toMillis(q.now())))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return j, err
}

func (q *JobQueue) Get(ctx context.Context, id int64) (*domain.IngestJob, error) {
	j, err := scanJob(q.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM ingest_jobs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return j, err
}

func (q *JobQueue) Complete(ctx context.Context, jobID int64) error {
	return affectedOne(q.db.ExecContext(ctx, `UPDATE ingest_jobs
		SET status = 'done', error_message = '', completed_at = ? WHERE id = ?`,
		toMillis(q.now()), jobID))
}

func (q *JobQueue) Fail(ctx context.Context, jobID int64, errMsg string) error {
	return affectedOne(q.db.ExecContext(ctx, `UPDATE ingest_jobs
		SET status = 'failed', error_message = ?, completed_at = ? WHERE id = ?`,
		errMsg, toMillis(q.now()), jobID))
}

// ResetStalled returns jobs left running by a previous process to the queue.
func (q *JobQueue) ResetStalled(ctx context.Context) (int64, error) {
	res, err := q.db.ExecContext(ctx, `UPDATE ingest_jobs
		SET status = 'pending', started_at = NULL WHERE status = 'running'`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

var _ port.JobQueue = (*JobQueue)(nil)
