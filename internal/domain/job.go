package domain

import (
	"database/sql"
	"time"
)

type JobStatus string

const (
	JobStatusPending JobStatus = "pending"
	JobStatusRunning JobStatus = "running"
	JobStatusDone    JobStatus = "done"
	JobStatusFailed  JobStatus = "failed"
)

// IngestJob is a queued request to transcode one uploaded source into HLS.
type IngestJob struct {
	ID           int64        `json:"id"`
	MediaID      string       `json:"mediaId"`
	SourcePath   string       `json:"-"`
	Status       JobStatus    `json:"status"`
	ErrorMessage string       `json:"error,omitempty"`
	Attempts     int64        `json:"attempts"`
	CreatedAt    time.Time    `json:"createdAt"`
	StartedAt    sql.NullTime `json:"-"`
	CompletedAt  sql.NullTime `json:"-"`
}

func (j *IngestJob) Terminal() bool {
	return j.Status == JobStatusDone || j.Status == JobStatusFailed
}
