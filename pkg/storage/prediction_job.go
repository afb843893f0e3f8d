package storage

import (
	"context"
	"dgaintel/pkg/domain"
	"time"
)

// PredictionJobUpdates describes the fields applied to a prediction job when a
// processing attempt finishes.
type PredictionJobUpdates struct {
	// Status is the new status to set for the job.
	Status domain.JobStatus
	// Predictions, when provided, replaces the stored predictions.
	Predictions *[]domain.Prediction
	// LastError, when provided, sets the last error text. An empty string value
	// clears it.
	LastError *string
	// MaxAttempts guards a Failed status: the job is only marked Failed once the
	// attempts after increment reach MaxAttempts; before that it stays Pending.
	// A value <= 0 disables the guard.
	MaxAttempts int
}

// PredictionJobsCursor is a keyset position in the newest-first job listing.
// Jobs sharing a creation time are told apart by ID.
type PredictionJobsCursor struct {
	CreatedAt time.Time
	ID        domain.JobID
}

// IsZero reports whether the cursor points at the start of the listing.
func (c PredictionJobsCursor) IsZero() bool { return c.CreatedAt.IsZero() }

// PredictionJobs is a page of prediction jobs.
type PredictionJobs struct {
	Jobs []domain.Job
	// NextCursor is the position of the last returned job, nil on the last page.
	NextCursor *PredictionJobsCursor
}

// PredictionJobStorage persists asynchronous prediction jobs. Deletion is soft:
// deleted jobs are invisible to every read.
type PredictionJobStorage interface {
	// StorePredictionJob inserts a job and returns it with generated fields.
	StorePredictionJob(ctx context.Context, job domain.Job) (*domain.Job, error)
	// PredictionJobByID returns the job owned by subject, or nil when there is
	// none. An empty subject matches any owner.
	PredictionJobByID(ctx context.Context, subject string, id domain.JobID) (*domain.Job, error)
	// SubjectPredictionJobs returns jobs of subject positioned after cursor
	// (zero means from the newest), newest first.
	SubjectPredictionJobs(ctx context.Context, subject string, cursor PredictionJobsCursor, limit uint) (PredictionJobs, error)
	// UpdatePredictionJob applies updates to a job, increments its attempts and
	// returns the updated job, or nil when it does not exist.
	UpdatePredictionJob(ctx context.Context, id domain.JobID, updates PredictionJobUpdates) (*domain.Job, error)
	// DeletePredictionJob soft-deletes the job owned by subject and returns it,
	// or nil when it was not found.
	DeletePredictionJob(ctx context.Context, subject string, id domain.JobID) (*domain.Job, error)
}
