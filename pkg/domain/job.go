package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobID uniquely identifies a prediction job.
type JobID uuid.UUID

// NewJobID returns a random job ID.
func NewJobID() JobID { return JobID(uuid.New()) }

// ParseJobID parses the canonical UUID representation of a job ID.
func ParseJobID(s string) (JobID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return JobID{}, err //nolint: wrapcheck
	}

	return JobID(id), nil
}

// String returns the canonical UUID representation.
func (id JobID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler.
func (id JobID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *JobID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// JobStatus represents the lifecycle state of a prediction job.
type JobStatus string

const (
	// JobStatusPending indicates the job is queued and not processed yet.
	JobStatusPending JobStatus = "PENDING"
	// JobStatusCompleted indicates predictions are available.
	JobStatusCompleted JobStatus = "COMPLETED"
	// JobStatusFailed indicates the job gave up; see LastError.
	JobStatusFailed JobStatus = "FAILED"
)

// Job is an asynchronous batch prediction request for a list of domains,
// owned by the authenticated subject that submitted it.
type Job struct {
	// ID is the unique identifier of the job.
	ID JobID `json:"id"`
	// Subject identifies the owner (JWT subject).
	Subject string `json:"-"`

	// Status is the current lifecycle state.
	Status JobStatus `json:"status"`
	// Domains holds the submitted domains in input order.
	Domains []string `json:"domains"`
	// Predictions is index-aligned with Domains once the job is completed.
	Predictions []Prediction `json:"predictions,omitempty"`

	// Attempts is the number of processing attempts so far.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent processing error.
	LastError string `json:"lastError,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks soft deletion; zero means not deleted.
	DeletedAt time.Time `json:"-"`
}
