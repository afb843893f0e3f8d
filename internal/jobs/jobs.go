// Package jobs manages asynchronous prediction jobs: large domain lists are
// stored and classified in the background by the predict worker.
package jobs

import (
	"context"
	"dgaintel/internal/config"
	"dgaintel/pkg/domain"
	"dgaintel/pkg/logger"
	"dgaintel/pkg/serrors"
	"dgaintel/pkg/storage"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Options configure how prediction jobs are accepted and enqueued.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker makes
	// before the job is marked failed.
	MaxAttempts int
	// MaxDomains limits the number of domains of a single job. Zero disables the limit.
	MaxDomains int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Jobs.MaxAttempts,
		MaxDomains:  cfg.Jobs.MaxDomains,
	}
}

type service struct {
	options Options
	storage storage.Storage
}

// New creates a Service backed by the provided storage.
func New(storage storage.Storage, options Options) Service {
	return &service{
		options: options,
		storage: storage,
	}
}

// Submit stores a pending job owned by subject and enqueues its river job in
// the same transaction. Domains keep their order, duplicates and spelling.
func (s *service) Submit(ctx context.Context, subject string, domains []string) (*domain.Job, error) {
	if len(domains) == 0 {
		return nil, serrors.With(serrors.ErrEmptyBatch, "no domains to classify")
	}
	if s.options.MaxDomains > 0 && len(domains) > s.options.MaxDomains {
		return nil, serrors.With(serrors.ErrBadRequest, "a job accepts at most %d domains", s.options.MaxDomains)
	}

	// entries are stored as supplied; the encoder maps odd characters to the
	// reserved code, so no entry can fail the job
	supplied := make([]string, len(domains))
	copy(supplied, domains)

	var job *domain.Job
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StorePredictionJob(ctx, domain.Job{
			Subject: subject,
			Status:  domain.JobStatusPending,
			Domains: supplied,
		})
		if err != nil {
			return fmt.Errorf("could not store prediction job: %w", err)
		}
		job = stored

		if _, err := tx.AddJob(ctx, PredictArgs{
			JobID:       stored.ID,
			maxAttempts: s.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not submit prediction job: %w", err)
	}

	logger.Info(ctx, "prediction job submitted",
		zap.Stringer("jobID", job.ID),
		zap.Int("domains", len(job.Domains)))

	return job, nil
}

// cursorSep joins the creation time and the job ID of a listing cursor.
const cursorSep = "_"

func formatCursor(c storage.PredictionJobsCursor) string {
	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSep + c.ID.String()
}

func parseCursor(raw string) (storage.PredictionJobsCursor, error) {
	ts, id, ok := strings.Cut(raw, cursorSep)
	if !ok {
		return storage.PredictionJobsCursor{}, serrors.With(serrors.ErrBadRequest, "invalid cursor")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return storage.PredictionJobsCursor{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor time")
	}
	jobID, err := domain.ParseJobID(id)
	if err != nil {
		return storage.PredictionJobsCursor{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor id")
	}

	return storage.PredictionJobsCursor{CreatedAt: createdAt, ID: jobID}, nil
}

// List returns a page of jobs owned by subject. The cursor is the opaque
// value returned with the previous page.
func (s *service) List(ctx context.Context, subject string, cursor string, limit uint) ([]domain.Job, string, error) {
	var position storage.PredictionJobsCursor
	if cursor != "" {
		c, err := parseCursor(cursor)
		if err != nil {
			return nil, "", err
		}
		position = c
	}

	page, err := s.storage.SubjectPredictionJobs(ctx, subject, position, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get prediction jobs: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = formatCursor(*page.NextCursor)
	}

	return page.Jobs, next, nil
}

// Get fetches a job owned by subject.
func (s *service) Get(ctx context.Context, subject string, id domain.JobID) (*domain.Job, error) {
	job, err := s.storage.PredictionJobByID(ctx, subject, id)
	if err != nil {
		return nil, fmt.Errorf("could not get prediction job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	return job, nil
}

// Delete soft-deletes a job owned by subject. A queued river job for it is
// left in place; the worker skips jobs that no longer exist.
func (s *service) Delete(ctx context.Context, subject string, id domain.JobID) error {
	job, err := s.storage.DeletePredictionJob(ctx, subject, id)
	if err != nil {
		return fmt.Errorf("could not delete prediction job: %w", err)
	}
	if job == nil {
		return serrors.With(serrors.ErrNotFound, "job not found")
	}

	return nil
}
