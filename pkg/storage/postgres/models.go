package postgres

import (
	"database/sql"
	"dgaintel/pkg/domain"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PgPredictionJob is the row model of the prediction_jobs table. Domains and
// predictions are stored as JSON arrays to keep input order.
type PgPredictionJob struct {
	ID      uuid.UUID `db:"id"      goqu:"skipinsert"`
	Subject string    `db:"subject"`

	Status      string `db:"status"`
	Domains     string `db:"domains"`
	Predictions string `db:"predictions" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgPredictionJob) ToDomain() (*domain.Job, error) {
	var domains []string
	if err := json.Unmarshal([]byte(p.Domains), &domains); err != nil {
		return nil, fmt.Errorf("could not unmarshal job domains: %w", err)
	}
	var predictions []domain.Prediction
	if len(p.Predictions) > 0 {
		if err := json.Unmarshal([]byte(p.Predictions), &predictions); err != nil {
			return nil, fmt.Errorf("could not unmarshal job predictions: %w", err)
		}
	}

	return &domain.Job{
		ID:          domain.JobID(p.ID),
		Subject:     p.Subject,
		Status:      domain.JobStatus(p.Status),
		Domains:     domains,
		Predictions: predictions,
		Attempts:    p.Attempts,
		LastError:   p.LastError.String,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}, nil
}

func (p *PgPredictionJob) FromDomain(job domain.Job) error {
	domains := job.Domains
	if domains == nil {
		domains = []string{}
	}
	domainsJSON, err := json.Marshal(domains)
	if err != nil {
		return fmt.Errorf("could not marshal job domains: %w", err)
	}
	predictions := job.Predictions
	if predictions == nil {
		predictions = []domain.Prediction{}
	}
	predictionsJSON, err := json.Marshal(predictions)
	if err != nil {
		return fmt.Errorf("could not marshal job predictions: %w", err)
	}

	*p = PgPredictionJob{
		ID:          uuid.UUID(job.ID),
		Subject:     job.Subject,
		Status:      string(job.Status),
		Domains:     string(domainsJSON),
		Predictions: string(predictionsJSON),
		Attempts:    job.Attempts,
		LastError: sql.NullString{
			String: job.LastError,
			Valid:  job.LastError != "",
		},
		CreatedAt: job.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  job.UpdatedAt,
			Valid: !job.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  job.DeletedAt,
			Valid: !job.DeletedAt.IsZero(),
		},
	}

	return nil
}

func pgJobsToDomain(jobs []PgPredictionJob) ([]domain.Job, error) {
	out := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		d, err := job.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
