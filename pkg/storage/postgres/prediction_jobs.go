package postgres

import (
	"context"
	"dgaintel/pkg/domain"
	"dgaintel/pkg/storage"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	predictionJobsTable = "prediction_jobs"
)

func (p *PgSQL) StorePredictionJob(ctx context.Context, job domain.Job) (*domain.Job, error) {
	var row PgPredictionJob
	if err := row.FromDomain(job); err != nil {
		return nil, err
	}

	var stored PgPredictionJob
	if _, err := p.Builder.Insert(predictionJobsTable).
		Rows(row).
		Returning(&PgPredictionJob{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store prediction job into pg: %w", err)
	}

	return stored.ToDomain()
}

// PredictionJobByID returns a job by its ID, excluding soft-deleted rows.
func (p *PgSQL) PredictionJobByID(ctx context.Context, subject string, id domain.JobID) (*domain.Job, error) {
	w := []goqu.Expression{
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	}
	if subject != "" {
		w = append(w, goqu.I("subject").Eq(subject))
	}

	var row PgPredictionJob
	found, err := p.Builder.From(predictionJobsTable).
		Where(w...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch prediction job by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// SubjectPredictionJobs returns jobs ordered by created_at DESC, id DESC. The
// cursor compares the (created_at, id) pair so rows sharing a timestamp are
// neither skipped nor repeated across pages.
func (p *PgSQL) SubjectPredictionJobs(ctx context.Context,
	subject string,
	cursor storage.PredictionJobsCursor,
	limit uint) (storage.PredictionJobs, error) {
	w := []goqu.Expression{
		goqu.I("subject").Eq(subject),
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.L("(created_at, id) < (?, ?)", cursor.CreatedAt.UTC(), uuid.UUID(cursor.ID)))
	}

	// one extra row tells whether there is a next page
	var rows []PgPredictionJob
	if err := p.Builder.From(predictionJobsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.PredictionJobs{}, fmt.Errorf("could not fetch prediction jobs from pg: %w", err)
	}

	var nextCursor *storage.PredictionJobsCursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			last := rows[len(rows)-1]
			nextCursor = &storage.PredictionJobsCursor{
				CreatedAt: last.CreatedAt,
				ID:        domain.JobID(last.ID),
			}
		}
	}

	jobs, err := pgJobsToDomain(rows)
	if err != nil {
		return storage.PredictionJobs{}, err
	}

	return storage.PredictionJobs{
		Jobs:       jobs,
		NextCursor: nextCursor,
	}, nil
}

// UpdatePredictionJob increments attempts, sets updated_at and applies the
// provided fields to a live job.
func (p *PgSQL) UpdatePredictionJob(ctx context.Context,
	id domain.JobID,
	updates storage.PredictionJobUpdates) (*domain.Job, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
		"status":     string(updates.Status),
	}
	if updates.Status == domain.JobStatusFailed && updates.MaxAttempts > 0 {
		rec["status"] = goqu.Case().
			When(goqu.L("attempts + 1 >= ?", updates.MaxAttempts), string(domain.JobStatusFailed)).
			Else(goqu.I("status"))
	}
	if updates.Predictions != nil {
		b, err := json.Marshal(*updates.Predictions)
		if err != nil {
			return nil, fmt.Errorf("could not marshal predictions: %w", err)
		}

		rec["predictions"] = string(b)
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgPredictionJob
	found, err := p.Builder.Update(predictionJobsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgPredictionJob{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update prediction job in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeletePredictionJob performs a soft delete by setting deleted_at.
func (p *PgSQL) DeletePredictionJob(ctx context.Context, subject string, id domain.JobID) (*domain.Job, error) {
	var row PgPredictionJob
	found, err := p.Builder.Update(predictionJobsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("subject").Eq(subject),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgPredictionJob{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete prediction job in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
