package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage puts background work on the river queue. The queue tables live
// in the application database, so a prediction job row and the queue entry
// that will process it can be committed together:
//
//	err := strg.WithTx(ctx, func(tx storage.AllStorage) error {
//		job, err := tx.StorePredictionJob(ctx, pending)
//		if err != nil {
//			return err
//		}
//		_, err = tx.AddJob(ctx, jobs.PredictArgs{JobID: job.ID}, nil)
//		return err
//	})
type JobStorage interface {
	// AddJob inserts args into the queue. On a transactional handle the entry
	// only becomes visible to workers once the transaction commits. The
	// returned bool is false when river dropped the insert as a duplicate of a
	// unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
