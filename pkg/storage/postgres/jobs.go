package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

var errNoInserter = errors.New("storage handle was not created by New")

// AddJob inserts a river job. A transactional handle inserts with InsertTx so
// the queue row commits or rolls back together with the rest of the
// transaction.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	if p.inserter == nil {
		return false, errNoInserter
	}

	var (
		res *rivertype.JobInsertResult
		err error
	)
	if tx, ok := p.DB.(*sql.Tx); ok {
		res, err = p.inserter.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = p.inserter.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
