// Package storage declares the persistence contracts used by the jobs
// service and the predict worker. The postgres subpackage is the only
// implementation; tests use the gomock doubles in mock/.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is everything callers can do with a handle, whether or not it
// wraps a transaction.
type AllStorage interface {
	PredictionJobStorage
	JobStorage
}

// TxStorage is a handle bound to one open transaction. It must not be used
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the long lived, pool backed handle created at startup.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	// Begin opens a transaction. Begin on a handle that is already
	// transactional fails with ErrAlreadyInTx.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction. The transaction is committed when
	// cb returns nil and rolled back when it returns an error or panics.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
