package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin on a handle that already wraps a
	// transaction. Nested transactions are not supported.
	ErrAlreadyInTx = errors.New("storage: transaction already started")
	// ErrNotInTx is returned by Commit and Rollback on a non-transactional handle.
	ErrNotInTx = errors.New("storage: no transaction in progress")
	// ErrNoPool is returned by pool level operations, such as Ping, on a handle
	// that only carries a transaction.
	ErrNoPool = errors.New("storage: handle has no connection pool")
)
