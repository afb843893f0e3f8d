// Package postgres implements storage.Storage on PostgreSQL. Queries are
// built with goqu over a database/sql handle that shares its pgx pool with
// the river queue.
package postgres

import (
	"context"
	"database/sql"
	"dgaintel/pkg/storage"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

const (
	dialect = "postgres"

	defaultApplicationName = "dgaintel"
)

// Options holds the connection settings of the database.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	// SslMode is passed as the sslmode parameter, e.g. "disable" or "require".
	SslMode string
	// ApplicationName is reported to the server in pg_stat_activity.
	// Defaults to "dgaintel".
	ApplicationName string

	// Pool tuning. Zero values keep the pgxpool defaults.
	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	MaxIdleConnections int
}

// connString renders the options as a postgres:// URL so that credentials
// containing spaces or quotes need no escaping.
func (o Options) connString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(o.Username, o.Password),
		Host:   net.JoinHostPort(o.Host, strconv.Itoa(o.Port)),
		Path:   "/" + o.Database,
	}

	q := url.Values{}
	if o.SslMode != "" {
		q.Set("sslmode", o.SslMode)
	}
	name := o.ApplicationName
	if name == "" {
		name = defaultApplicationName
	}
	q.Set("application_name", name)
	u.RawQuery = q.Encode()

	return u.String()
}

func (o Options) poolConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(o.connString())
	if err != nil {
		return nil, fmt.Errorf("could not parse pg connection options: %w", err)
	}

	if o.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(o.MaxOpenConnections) //nolint: gosec
	}
	if o.MaxIdleConnections > 0 {
		cfg.MinConns = min(int32(o.MaxIdleConnections), cfg.MaxConns) //nolint: gosec
	}
	if o.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = o.ConnMaxLifetime
	}
	if o.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = o.ConnMaxIdleTime
	}

	return cfg, nil
}

// DB is satisfied by both *sql.DB and *sql.Tx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder is the part of *goqu.Database and *goqu.TxDatabase used here.
type Builder interface {
	From(table ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
	Update(table any) *goqu.UpdateDataset
}

// PgSQL is a storage handle. The handle returned by New owns the pool; the
// handles returned by Begin share its queue inserter but carry only the
// transaction.
type PgSQL struct {
	DB      DB
	Builder Builder
	// Pool is nil on transactional handles.
	Pool *pgxpool.Pool

	inserter *river.Client[*sql.Tx]
}

var _ storage.Storage = (*PgSQL)(nil)

// New connects to the database and prepares the river inserter used by AddJob.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := options.poolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	// goqu, goose and the river database/sql driver all need a *sql.DB
	sqlDB := stdlib.OpenDBFromPool(pool)

	// no queues configured: the client only inserts
	inserter, err := river.NewClient[*sql.Tx](riverdatabasesql.New(sqlDB), &river.Config{})
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()

		return nil, fmt.Errorf("could not create river inserter: %w", err)
	}

	return &PgSQL{
		DB:       sqlDB,
		Builder:  goqu.Dialect(dialect).DB(sqlDB),
		Pool:     pool,
		inserter: inserter,
	}, nil
}

// Ping reports whether the database is reachable. Used by /healthz.
func (p *PgSQL) Ping(ctx context.Context) error {
	if p.Pool == nil {
		return storage.ErrNoPool
	}
	if err := p.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("could not ping pg: %w", err)
	}

	return nil
}

func (p *PgSQL) Close() error {
	var err error
	if db, ok := p.DB.(*sql.DB); ok {
		if cerr := db.Close(); cerr != nil {
			err = fmt.Errorf("could not close sql db: %w", cerr)
		}
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return err
}

func (p *PgSQL) tx() (*sql.Tx, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return nil, storage.ErrNotInTx
	}

	return tx, nil
}

func (p *PgSQL) Commit() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

func (p *PgSQL) Rollback() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:       tx,
		Builder:  goqu.NewTx(dialect, tx),
		inserter: p.inserter,
	}, nil
}

func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := cb(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return errors.Join(err, rerr)
		}

		return err
	}

	return tx.Commit()
}
