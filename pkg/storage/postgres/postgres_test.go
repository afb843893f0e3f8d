package postgres_test

import (
	"context"
	"database/sql"
	root "dgaintel"
	"dgaintel/pkg/logger"
	"dgaintel/pkg/storage/postgres"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "dgaintel"
	testPassword = "s3cret pass"
	testDB       = "dgaintel_test"
)

// testOptions points at the container started by TestMain. Every test opens
// its own handle and truncates the tables it touches.
var testOptions postgres.Options

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")

	ctx := context.Background()
	container, err := startPostgres(ctx)
	if err != nil {
		log.Fatalf("could not start postgres: %v", err)
	}

	if err := migrate(ctx); err != nil {
		_ = container.Terminate(ctx)
		log.Fatalf("could not migrate postgres: %v", err)
	}

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func startPostgres(ctx context.Context) (testcontainers.Container, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return container, fmt.Errorf("could not get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return container, fmt.Errorf("could not get container port: %w", err)
	}

	testOptions = postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               host,
		Port:               port.Int(),
		Database:           testDB,
		SslMode:            "disable",
		ApplicationName:    "dgaintel-test",
		ConnMaxLifetime:    time.Minute,
		MaxOpenConnections: 8,
		MaxIdleConnections: 2,
	}

	return container, nil
}

// migrate applies the embedded goose migrations and the river schema.
func migrate(ctx context.Context) error {
	pg, err := postgres.New(ctx, testOptions)
	if err != nil {
		return err
	}
	defer func() { _ = pg.Close() }()

	db := pg.DB.(*sql.DB)
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river migrator: %w", err)
	}
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
		return fmt.Errorf("could not migrate river: %w", err)
	}

	return nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	pg, err := postgres.New(ctx, testOptions)
	require.NoError(t, err)

	_, err = pg.DB.ExecContext(ctx, "TRUNCATE prediction_jobs, river_job")
	require.NoError(t, err)

	return pg, func() {
		require.NoError(t, pg.Close())
	}
}

func TestNew_Ping(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	require.NoError(t, pg.Ping(context.Background()))

	var app string
	require.NoError(t, pg.DB.QueryRowContext(context.Background(),
		"SELECT current_setting('application_name')").Scan(&app))
	require.Equal(t, "dgaintel-test", app)
}

func TestNew_Unreachable(t *testing.T) {
	opts := testOptions
	opts.Port = 1

	// pgxpool connects lazily, the failure surfaces on first use
	pg, err := postgres.New(context.Background(), opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.Error(t, pg.Ping(ctx))
}
