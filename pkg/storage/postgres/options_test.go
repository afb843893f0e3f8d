package postgres

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOptions_connString(t *testing.T) {
	o := Options{
		Username: "svc",
		Password: "p@ss word'",
		Host:     "db.internal",
		Port:     6432,
		Database: "dga",
		SslMode:  "require",
	}

	u, err := url.Parse(o.connString())
	require.NoError(t, err)
	require.Equal(t, "postgres", u.Scheme)
	require.Equal(t, "db.internal:6432", u.Host)
	require.Equal(t, "/dga", u.Path)
	require.Equal(t, "svc", u.User.Username())
	pass, _ := u.User.Password()
	require.Equal(t, "p@ss word'", pass)
	require.Equal(t, "require", u.Query().Get("sslmode"))
	require.Equal(t, "dgaintel", u.Query().Get("application_name"))

	o.SslMode = ""
	o.ApplicationName = "worker"
	u, err = url.Parse(o.connString())
	require.NoError(t, err)
	require.False(t, u.Query().Has("sslmode"))
	require.Equal(t, "worker", u.Query().Get("application_name"))
}

func TestOptions_connStringIPv6(t *testing.T) {
	o := Options{Username: "u", Host: "::1", Port: 5432, Database: "d"}
	require.Contains(t, o.connString(), "@[::1]:5432/d")
}

func TestOptions_poolConfig(t *testing.T) {
	o := Options{
		Username:           "u",
		Password:           "p",
		Host:               "localhost",
		Port:               5432,
		Database:           "d",
		SslMode:            "disable",
		ConnMaxLifetime:    time.Hour,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 4,
		MaxIdleConnections: 10,
	}

	cfg, err := o.poolConfig()
	require.NoError(t, err)
	require.EqualValues(t, 4, cfg.MaxConns)
	// min connections never exceed the pool size
	require.EqualValues(t, 4, cfg.MinConns)
	require.Equal(t, time.Hour, cfg.MaxConnLifetime)
	require.Equal(t, time.Minute, cfg.MaxConnIdleTime)
	require.Equal(t, "d", cfg.ConnConfig.Database)

	// zero values keep pgxpool defaults
	cfg, err = Options{Host: "localhost", Port: 5432, Database: "d"}.poolConfig()
	require.NoError(t, err)
	require.Positive(t, cfg.MaxConns)
	require.Zero(t, cfg.MinConns)
}
