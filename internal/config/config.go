package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for logging, the model server, domain encoding, the
// HTTP server, the database, background jobs and external lookups.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// Model locates the TensorFlow Serving instance hosting the classifier
	Model struct {
		// BaseURL is the REST endpoint of the model server
		BaseURL string `env:"MODEL_BASE_URL" env-default:"http://localhost:8501" yaml:"baseURL"`
		// Name is the served model name
		Name string `env:"MODEL_NAME" env-default:"dga" yaml:"name"`
		// Version pins a model version, 0 means latest
		Version int64 `env:"MODEL_VERSION" env-default:"0" yaml:"version"`
		// Timeout bounds every request to the model server
		Timeout time.Duration `env:"MODEL_TIMEOUT" env-default:"30s" yaml:"timeout"`
		// MaxBatchSize splits larger batches, 0 submits every batch in one call
		MaxBatchSize int `env:"MODEL_MAX_BATCH_SIZE" env-default:"0" yaml:"maxBatchSize"`
	} `yaml:"model"`

	// Encoder must match the preprocessing the model was trained with
	Encoder struct {
		// MaxLength is the fixed length of every encoded sequence
		MaxLength int `env:"ENCODER_MAX_LENGTH" env-default:"82" yaml:"maxLength"`
		// Padding is the side padded with the reserved code (left or right)
		Padding string `env:"ENCODER_PADDING" env-default:"left" yaml:"padding"`
		// Alphabet lists the known characters; the n-th character gets code n
		Alphabet string `env:"ENCODER_ALPHABET" env-default:"abcdefghijklmnopqrstuvwxyz0123456789-._" yaml:"alphabet"`
	} `yaml:"encoder"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes limits request bodies
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"10485760" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// ApplicationName is reported to postgres in pg_stat_activity
		ApplicationName string `env:"DATABASE_APPLICATION_NAME" env-default:"dgaintel" yaml:"applicationName"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"dgaintel" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Jobs configures asynchronous prediction jobs
	Jobs struct {
		// Enabled starts the background workers and the job endpoints
		Enabled bool `env:"JOBS_ENABLED" env-default:"true" yaml:"enabled"`
		// Workers is the maximum number of jobs processed concurrently
		Workers int `env:"JOBS_WORKERS" env-default:"4" yaml:"workers"`
		// MaxAttempts is how many times a job is tried before it is marked failed
		MaxAttempts int `env:"JOBS_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// MaxDomains limits the number of domains accepted per job
		MaxDomains int `env:"JOBS_MAX_DOMAINS" env-default:"100000" yaml:"maxDomains"`
		// SnoozeDuration is how long a job waits when the model is unavailable
		SnoozeDuration time.Duration `env:"JOBS_SNOOZE_DURATION" env-default:"30s" yaml:"snoozeDuration"`
	} `yaml:"jobs"`

	// JWT holds the RS256 key pair used for API authentication
	JWT struct {
		// PrivateKey is a PEM encoded RSA private key used by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is a PEM encoded RSA public key; when empty the API is not authenticated
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
	} `yaml:"jwt"`

	// Whois configures registration data lookups
	Whois struct {
		// BaseURL is the RDAP bootstrap service
		BaseURL string `env:"WHOIS_BASE_URL" env-default:"https://rdap.org" yaml:"baseURL"`
		// Timeout bounds every lookup
		Timeout time.Duration `env:"WHOIS_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"whois"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// When the file does not exist, configuration is read from the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
