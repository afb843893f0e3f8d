// Package main provides the CLI entrypoint of the DGA classification service.
// It wires subcommands (predict, render, serve, whois, migrate, jwt), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"dgaintel/internal/config"
	"dgaintel/internal/predictor"
	"dgaintel/pkg/classifier/tfserving"
	"dgaintel/pkg/encoder"
	"dgaintel/pkg/inference"
	"dgaintel/pkg/logger"
	"dgaintel/pkg/storage/postgres"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
		ApplicationName:    cfg.Database.ApplicationName,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getEncoder builds the encoder matching the preprocessing the model was
// trained with.
func getEncoder(ctx context.Context, cfg *config.Config) *encoder.Encoder {
	vocab, err := encoder.NewVocabulary(cfg.Encoder.Alphabet)
	if err != nil {
		logger.Fatal(ctx, "invalid encoder alphabet", zap.Error(err))
	}
	padding, err := encoder.ParsePadding(cfg.Encoder.Padding)
	if err != nil {
		logger.Fatal(ctx, "invalid encoder padding", zap.Error(err))
	}
	enc, err := encoder.New(vocab, cfg.Encoder.MaxLength, padding)
	if err != nil {
		logger.Fatal(ctx, "could not create encoder", zap.Error(err))
	}

	return enc
}

// getClassifier loads the model once. Predictions are impossible without it,
// so failure is fatal.
func getClassifier(ctx context.Context, cfg *config.Config) *inference.Adapter {
	client, err := tfserving.Load(ctx, tfserving.Options{
		BaseURL:   cfg.Model.BaseURL,
		ModelName: cfg.Model.Name,
		Version:   cfg.Model.Version,
		Timeout:   cfg.Model.Timeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not load model", zap.Error(err))
	}

	adapter, err := inference.NewAdapter(client, inference.Options{
		MaxBatchSize: cfg.Model.MaxBatchSize,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create inference adapter", zap.Error(err))
	}

	return adapter
}

func newPredictor(ctx context.Context,
	enc *encoder.Encoder,
	classifier inference.Classifier,
	opts ...predictor.Option) predictor.Predictor {
	p, err := predictor.New(enc, classifier, opts...)
	if err != nil {
		logger.Fatal(ctx, "could not create predictor", zap.Error(err))
	}

	return p
}

// getPredictor loads the model and returns a ready predictor.
func getPredictor(ctx context.Context, cfg *config.Config, opts ...predictor.Option) predictor.Predictor {
	return newPredictor(ctx, getEncoder(ctx, cfg), getClassifier(ctx, cfg), opts...)
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "dgaintel",
		Short: "Classifies domain names as DGA or genuine",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	configPath := flags.String("c", "config.yml", "The config file path")
	// only the config flag matters here, cobra validates the rest
	_ = flags.Parse(configArgs(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		predictCommand(cfg),
		renderCommand(cfg),
		serveCommand(cfg),
		whoisCommand(cfg),
		migrateCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs extracts the -c/--config flag from args so the standard flag
// package does not stop at subcommand names or unknown flags.
func configArgs(args []string) []string {
	for i, arg := range args {
		switch arg {
		case "-c", "--c", "-config", "--config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		}
		for _, prefix := range []string{"-c=", "--c=", "-config=", "--config="} {
			if v, ok := strings.CutPrefix(arg, prefix); ok && v != "" {
				return []string{"-c", v}
			}
		}
	}

	return nil
}
