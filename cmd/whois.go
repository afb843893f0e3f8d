package main

import (
	"context"
	"dgaintel/internal/analysis"
	"dgaintel/internal/config"
	"dgaintel/pkg/logger"
	"dgaintel/pkg/whois/rdap"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// whoisCommand constructs the 'whois' subcommand printing the prediction of a
// domain next to its registration data.
func whoisCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whois <domain>",
		Short: "Classifies a domain and prints its registration data",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			client, err := rdap.New(&http.Client{Timeout: cfg.Whois.Timeout}, cfg.Whois.BaseURL)
			if err != nil {
				logger.Fatal(ctx, "could not create RDAP client", zap.Error(err))
			}

			report, err := analysis.New(getPredictor(ctx, cfg), client).Analyze(ctx, args[0])
			if err != nil {
				logger.Fatal(ctx, "could not analyze domain", zap.Error(err))
			}

			fmt.Println(report.String()) //nolint: forbidigo
		},
	}

	return cmd
}
