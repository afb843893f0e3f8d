package main

import (
	"context"
	"dgaintel/internal/config"
	"dgaintel/internal/predictor"
	"dgaintel/pkg/logger"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// predictCommand constructs the 'predict' subcommand printing DGA
// probabilities for the given domains or domain list file.
func predictCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict [domain...]",
		Short: "Prints the probability that each domain is DGA",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			path, _ := cmd.Flags().GetString("file")
			raw, _ := cmd.Flags().GetBool("raw")

			in, err := inputFromArgs(args, path)
			if err != nil {
				logger.Fatal(ctx, "invalid input", zap.Error(err))
			}

			out, err := getPredictor(ctx, cfg).PredictProbability(ctx, in, predictor.ProbabilityOptions{Raw: raw})
			if err != nil {
				logger.Fatal(ctx, "could not predict", zap.Error(err))
			}
			if err := printOutput(os.Stdout, out); err != nil {
				logger.Fatal(ctx, "could not print predictions", zap.Error(err))
			}
		},
	}

	cmd.Flags().StringP("file", "f", "", "File with one domain per line")
	cmd.Flags().Bool("raw", false, "Print full precision probabilities without domains")

	return cmd
}

// renderCommand constructs the 'render' subcommand printing one sentence per
// domain, or writing them to a file with --output.
func renderCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [domain...]",
		Short: "Prints a verdict sentence for each domain",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			path, _ := cmd.Flags().GetString("file")
			output, _ := cmd.Flags().GetString("output")

			in, err := inputFromArgs(args, path)
			if err != nil {
				logger.Fatal(ctx, "invalid input", zap.Error(err))
			}

			out, err := getPredictor(ctx, cfg).PredictAndRender(ctx, in, predictor.RenderOptions{OutputPath: output})
			if err != nil {
				logger.Fatal(ctx, "could not predict", zap.Error(err))
			}
			if err := printOutput(os.Stdout, out); err != nil {
				logger.Fatal(ctx, "could not print predictions", zap.Error(err))
			}
		},
	}

	cmd.Flags().StringP("file", "f", "", "File with one domain per line")
	cmd.Flags().StringP("output", "o", "", "Write sentences to this file instead of stdout")

	return cmd
}
