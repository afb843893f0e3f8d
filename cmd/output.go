package main

import (
	"dgaintel/internal/predictor"
	"fmt"
	"io"
	"strconv"
)

// printOutput writes out one value per line. Pairs are tab separated.
func printOutput(w io.Writer, out predictor.Output) error {
	var err error
	switch v := out.(type) {
	case nil:
	case predictor.Sentence:
		_, err = fmt.Fprintln(w, string(v))
	case predictor.Sentences:
		for _, s := range v {
			if _, err = fmt.Fprintln(w, s); err != nil {
				break
			}
		}
	case predictor.Probability:
		_, err = fmt.Fprintln(w, formatProbability(float64(v)))
	case predictor.Probabilities:
		for _, p := range v {
			if _, err = fmt.Fprintln(w, formatProbability(p)); err != nil {
				break
			}
		}
	case predictor.Pairs:
		for _, p := range v {
			if _, err = fmt.Fprintf(w, "%s\t%s\n", p.Domain, formatProbability(p.Probability)); err != nil {
				break
			}
		}
	default:
		return fmt.Errorf("unsupported output %T", out)
	}

	return err //nolint: wrapcheck
}

func formatProbability(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}

// inputFromArgs selects the input shape: a file when path is set, a single
// domain for one argument and a list otherwise.
func inputFromArgs(args []string, path string) (predictor.Input, error) {
	switch {
	case path != "" && len(args) > 0:
		return predictor.Input{}, fmt.Errorf("domains and --file are mutually exclusive")
	case path != "":
		return predictor.File(path), nil
	case len(args) == 1:
		return predictor.Single(args[0]), nil
	case len(args) > 1:
		return predictor.Many(args), nil
	default:
		return predictor.Input{}, fmt.Errorf("no domains given, pass them as arguments or use --file")
	}
}
