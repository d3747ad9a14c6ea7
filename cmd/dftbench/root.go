package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	algodft "github.com/cwbudde/algo-dft"
)

type rootOptions struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "dftbench",
		Short:         "Benchmark and verify batched finite-field DFT strategies",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(opts.logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", opts.logLevel, err)
			}

			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	cmd.AddCommand(newBenchCmd(opts), newVerifyCmd(opts), newInfoCmd())

	return cmd
}

// parseStrategies resolves a comma-separated strategy list, skipping blanks.
func parseStrategies(list string) ([]algodft.Strategy, error) {
	var out []algodft.Strategy

	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		s, err := algodft.ParseStrategy(part)
		if err != nil {
			return nil, err
		}

		out = append(out, s)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty strategy list", algodft.ErrUnknownStrategy)
	}

	return out, nil
}
