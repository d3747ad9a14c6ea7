package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	algodft "github.com/cwbudde/algo-dft"
	"github.com/cwbudde/algo-dft/internal/field"
	"github.com/cwbudde/algo-dft/internal/sample"
)

var errVerifyFailed = errors.New("verification failed")

type verifyConfig struct {
	field        string
	maxLogHeight int
	width        int
	seed         uint64
	workers      int
}

func newVerifyCmd(root *rootOptions) *cobra.Command {
	cfg := verifyConfig{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every strategy against the naive DFT and the inverse round trip",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerifyFor(cmd.OutOrStdout(), cfg, root.logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.field, "field", field.NameGoldilocks, "field: babybear, goldilocks, bn254, bls12-381")
	flags.IntVar(&cfg.maxLogHeight, "max-log-height", 6, "largest log2 height to check")
	flags.IntVar(&cfg.width, "width", 5, "number of columns")
	flags.Uint64Var(&cfg.seed, "seed", 1, "seed for the input matrices")
	flags.IntVar(&cfg.workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")

	return cmd
}

func runVerifyFor(w io.Writer, cfg verifyConfig, logger *slog.Logger) error {
	info, err := field.Lookup(cfg.field)
	if err != nil {
		return err
	}

	switch info.Name {
	case field.NameBabyBear:
		return runVerify(w, algodft.BabyBear(), cfg, logger)
	case field.NameGoldilocks:
		return runVerify(w, algodft.Goldilocks(), cfg, logger)
	case field.NameBN254:
		return runVerify(w, algodft.BN254(), cfg, logger)
	default:
		return runVerify(w, algodft.BLS12381(), cfg, logger)
	}
}

func runVerify[E any](w io.Writer, f algodft.Field[E], cfg verifyConfig, logger *slog.Logger) error {
	if cfg.maxLogHeight < 0 || cfg.maxLogHeight > f.TwoAdicity() {
		return fmt.Errorf("%w: --max-log-height %d outside [0, %d]", algodft.ErrTwoAdicity, cfg.maxLogHeight, f.TwoAdicity())
	}

	naive := algodft.NewNaive(f)
	failures := 0

	for logH := 0; logH <= cfg.maxLogHeight; logH++ {
		mat, err := sample.Matrix(f, cfg.seed+uint64(logH), 1<<logH, cfg.width)
		if err != nil {
			return err
		}

		want := naive.DFTBatch(mat)

		for _, s := range algodft.Strategies() {
			d, err := algodft.New(f, algodft.Options{Strategy: s, Workers: cfg.workers})
			if err != nil {
				return err
			}

			okDFT := algodft.MatricesEqual(f, want, d.DFTBatch(mat))
			okInv := algodft.MatricesEqual(f, mat, algodft.IDFTBatch(d, want))

			status := "ok"
			if !okDFT || !okInv {
				status = "MISMATCH"
				failures++

				logger.Error("strategy disagrees with naive DFT",
					"field", f.Name(), "strategy", s, "height", 1<<logH, "dft", okDFT, "idft", okInv)
			}

			fmt.Fprintf(w, "%-10s h=%-6d w=%-4d %-20s %s\n", f.Name(), 1<<logH, cfg.width, s, status)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%w: %d mismatches", errVerifyFailed, failures)
	}

	return nil
}
