package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	algodft "github.com/cwbudde/algo-dft"
	"github.com/cwbudde/algo-dft/internal/field"
	"github.com/cwbudde/algo-dft/internal/sample"
)

type benchConfig struct {
	field      string
	logHeight  int
	width      int
	strategies string
	iters      int
	warmup     int
	seed       uint64
	workers    int
	chart      string
}

type benchResult struct {
	strategy algodft.Strategy
	median   float64
	p90      float64
	stddev   float64
	min      float64
}

func newBenchCmd(root *rootOptions) *cobra.Command {
	cfg := benchConfig{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time DFTBatch for each strategy on a random matrix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := runBenchFor(cfg, root.logger)
			if err != nil {
				return err
			}

			printBenchResults(cmd.OutOrStdout(), cfg, results)

			if cfg.chart != "" {
				if err := writeChartFile(cfg, results); err != nil {
					return err
				}

				root.logger.Info("chart written", "path", cfg.chart)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.field, "field", field.NameGoldilocks, "field: babybear, goldilocks, bn254, bls12-381")
	flags.IntVar(&cfg.logHeight, "log-height", 10, "log2 of the matrix height")
	flags.IntVar(&cfg.width, "width", 64, "number of columns")
	flags.StringVar(&cfg.strategies, "strategies", "radix2-dit,parallel-transpose", "comma-separated strategies")
	flags.IntVar(&cfg.iters, "iters", 20, "timed iterations per strategy")
	flags.IntVar(&cfg.warmup, "warmup", 3, "untimed iterations per strategy")
	flags.Uint64Var(&cfg.seed, "seed", 1, "seed for the input matrix")
	flags.IntVar(&cfg.workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	flags.StringVar(&cfg.chart, "chart", "", "write an HTML chart of the results to this path")

	return cmd
}

func runBenchFor(cfg benchConfig, logger *slog.Logger) ([]benchResult, error) {
	info, err := field.Lookup(cfg.field)
	if err != nil {
		return nil, err
	}

	switch info.Name {
	case field.NameBabyBear:
		return runBench(algodft.BabyBear(), cfg, logger)
	case field.NameGoldilocks:
		return runBench(algodft.Goldilocks(), cfg, logger)
	case field.NameBN254:
		return runBench(algodft.BN254(), cfg, logger)
	default:
		return runBench(algodft.BLS12381(), cfg, logger)
	}
}

func runBench[E any](f algodft.Field[E], cfg benchConfig, logger *slog.Logger) ([]benchResult, error) {
	if cfg.iters < 1 {
		return nil, fmt.Errorf("--iters must be positive, got %d", cfg.iters)
	}

	strategies, err := parseStrategies(cfg.strategies)
	if err != nil {
		return nil, err
	}

	if cfg.logHeight < 0 || cfg.logHeight > f.TwoAdicity() {
		return nil, fmt.Errorf("%w: --log-height %d outside [0, %d]", algodft.ErrTwoAdicity, cfg.logHeight, f.TwoAdicity())
	}

	height := 1 << cfg.logHeight

	mat, err := sample.Matrix(f, cfg.seed, height, cfg.width)
	if err != nil {
		return nil, err
	}

	results := make([]benchResult, 0, len(strategies))

	for _, s := range strategies {
		d, err := algodft.New(f, algodft.Options{Strategy: s, Workers: cfg.workers})
		if err != nil {
			return nil, err
		}

		logger.Debug("benchmarking", "field", f.Name(), "strategy", d.Strategy(), "height", height, "width", cfg.width)

		for range cfg.warmup {
			_ = d.DFTBatch(mat)
		}

		runtime.GC()

		samples := make(stats.Float64Data, 0, cfg.iters)

		for range cfg.iters {
			start := time.Now()
			_ = d.DFTBatch(mat)
			samples = append(samples, float64(time.Since(start).Nanoseconds()))
		}

		res, err := summarize(d.Strategy(), samples)
		if err != nil {
			return nil, err
		}

		results = append(results, res)
	}

	return results, nil
}

func summarize(s algodft.Strategy, samples stats.Float64Data) (benchResult, error) {
	res := benchResult{strategy: s}

	var err error

	if res.median, err = stats.Median(samples); err != nil {
		return res, fmt.Errorf("median: %w", err)
	}

	if res.p90, err = stats.Percentile(samples, 90); err != nil {
		return res, fmt.Errorf("p90: %w", err)
	}

	if res.stddev, err = stats.StandardDeviation(samples); err != nil {
		return res, fmt.Errorf("stddev: %w", err)
	}

	if res.min, err = stats.Min(samples); err != nil {
		return res, fmt.Errorf("min: %w", err)
	}

	return res, nil
}

func printBenchResults(w io.Writer, cfg benchConfig, results []benchResult) {
	fmt.Fprintf(w, "field=%s height=%d width=%d iters=%d warmup=%d\n",
		cfg.field, 1<<cfg.logHeight, cfg.width, cfg.iters, cfg.warmup)
	fmt.Fprintf(w, "%20s  %14s  %14s  %14s  %14s\n", "strategy", "median ns/op", "p90 ns/op", "min ns/op", "stddev")

	for _, r := range results {
		fmt.Fprintf(w, "%20s  %14.0f  %14.0f  %14.0f  %14.0f\n", r.strategy, r.median, r.p90, r.min, r.stddev)
	}
}

func writeChartFile(cfg benchConfig, results []benchResult) error {
	f, err := os.Create(cfg.chart)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}

	defer f.Close()

	if err := renderChart(f, cfg, results); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	return nil
}
