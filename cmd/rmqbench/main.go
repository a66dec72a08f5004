// Command rmqbench generates benchmark datasets and measures the rmq
// strategies against them, exporting the aggregates as CSV.
//
//	rmqbench generate --dir datasets --sizes 1000,10000,100000 --seed 42
//	rmqbench run --dir datasets --out results/benchmark_results.csv
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rmq/bench"
	"github.com/katalvlaran/rmq/dataset"
)

var log = logging.MustGetLogger("rmqbench")

func setupLogging() {
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{message}`)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	logging.SetBackend(logging.NewBackendFormatter(backend, format))
}

func newGenerateCmd() *cobra.Command {
	var (
		dir   string
		sizes []int
		seed  int64
		dist  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate dataset files for benchmarking",
		RunE: func(_ *cobra.Command, _ []string) error {
			dists := dataset.Distributions()
			if dist != "all" {
				dists = []dataset.Distribution{dataset.Distribution(dist)}
			}

			for _, d := range dists {
				for _, n := range sizes {
					values, err := dataset.Generate(d, n, seed)
					if err != nil {
						return err
					}
					path := filepath.Join(dir, dataset.Filename(d, n))
					if err = dataset.Save(path, values); err != nil {
						return err
					}
					log.Infof("generated %s", path)
				}
			}
			log.Infof("dataset generation complete (%d files in %s)", len(dists)*len(sizes), dir)

			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "datasets", "output directory")
	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{1_000, 10_000, 100_000}, "dataset sizes to generate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	cmd.Flags().StringVar(&dist, "dist", "all",
		fmt.Sprintf("distribution to generate (one of %v, or \"all\")", dataset.Distributions()))

	return cmd
}

func newRunCmd() *cobra.Command {
	var (
		dir     string
		out     string
		runs    int
		queries int
		updates int
		timeout time.Duration
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark suite and export CSV results",
		RunE: func(_ *cobra.Command, _ []string) error {
			datasets, err := dataset.LoadDir(dir)
			if err != nil {
				return err
			}

			cfg := bench.DefaultConfig()
			cfg.Runs = runs
			cfg.Queries = queries
			cfg.Updates = updates
			cfg.Timeout = timeout
			cfg.Seed = seed

			runner, err := bench.NewRunner(cfg)
			if err != nil {
				return err
			}

			log.Infof("running benchmarks: %d strategies × %d datasets × %d runs",
				len(cfg.Strategies), len(datasets), cfg.Runs)
			results, err := runner.Run(datasets)
			if err != nil {
				return err
			}

			if err = bench.SaveCSV(out, results); err != nil {
				return err
			}
			log.Infof("results saved to %s (%d rows)", out, len(results))

			return nil
		},
	}

	defaults := bench.DefaultConfig()
	cmd.Flags().StringVar(&dir, "dir", "datasets", "dataset directory")
	cmd.Flags().StringVar(&out, "out", filepath.Join("results", "benchmark_results.csv"), "output CSV path")
	cmd.Flags().IntVar(&runs, "runs", defaults.Runs, "repetitions per benchmark")
	cmd.Flags().IntVar(&queries, "queries", defaults.Queries, "queries per repetition")
	cmd.Flags().IntVar(&updates, "updates", defaults.Updates, "updates per repetition")
	cmd.Flags().DurationVar(&timeout, "timeout", defaults.Timeout, "per-run supervising timeout")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "seed for query/update streams")

	return cmd
}

func main() {
	setupLogging()

	root := &cobra.Command{
		Use:           "rmqbench",
		Short:         "Benchmark range-minimum-query strategies",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(), newRunCmd())

	if err := root.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
