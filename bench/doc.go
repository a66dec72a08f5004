// Package bench measures the build, query and update cost of every rmq
// strategy across a set of datasets and exports the aggregates as CSV.
//
// For each dataset size N and each strategy the runner measures three
// metrics, every one repeated Config.Runs times:
//
//   - build  — wall-clock of one construction, plus the heap growth
//     observed around it (GC-fenced runtime.ReadMemStats delta);
//   - query  — mean per-operation time over Config.Queries random valid
//     (left ≤ right) ranges against a freshly built structure;
//   - update — mean per-operation time over Config.Updates random
//     (index, value) pairs against a freshly built structure.
//
// Every timed run executes under a supervising timeout. The structures
// themselves have no cancellation semantics — a build mid-recursion cannot
// be interrupted without leaving state inconsistent — so on timeout the run
// is abandoned to finish in the background and the (metric, strategy) pair
// is skipped for all larger sizes. Validation errors surfacing from the
// structures are harness errors and abort the whole run; they are never
// swallowed.
//
// Aggregation uses gonum's mean and population standard deviation. Results
// carry seconds (per construction for build, per operation otherwise) and
// bytes for the build memory column.
//
// # Usage
//
//	datasets, _ := dataset.LoadDir("datasets")
//	runner, err := bench.NewRunner(bench.DefaultConfig())
//	results, err := runner.Run(datasets)
//	err = bench.SaveCSV("results/benchmark_results.csv", results)
package bench
