package bench

import (
	"errors"
	"time"

	"github.com/katalvlaran/rmq"
)

var (
	// ErrTimeout indicates a single timed run exceeded Config.Timeout.
	// Handled internally by skipping; exported for tests and wrappers.
	ErrTimeout = errors.New("bench: run exceeded timeout")
	// ErrBadConfig indicates a non-positive count, timeout or empty
	// strategy list in the configuration.
	ErrBadConfig = errors.New("bench: invalid configuration")
	// ErrNoDatasets indicates Run was called with no datasets.
	ErrNoDatasets = errors.New("bench: no datasets to run")
)

// Metric names one of the three measured operations.
type Metric string

const (
	// MetricBuild measures one full construction.
	MetricBuild Metric = "build"
	// MetricQuery measures the mean random-range query.
	MetricQuery Metric = "query"
	// MetricUpdate measures the mean random point update.
	MetricUpdate Metric = "update"
)

// Metrics returns the metrics in their canonical reporting order.
func Metrics() []Metric {
	return []Metric{MetricBuild, MetricQuery, MetricUpdate}
}

// Config controls a benchmark run.
//
// Defaults (DefaultConfig) mirror the reference workload: 5 repetitions,
// 500 queries and 500 updates per repetition, a 120s supervising timeout
// and a fixed seed for reproducible query/update streams.
type Config struct {
	// Runs is the number of repetitions per (metric, strategy, size).
	Runs int
	// Queries is the number of random range queries per repetition.
	Queries int
	// Updates is the number of random point updates per repetition.
	Updates int
	// Timeout bounds every individual timed run.
	Timeout time.Duration
	// Seed drives the random query/update streams.
	Seed int64
	// Strategies selects which implementations to measure.
	Strategies []rmq.Strategy
}

// DefaultConfig returns the reference workload configuration.
func DefaultConfig() Config {
	return Config{
		Runs:       5,
		Queries:    500,
		Updates:    500,
		Timeout:    120 * time.Second,
		Seed:       42,
		Strategies: rmq.Strategies(),
	}
}

// Result is one aggregated measurement: mean and population standard
// deviation over Config.Runs repetitions. Mean and StdDev are seconds —
// per construction for build, per operation for query and update.
// MemoryBytes is populated for build results only.
type Result struct {
	Metric      Metric
	N           int
	Strategy    rmq.Strategy
	Mean        float64
	StdDev      float64
	MemoryBytes uint64
}
