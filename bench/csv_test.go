package bench_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rmq"
	"github.com/katalvlaran/rmq/bench"
)

func sampleResults() []bench.Result {
	return []bench.Result{
		{Metric: bench.MetricBuild, N: 1000, Strategy: rmq.StrategySegmentTree, Mean: 0.0012, StdDev: 0.0001, MemoryBytes: 65536},
		{Metric: bench.MetricQuery, N: 1000, Strategy: rmq.StrategySegmentTree, Mean: 2.5e-7, StdDev: 1e-8},
		{Metric: bench.MetricUpdate, N: 1000, Strategy: rmq.StrategySparseTable, Mean: 3.1e-4, StdDev: 2e-5},
	}
}

// TestWriteCSV verifies the header, the row layout and the build-only
// memory column.
func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bench.WriteCSV(&buf, sampleResults()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Metric", "N", "Strategy", "Mean", "StdDev", "MemoryBytes"}, rows[0])
	assert.Equal(t, []string{"build", "1000", "SegmentTree", "0.0012", "0.0001", "65536"}, rows[1])
	assert.Equal(t, "query", rows[2][0])
	assert.Empty(t, rows[2][5], "memory column must be empty for non-build rows")
	assert.Equal(t, "SparseTable", rows[3][2])
}

// TestSaveCSV verifies directory creation and on-disk round trip.
func TestSaveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "benchmark_results.csv")
	require.NoError(t, bench.SaveCSV(path, sampleResults()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

// TestWriteCSV_Empty verifies a header-only file for no results.
func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bench.WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
