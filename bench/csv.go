package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// csvHeader is the stable column layout consumed by external plotting.
var csvHeader = []string{"Metric", "N", "Strategy", "Mean", "StdDev", "MemoryBytes"}

// WriteCSV writes results to w with one row per Result. The MemoryBytes
// column is populated for build rows and empty otherwise.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("bench: write csv header: %w", err)
	}

	for _, res := range results {
		mem := ""
		if res.Metric == MetricBuild {
			mem = strconv.FormatUint(res.MemoryBytes, 10)
		}
		row := []string{
			string(res.Metric),
			strconv.Itoa(res.N),
			res.Strategy.String(),
			strconv.FormatFloat(res.Mean, 'g', -1, 64),
			strconv.FormatFloat(res.StdDev, 'g', -1, 64),
			mem,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("bench: write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("bench: flush csv: %w", err)
	}

	return nil
}

// SaveCSV writes results to path, creating parent directories as needed.
func SaveCSV(path string, results []Result) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("bench: create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: create %s: %w", path, err)
	}
	defer f.Close()

	if err = WriteCSV(f, results); err != nil {
		return err
	}

	return f.Sync()
}
