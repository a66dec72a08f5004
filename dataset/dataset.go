package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

var (
	// ErrUnknownDistribution indicates a Distribution name with no generator.
	ErrUnknownDistribution = errors.New("dataset: unknown distribution")
	// ErrBadSize indicates a requested size below 1.
	ErrBadSize = errors.New("dataset: size must be positive")
	// ErrNoSizeInName indicates a dataset filename without a numeric size.
	ErrNoSizeInName = errors.New("dataset: filename carries no size digits")
)

// Distribution names a built-in dataset generator. The string value is
// used verbatim as the filename prefix.
type Distribution string

const (
	// RandomUniform samples floats uniformly from [-1000, 1000).
	RandomUniform Distribution = "random_uniform"
	// RandomInt samples integer values uniformly from [-1000, 1000).
	RandomInt Distribution = "random_int"
	// SortedAscending is a linear ramp from -1000 up to 1000.
	SortedAscending Distribution = "sorted_ascending"
	// SortedDescending is a linear ramp from 1000 down to -1000.
	SortedDescending Distribution = "sorted_descending"
	// RepeatedValues draws from the small set {1, 2, 3, 4, 5}.
	RepeatedValues Distribution = "repeated_values"
)

// Value range shared by the random and ramp generators.
const (
	valueMin = -1000.0
	valueMax = 1000.0
)

// Distributions returns all built-in distributions in a fixed order.
func Distributions() []Distribution {
	return []Distribution{
		RandomUniform,
		RandomInt,
		SortedAscending,
		SortedDescending,
		RepeatedValues,
	}
}

// Generate produces n values of the given distribution. Each call uses a
// locally seeded generator, so identical (dist, n, seed) triples yield
// identical datasets.
func Generate(dist Distribution, n int, seed int64) ([]float64, error) {
	if n <= 0 {
		return nil, ErrBadSize
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)

	switch dist {
	case RandomUniform:
		for i := range out {
			out[i] = valueMin + rng.Float64()*(valueMax-valueMin)
		}
	case RandomInt:
		for i := range out {
			out[i] = valueMin + float64(rng.Intn(int(valueMax-valueMin)))
		}
	case SortedAscending:
		fillRamp(out, valueMin, valueMax)
	case SortedDescending:
		fillRamp(out, valueMax, valueMin)
	case RepeatedValues:
		for i := range out {
			out[i] = float64(rng.Intn(5) + 1)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistribution, dist)
	}

	return out, nil
}

// fillRamp writes a linear ramp from lo to hi inclusive. A single-element
// ramp holds just the start value.
func fillRamp(out []float64, from, to float64) {
	n := len(out)
	if n == 1 {
		out[0] = from
		return
	}

	step := (to - from) / float64(n-1)
	for i := range out {
		out[i] = from + step*float64(i)
	}
}

// Filename returns the canonical file name for a distribution and size.
func Filename(dist Distribution, n int) string {
	return fmt.Sprintf("%s_%d.json", dist, n)
}

// Save writes values as a JSON array, creating parent directories as
// needed.
func Save(path string, values []float64) error {
	raw, err := gojson.Marshal(values)
	if err != nil {
		return fmt.Errorf("dataset: encode %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("dataset: create %s: %w", dir, err)
		}
	}
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}

	return nil
}

// Load reads a JSON array of values from path.
func Load(path string) ([]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	var values []float64
	if err = gojson.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("dataset: decode %s: %w", path, err)
	}

	return values, nil
}

// LoadDir loads every *.json file in dir, keyed by the size parsed from
// the digits in its name. One distribution per directory is assumed; a
// later file with the same size replaces an earlier one.
func LoadDir(dir string) (map[int][]float64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dataset: read dir %s: %w", dir, err)
	}

	datasets := make(map[int][]float64)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		size, err := sizeFromName(entry.Name())
		if err != nil {
			return nil, err
		}
		values, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		datasets[size] = values
	}

	return datasets, nil
}

// Sizes returns the dataset sizes in ascending order.
func Sizes(datasets map[int][]float64) []int {
	sizes := lo.Keys(datasets)
	slices.Sort(sizes)

	return sizes
}

// sizeFromName extracts the concatenated digits of a filename as the
// dataset size ("random_uniform_10000.json" → 10000).
func sizeFromName(name string) (int, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, name)
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrNoSizeInName, name)
	}

	size, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("dataset: parse size of %q: %w", name, err)
	}

	return size, nil
}
