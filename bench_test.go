package rmq_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rmq"
)

// benchSequence returns a deterministic pseudo-random sequence of length n.
func benchSequence(n int) []float64 {
	rng := rand.New(rand.NewSource(42))
	seq := make([]float64, n)
	for i := range seq {
		seq[i] = rng.Float64()*2000 - 1000
	}

	return seq
}

// benchmarkBuild measures construction cost for one strategy and size.
func benchmarkBuild(b *testing.B, strat rmq.Strategy, n int) {
	seq := benchSequence(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rmq.New(strat, seq); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// benchmarkQuery measures random-range query cost for one strategy and size.
func benchmarkQuery(b *testing.B, strat rmq.Strategy, n int) {
	seq := benchSequence(n)
	s, err := rmq.New(strat, seq)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	rng := rand.New(rand.NewSource(7))
	lefts := make([]int, 1024)
	rights := make([]int, 1024)
	for i := range lefts {
		a, c := rng.Intn(n), rng.Intn(n)
		if a > c {
			a, c = c, a
		}
		lefts[i], rights[i] = a, c
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := i & 1023
		if _, err = s.Query(lefts[k], rights[k]); err != nil {
			b.Fatalf("Query failed: %v", err)
		}
	}
}

// benchmarkUpdate measures random point-update cost for one strategy and size.
func benchmarkUpdate(b *testing.B, strat rmq.Strategy, n int) {
	seq := benchSequence(n)
	s, err := rmq.New(strat, seq)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	rng := rand.New(rand.NewSource(7))
	idx := make([]int, 1024)
	val := make([]float64, 1024)
	for i := range idx {
		idx[i] = rng.Intn(n)
		val[i] = rng.Float64()*2000 - 1000
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := i & 1023
		if err = s.Update(idx[k], val[k]); err != nil {
			b.Fatalf("Update failed: %v", err)
		}
	}
}

func BenchmarkBuild_Naive_10k(b *testing.B)       { benchmarkBuild(b, rmq.StrategyNaive, 10_000) }
func BenchmarkBuild_Sqrt_10k(b *testing.B)        { benchmarkBuild(b, rmq.StrategySqrtDecomposition, 10_000) }
func BenchmarkBuild_SegmentTree_10k(b *testing.B) { benchmarkBuild(b, rmq.StrategySegmentTree, 10_000) }
func BenchmarkBuild_SparseTable_10k(b *testing.B) { benchmarkBuild(b, rmq.StrategySparseTable, 10_000) }

func BenchmarkQuery_Naive_10k(b *testing.B)       { benchmarkQuery(b, rmq.StrategyNaive, 10_000) }
func BenchmarkQuery_Sqrt_10k(b *testing.B)        { benchmarkQuery(b, rmq.StrategySqrtDecomposition, 10_000) }
func BenchmarkQuery_SegmentTree_10k(b *testing.B) { benchmarkQuery(b, rmq.StrategySegmentTree, 10_000) }
func BenchmarkQuery_SparseTable_10k(b *testing.B) { benchmarkQuery(b, rmq.StrategySparseTable, 10_000) }

func BenchmarkUpdate_Naive_10k(b *testing.B)       { benchmarkUpdate(b, rmq.StrategyNaive, 10_000) }
func BenchmarkUpdate_Sqrt_10k(b *testing.B)        { benchmarkUpdate(b, rmq.StrategySqrtDecomposition, 10_000) }
func BenchmarkUpdate_SegmentTree_10k(b *testing.B) { benchmarkUpdate(b, rmq.StrategySegmentTree, 10_000) }

// SparseTable updates rebuild the whole table; keep the size small so the
// benchmark finishes in reasonable time.
func BenchmarkUpdate_SparseTable_1k(b *testing.B) { benchmarkUpdate(b, rmq.StrategySparseTable, 1_000) }
