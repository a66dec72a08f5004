package rmq_test

import (
	"fmt"

	"github.com/katalvlaran/rmq"
)

// ExampleNew demonstrates the polymorphic contract: pick a strategy,
// interleave queries and updates, read minima over inclusive ranges.
func ExampleNew() {
	s, err := rmq.New(rmq.StrategySegmentTree, []float64{5.0, 3.0, 8.0, 2.0, 7.0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	min13, _ := s.Query(1, 3)
	fmt.Println("min[1..3] =", min13)

	_ = s.Update(3, 10.0)
	min04, _ := s.Query(0, 4)
	fmt.Println("min[0..4] =", min04)

	// Output:
	// min[1..3] = 2
	// min[0..4] = 3
}

// ExampleStrategies shows how a harness iterates all strategies uniformly —
// every implementation returns the same answer for the same range.
func ExampleStrategies() {
	seq := []float64{4.0, 1.5, 6.0, 0.5, 9.0}
	for _, strat := range rmq.Strategies() {
		s, err := rmq.New(strat, seq)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		minVal, _ := s.Query(1, 4)
		fmt.Printf("%s: %v\n", strat, minVal)
	}

	// Output:
	// Naive: 0.5
	// SqrtDecomposition: 0.5
	// SegmentTree: 0.5
	// SparseTable: 0.5
}

// ExampleNewSparseTable highlights the static/dynamic trade-off: O(1)
// queries, full-rebuild updates.
func ExampleNewSparseTable() {
	s, err := rmq.NewSparseTable([]float64{3.0, 1.0, 4.0, 1.0, 5.0, 9.0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	before, _ := s.Query(2, 5)
	_ = s.Update(3, 0.25) // triggers an O(N log N) rebuild
	after, _ := s.Query(2, 5)
	fmt.Println(before, after)

	// Output:
	// 1 0.25
}
