package rmq

// Strategy selects one of the interchangeable range-minimum-query
// implementations. All strategies answer identical queries; they differ
// only in build/update/query cost:
//
//	Strategy            Build       Update      Query
//	------------------  ----------  ----------  ------
//	Naive               O(1)        O(1)        O(N)
//	SqrtDecomposition   O(N)        O(√N)       O(√N)
//	SegmentTree         O(N)        O(log N)    O(log N)
//	SparseTable         O(N log N)  O(N log N)  O(1)
type Strategy int

const (
	// StrategyNaive scans the queried range directly; no auxiliary state.
	StrategyNaive Strategy = iota
	// StrategySqrtDecomposition partitions the sequence into ⌈√N⌉-sized
	// blocks and keeps one precomputed minimum per block.
	StrategySqrtDecomposition
	// StrategySegmentTree keeps a recursive binary tree of range minima
	// in a flat array.
	StrategySegmentTree
	// StrategySparseTable precomputes minima for every power-of-two range
	// length; queries are O(1), updates rebuild the whole table.
	StrategySparseTable
)

// String returns the canonical strategy name as used in benchmark output.
func (s Strategy) String() string {
	switch s {
	case StrategyNaive:
		return "Naive"
	case StrategySqrtDecomposition:
		return "SqrtDecomposition"
	case StrategySegmentTree:
		return "SegmentTree"
	case StrategySparseTable:
		return "SparseTable"
	default:
		return "Unknown"
	}
}

// RMQ is the contract shared by all four strategies.
//
// Update overwrites the element at index with value and repairs whatever
// auxiliary state the strategy maintains. Query returns the minimum over
// the inclusive range [left, right]. Both validate their arguments before
// touching any state, so a failed call leaves the structure unchanged and
// usable.
type RMQ interface {
	// Update sets the element at index to value.
	// Fails with ErrNaNValue or ErrIndexOutOfBounds.
	Update(index int, value float64) error

	// Query returns the minimum over the inclusive range [left, right].
	// Fails with ErrIndexOutOfBounds or ErrInvalidRange.
	Query(left, right int) (float64, error)

	// Len returns the sequence length N.
	Len() int

	// Strategy identifies the implementation behind the interface.
	Strategy() Strategy
}

// Strategies returns all strategies in their canonical benchmark order.
func Strategies() []Strategy {
	return []Strategy{
		StrategyNaive,
		StrategySqrtDecomposition,
		StrategySegmentTree,
		StrategySparseTable,
	}
}
