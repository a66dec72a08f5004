// Package rmq answers range-minimum queries over a mutable sequence of
// float64 values through four interchangeable strategies with different
// time/space trade-offs.
//
// Every strategy implements the same three-operation contract — construct
// from a sequence, update one element, query the minimum over an inclusive
// index range — so a caller picks one at construction time and uses it
// polymorphically through the RMQ interface.
//
// The strategies offered are:
//
//   - Naive
//
//   - Method: linear scan of the queried range, no auxiliary state.
//
//   - Build: O(1) · Update: O(1) · Query: O(N).
//
//   - Use as a correctness oracle or for small sequences.
//
//   - SqrtDecomposition
//
//   - Method: partition into ⌈√N⌉-sized blocks with precomputed block minima.
//
//   - Build: O(N) · Update: O(√N) (rescans the owning block) · Query: O(√N).
//
//   - Balanced choice when both updates and queries are frequent.
//
//   - SegmentTree
//
//   - Method: recursive binary tree over index ranges in a flat 4N buffer.
//
//   - Build: O(N) · Update: O(log N) · Query: O(log N).
//
//   - Best general-purpose choice for interleaved workloads.
//
//   - SparseTable
//
//   - Method: binary lifting — precomputed minima for every power-of-two
//     length, so any range is covered by two (possibly overlapping) entries.
//
//   - Build: O(N log N) · Update: O(N log N) (full rebuild) · Query: O(1).
//
//   - Static structure; unbeatable for read-heavy, rarely-updated data.
//
// # API
//
// The shared contract:
//
//	type RMQ interface {
//	    Update(index int, value float64) error
//	    Query(left, right int) (float64, error)
//	    Len() int
//	    Strategy() Strategy
//	}
//
// Construct either through the concrete constructors (NewNaive,
// NewSqrtDecomposition, NewSegmentTree, NewSparseTable) or through the
// strategy-keyed factory:
//
//	s, err := rmq.New(rmq.StrategySegmentTree, []float64{5, 3, 8, 2, 7})
//	if err != nil { ... }
//	minVal, err := s.Query(1, 3) // 2
//	err = s.Update(3, 10)
//
// Constructors copy the input slice; the sequence is owned exclusively by
// the structure and mutated only through Update.
//
// # Errors
//
//	ErrNilInput         - nil sequence passed to a constructor.
//	ErrEmptyInput       - zero-length sequence passed to a constructor.
//	ErrNaNValue         - NaN element at construction or NaN update value.
//	ErrIndexOutOfBounds - index or range bound outside [0, N).
//	ErrInvalidRange     - left bound greater than right bound.
//	ErrUnknownStrategy  - unrecognized Strategy passed to New.
//
// All validation happens before any mutation or traversal: a failed Update
// leaves the sequence and auxiliary structures untouched, and the structure
// remains usable after any error.
//
// # Concurrency
//
// All operations are synchronous and single-owner. No structure is safe for
// concurrent mutation; wrap with external synchronization (or snapshot) if
// multiple goroutines must read while one updates.
//
// Companion packages: dataset/ generates and persists benchmark inputs,
// bench/ measures build/query/update cost across strategies and exports CSV.
package rmq
