package rmq

// New constructs the given strategy over seq.
//
// It is the polymorphic entry point used by the benchmark harness to
// iterate over all strategies uniformly; callers that know the concrete
// type they want can use the typed constructors directly.
//
// Fails with ErrUnknownStrategy for an unrecognized strategy, or with the
// constructor's own validation errors (ErrNilInput, ErrEmptyInput,
// ErrNaNValue).
func New(s Strategy, seq []float64) (RMQ, error) {
	switch s {
	case StrategyNaive:
		return NewNaive(seq)
	case StrategySqrtDecomposition:
		return NewSqrtDecomposition(seq)
	case StrategySegmentTree:
		return NewSegmentTree(seq)
	case StrategySparseTable:
		return NewSparseTable(seq)
	default:
		return nil, ErrUnknownStrategy
	}
}
