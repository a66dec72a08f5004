package rmq

import "math"

// Shared validation for all four strategies. Every check is pure, runs
// before any mutation or traversal, and returns a plain sentinel so call
// sites can match with errors.Is.

// validateSequence guards constructors: the input must be a non-nil,
// non-empty sequence of ordered (non-NaN) values. O(N).
func validateSequence(seq []float64) error {
	if seq == nil {
		return ErrNilInput
	}
	if len(seq) == 0 {
		return ErrEmptyInput
	}
	for _, v := range seq {
		if math.IsNaN(v) {
			return ErrNaNValue
		}
	}

	return nil
}

// validateUpdate guards Update calls against a sequence of length n.
// Value kind is checked before bounds, mirroring construction order. O(1).
func validateUpdate(n, index int, value float64) error {
	if math.IsNaN(value) {
		return ErrNaNValue
	}
	if index < 0 || index >= n {
		return ErrIndexOutOfBounds
	}

	return nil
}

// validateRange guards Query calls: both bounds inside [0, n), then
// ordering. Bounds are checked before ordering so an out-of-bounds
// inverted range reports ErrIndexOutOfBounds. O(1).
func validateRange(n, left, right int) error {
	if left < 0 || left >= n || right < 0 || right >= n {
		return ErrIndexOutOfBounds
	}
	if left > right {
		return ErrInvalidRange
	}

	return nil
}
