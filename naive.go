package rmq

import "math"

// Naive answers range-minimum queries by scanning the queried range
// directly. It keeps no auxiliary state: the sequence is the only storage.
//
// Complexity:
//
//	Build:  O(1) beyond the defensive copy
//	Update: O(1)
//	Query:  O(r-l+1)
//
// Use it as a correctness oracle for the other strategies, or when N is
// small enough that asymptotics do not matter.
type Naive struct {
	seq []float64
}

// NewNaive constructs a Naive structure over a copy of seq.
func NewNaive(seq []float64) (*Naive, error) {
	if err := validateSequence(seq); err != nil {
		return nil, err
	}

	return &Naive{seq: append([]float64(nil), seq...)}, nil
}

// Update sets the element at index to value.
func (s *Naive) Update(index int, value float64) error {
	if err := validateUpdate(len(s.seq), index, value); err != nil {
		return err
	}
	s.seq[index] = value

	return nil
}

// Query returns the minimum over the inclusive range [left, right] by
// linear scan with a running minimum.
func (s *Naive) Query(left, right int) (float64, error) {
	if err := validateRange(len(s.seq), left, right); err != nil {
		return 0, err
	}

	minVal := math.Inf(1)
	for i := left; i <= right; i++ {
		if s.seq[i] < minVal {
			minVal = s.seq[i]
		}
	}

	return minVal, nil
}

// Len returns the sequence length.
func (s *Naive) Len() int { return len(s.seq) }

// Strategy reports StrategyNaive.
func (s *Naive) Strategy() Strategy { return StrategyNaive }
