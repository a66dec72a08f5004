package rmq

import "math"

// SqrtDecomposition answers range-minimum queries by partitioning the
// sequence into ⌈√N⌉-sized contiguous blocks and keeping one precomputed
// minimum per block. Queries fold loose elements at the edges and whole
// blocks in the middle; updates rescan the owning block so the block
// minimum can both fall and rise.
//
// Complexity:
//
//	Build:  O(N)
//	Update: O(√N) — rescan of the owning block
//	Query:  O(√N) — at most 2·blockSize loose elements plus √N blocks
type SqrtDecomposition struct {
	seq       []float64
	blockMin  []float64
	blockSize int
}

// NewSqrtDecomposition constructs a SqrtDecomposition over a copy of seq.
func NewSqrtDecomposition(seq []float64) (*SqrtDecomposition, error) {
	if err := validateSequence(seq); err != nil {
		return nil, err
	}

	n := len(seq)
	blockSize := int(math.Ceil(math.Sqrt(float64(n))))
	numBlocks := (n + blockSize - 1) / blockSize

	s := &SqrtDecomposition{
		seq:       append([]float64(nil), seq...),
		blockMin:  make([]float64, numBlocks),
		blockSize: blockSize,
	}
	for b := range s.blockMin {
		s.blockMin[b] = math.Inf(1)
	}
	for i, v := range s.seq {
		b := i / blockSize
		if v < s.blockMin[b] {
			s.blockMin[b] = v
		}
	}

	return s, nil
}

// Update sets the element at index to value and recomputes the owning
// block's minimum by rescanning all of its members. Folding only the new
// value into the stored minimum would never let the minimum rise after
// the block's smallest element is overwritten with a larger one.
func (s *SqrtDecomposition) Update(index int, value float64) error {
	if err := validateUpdate(len(s.seq), index, value); err != nil {
		return err
	}
	s.seq[index] = value

	b := index / s.blockSize
	start := b * s.blockSize
	end := start + s.blockSize
	if end > len(s.seq) {
		end = len(s.seq)
	}

	minVal := math.Inf(1)
	for i := start; i < end; i++ {
		if s.seq[i] < minVal {
			minVal = s.seq[i]
		}
	}
	s.blockMin[b] = minVal

	return nil
}

// Query returns the minimum over the inclusive range [left, right] in
// three phases: loose elements until the first block boundary, whole
// blocks via their precomputed minima, then the remaining tail.
func (s *SqrtDecomposition) Query(left, right int) (float64, error) {
	if err := validateRange(len(s.seq), left, right); err != nil {
		return 0, err
	}

	minVal := math.Inf(1)

	// Head: advance element-by-element to the first block boundary.
	for left < right && left%s.blockSize != 0 {
		if s.seq[left] < minVal {
			minVal = s.seq[left]
		}
		left++
	}

	// Middle: fold whole blocks that fit entirely inside the range.
	for left+s.blockSize-1 <= right {
		if s.blockMin[left/s.blockSize] < minVal {
			minVal = s.blockMin[left/s.blockSize]
		}
		left += s.blockSize
	}

	// Tail: scan the remainder element-by-element.
	for left <= right {
		if s.seq[left] < minVal {
			minVal = s.seq[left]
		}
		left++
	}

	return minVal, nil
}

// Len returns the sequence length.
func (s *SqrtDecomposition) Len() int { return len(s.seq) }

// Strategy reports StrategySqrtDecomposition.
func (s *SqrtDecomposition) Strategy() Strategy { return StrategySqrtDecomposition }
