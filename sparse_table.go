package rmq

import "math"

// SparseTable answers range-minimum queries in O(1) through binary
// lifting: st[i][j] holds the minimum of the range starting at i with
// length 2^j, and any query range is covered by two (possibly
// overlapping) precomputed entries. Overlap is harmless because minimum
// is idempotent.
//
// The table is static: an update overwrites the sequence element and
// rebuilds the whole table. That is the deliberate trade-off this
// strategy demonstrates — O(1) queries bought with O(N log N) updates —
// so it suits read-heavy, rarely-mutated data only.
//
// Complexity:
//
//	Build:  O(N log N) time and space
//	Update: O(N log N) (full rebuild)
//	Query:  O(1)
type SparseTable struct {
	seq []float64
	lt  []int       // lt[k] = floor(log2(k)), k in [0, N]
	st  [][]float64 // st[i][j] = min of seq[i : i+2^j]
	n   int
}

// NewSparseTable constructs a SparseTable over a copy of seq.
func NewSparseTable(seq []float64) (*SparseTable, error) {
	if err := validateSequence(seq); err != nil {
		return nil, err
	}

	t := &SparseTable{
		seq: append([]float64(nil), seq...),
		n:   len(seq),
	}

	// Precompute floor(log2) by the halving recurrence.
	t.lt = make([]int, t.n+1)
	for k := 2; k <= t.n; k++ {
		t.lt[k] = t.lt[k/2] + 1
	}

	// floor(log2(N))+1 levels hold every j the recurrence can reach.
	levels := t.lt[t.n] + 1
	t.st = make([][]float64, t.n)
	for i := range t.st {
		t.st[i] = make([]float64, levels)
	}
	t.rebuild()

	return t, nil
}

// rebuild fills the table bottom-up: level 0 copies the sequence, level j
// combines the two half-length sub-ranges of level j-1.
func (t *SparseTable) rebuild() {
	for i := 0; i < t.n; i++ {
		t.st[i][0] = t.seq[i]
	}
	for j := 1; (1 << j) <= t.n; j++ {
		for i := 0; i+(1<<j) <= t.n; i++ {
			t.st[i][j] = math.Min(t.st[i][j-1], t.st[i+(1<<(j-1))][j-1])
		}
	}
}

// Update sets the element at index to value. No incremental repair path
// exists; the entire table is rebuilt.
func (t *SparseTable) Update(index int, value float64) error {
	if err := validateUpdate(t.n, index, value); err != nil {
		return err
	}
	t.seq[index] = value
	t.rebuild()

	return nil
}

// Query returns the minimum over the inclusive range [left, right] by
// combining the two largest power-of-two sub-ranges that cover it.
func (t *SparseTable) Query(left, right int) (float64, error) {
	if err := validateRange(t.n, left, right); err != nil {
		return 0, err
	}

	j := t.lt[right-left+1]

	return math.Min(t.st[left][j], t.st[right-(1<<j)+1][j]), nil
}

// Len returns the sequence length.
func (t *SparseTable) Len() int { return t.n }

// Strategy reports StrategySparseTable.
func (t *SparseTable) Strategy() Strategy { return StrategySparseTable }
