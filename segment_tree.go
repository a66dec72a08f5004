package rmq

import "math"

// SegmentTree answers range-minimum queries through a complete binary tree
// over index ranges, stored as a flat float64 buffer addressed by the
// standard 2i+1 / 2i+2 child convention. Each node holds the minimum of
// the inclusive range it represents; leaves mirror the sequence elements.
//
// Complexity:
//
//	Build:  O(N) time, O(N) space (4N buffer bounds the recursion layout)
//	Update: O(log N) — repairs exactly the root-to-leaf path of the index
//	Query:  O(log N) — at most two paths diverge before fully-contained
//	        subtrees are reached
type SegmentTree struct {
	seq  []float64
	tree []float64
	n    int
}

// NewSegmentTree constructs a SegmentTree over a copy of seq.
func NewSegmentTree(seq []float64) (*SegmentTree, error) {
	if err := validateSequence(seq); err != nil {
		return nil, err
	}

	t := &SegmentTree{
		seq: append([]float64(nil), seq...),
		n:   len(seq),
	}
	// 4N safely accommodates the recursion for any N; a tight
	// power-of-two layout would need only 2N.
	t.tree = make([]float64, 4*t.n)
	t.construct(0, 0, t.n-1)

	return t, nil
}

// construct builds the subtree rooted at node covering [start, end],
// post-order: children first, then parent = min(children).
func (t *SegmentTree) construct(node, start, end int) {
	if start == end {
		t.tree[node] = t.seq[start]
		return
	}

	mid := (start + end) / 2
	t.construct(2*node+1, start, mid)
	t.construct(2*node+2, mid+1, end)
	t.tree[node] = math.Min(t.tree[2*node+1], t.tree[2*node+2])
}

// Update sets the element at index to value and recomputes every ancestor
// on the root-to-leaf path of that index.
func (t *SegmentTree) Update(index int, value float64) error {
	if err := validateUpdate(t.n, index, value); err != nil {
		return err
	}
	t.updateNode(0, 0, t.n-1, index, value)

	return nil
}

func (t *SegmentTree) updateNode(node, start, end, index int, value float64) {
	if start == end {
		t.seq[index] = value
		t.tree[node] = value
		return
	}

	mid := (start + end) / 2
	if index <= mid {
		t.updateNode(2*node+1, start, mid, index, value)
	} else {
		t.updateNode(2*node+2, mid+1, end, index, value)
	}
	// Repair the ancestor on the way back up.
	t.tree[node] = math.Min(t.tree[2*node+1], t.tree[2*node+2])
}

// Query returns the minimum over the inclusive range [left, right] by
// range decomposition: disjoint nodes contribute the +Inf identity,
// fully-contained nodes contribute their precomputed minimum, partial
// overlaps recurse into both children.
func (t *SegmentTree) Query(left, right int) (float64, error) {
	if err := validateRange(t.n, left, right); err != nil {
		return 0, err
	}

	return t.queryNode(0, 0, t.n-1, left, right), nil
}

func (t *SegmentTree) queryNode(node, start, end, left, right int) float64 {
	// Node range disjoint from the query: prune with the identity.
	if right < start || end < left {
		return math.Inf(1)
	}
	// Node range fully contained: the precomputed minimum stands.
	if left <= start && end <= right {
		return t.tree[node]
	}

	// Partial overlap: combine both children.
	mid := (start + end) / 2
	q1 := t.queryNode(2*node+1, start, mid, left, right)
	q2 := t.queryNode(2*node+2, mid+1, end, left, right)

	return math.Min(q1, q2)
}

// Len returns the sequence length.
func (t *SegmentTree) Len() int { return t.n }

// Strategy reports StrategySegmentTree.
func (t *SegmentTree) Strategy() Strategy { return StrategySegmentTree }
