package rmq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rmq"
)

// TestSegmentTree_Decomposition exercises the three query cases (disjoint
// prune, full containment, partial overlap) on an odd-sized sequence where
// the recursion splits unevenly.
func TestSegmentTree_Decomposition(t *testing.T) {
	seq := []float64{2, 5, 1, 4, 9, 3, 6}
	s, err := rmq.NewSegmentTree(seq)
	require.NoError(t, err)

	cases := []struct {
		left, right int
		want        float64
	}{
		{0, 6, 1}, // root fully contained
		{0, 2, 1}, // prefix crossing two left-subtree nodes
		{3, 6, 3}, // suffix spanning the split point
		{1, 5, 1}, // partial overlap on both sides
		{4, 4, 9}, // single leaf
		{5, 6, 3}, // rightmost pair
	}
	for _, tc := range cases {
		got, err := s.Query(tc.left, tc.right)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Query(%d, %d)", tc.left, tc.right)
	}
}

// TestSegmentTree_UpdatePath verifies an update repairs every ancestor on
// the leaf's path: ranges at several granularities must all see it.
func TestSegmentTree_UpdatePath(t *testing.T) {
	s, err := rmq.NewSegmentTree([]float64{8, 7, 6, 5, 4, 3, 2, 1})
	require.NoError(t, err)

	require.NoError(t, s.Update(7, 100)) // previous global minimum

	for _, tc := range []struct {
		left, right int
		want        float64
	}{
		{7, 7, 100},
		{6, 7, 2},
		{4, 7, 2},
		{0, 7, 2},
		{0, 3, 5}, // untouched subtree keeps its answer
	} {
		got, err := s.Query(tc.left, tc.right)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Query(%d, %d) after update", tc.left, tc.right)
	}
}

// TestSegmentTree_NegativeValues ensures the +Inf identity never leaks
// into answers when all elements are negative.
func TestSegmentTree_NegativeValues(t *testing.T) {
	s, err := rmq.NewSegmentTree([]float64{-1, -8, -3})
	require.NoError(t, err)

	got, err := s.Query(0, 2)
	require.NoError(t, err)
	assert.Equal(t, -8.0, got)

	got, err = s.Query(2, 2)
	require.NoError(t, err)
	assert.Equal(t, -3.0, got)
}
