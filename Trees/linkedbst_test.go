package Trees_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/ordered-tree/Trees"
)

func TestSmallTree(t *testing.T) {
	require := require.New(t)
	tree := Trees.From(5, 3, 8, 1, 4, 7, 9)

	require.Equal([]int{1, 3, 4, 5, 7, 8, 9}, slices.Collect(tree.InOrder()))
	require.Equal([]int{5, 3, 1, 4, 8, 7, 9}, slices.Collect(tree.All()))
	require.Equal([]int{1, 4, 3, 7, 9, 8, 5}, slices.Collect(tree.PostOrder()))
	require.Equal([]int{5, 3, 8, 1, 4, 7, 9}, slices.Collect(tree.LevelOrder()))
	require.Equal(2, tree.Height())
	require.True(tree.IsBalanced())
	require.EqualValues(7, tree.Size())

	v, ok := tree.Successor(4)
	require.True(ok)
	require.Equal(5, v)
	v, ok = tree.Predecessor(5)
	require.True(ok)
	require.Equal(4, v)
	_, ok = tree.Successor(9)
	require.False(ok)
	_, ok = tree.Predecessor(1)
	require.False(ok)
	v, ok = tree.Successor(6)
	require.True(ok)
	require.Equal(7, v)

	require.Equal([]int{3, 4, 5, 7, 8}, tree.RangeFind(3, 8))
	require.Empty(tree.RangeFind(10, 20))
	require.Empty(tree.RangeFind(8, 3))
}

func TestSkewedRebalance(t *testing.T) {
	require := require.New(t)
	tree := Trees.From(1, 2, 3, 4, 5)
	require.Equal(4, tree.Height())

	tree.Rebalance()
	require.Equal(2, tree.Height())
	require.Equal([]int{1, 2, 3, 4, 5}, slices.Collect(tree.InOrder()))
	require.Equal([]int{3, 2, 1, 5, 4}, slices.Collect(tree.All()))
	require.EqualValues(5, tree.Size())
	require.False(tree.Corrupt())
}

func TestHeight(t *testing.T) {
	tree := Trees.New[string]()
	assert.Equal(t, -1, tree.Height())
	assert.True(t, tree.IsBalanced())
	tree.Add("a")
	assert.Equal(t, 0, tree.Height())
	tree.Rebalance()
	assert.Equal(t, 0, tree.Height())
	tree.Clear()
	tree.Rebalance()
	assert.Equal(t, -1, tree.Height())
	assert.True(t, tree.Empty())
}

func TestRemoveCases(t *testing.T) {
	full := []int{5, 3, 8, 1, 4, 7, 9}
	tests := []struct {
		name   string
		in     []int
		remove int
		pre    []int
	}{
		{"Leaf", full, 1, []int{5, 3, 4, 8, 7, 9}},
		{"OnlyRight", []int{5, 3, 8, 9}, 8, []int{5, 3, 9}},
		{"OnlyLeft", []int{5, 3, 8, 7}, 8, []int{5, 3, 7}},
		{"BothChildren", full, 3, []int{5, 1, 4, 8, 7, 9}},
		{"BothChildrenDeep", append(slices.Clone(full), 2), 5, []int{4, 3, 1, 2, 8, 7, 9}},
		{"Root", full, 5, []int{4, 3, 1, 8, 7, 9}},
		{"RootOnlyChild", []int{5, 8, 7}, 5, []int{8, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			tree := Trees.From(tt.in...)
			v, err := tree.Remove(tt.remove)
			require.NoError(err)
			require.Equal(tt.remove, v)
			require.Equal(tt.pre, slices.Collect(tree.All()))
			require.EqualValues(len(tt.in)-1, tree.Size())
			require.False(tree.Has(tt.remove))
			require.False(tree.Corrupt())
		})
	}
}

func TestRemoveRootChain(t *testing.T) {
	require := require.New(t)
	tree := Trees.From(1, 2, 3)
	for _, v := range []int{1, 2, 3} {
		_, err := tree.Remove(v)
		require.NoError(err)
	}
	require.True(tree.Empty())
	require.EqualValues(0, tree.Size())

	tree = Trees.From(3, 2, 1)
	_, err := tree.Remove(3)
	require.NoError(err)
	require.Equal([]int{2, 1}, slices.Collect(tree.All()))
}

func TestRemoveMissing(t *testing.T) {
	require := require.New(t)
	_, err := Trees.New[int]().Remove(7)
	require.ErrorIs(err, Trees.ErrNotFound)

	tree := Trees.From(5, 3, 8)
	before := tree.String()
	_, err = tree.Remove(4)
	require.ErrorIs(err, Trees.ErrNotFound)
	var nf *Trees.NotFoundError[int]
	require.True(errors.As(err, &nf))
	require.Equal(4, nf.Item)
	require.Equal(before, tree.String())
	require.EqualValues(3, tree.Size())
}

func TestFindEmpty(t *testing.T) {
	tree := Trees.New[float64]()
	_, ok := tree.Find(1.5)
	assert.False(t, ok)
	assert.False(t, tree.Has(0))
	_, ok = tree.Minimum()
	assert.False(t, ok)
	_, ok = tree.Successor(0)
	assert.False(t, ok)
	assert.Empty(t, slices.Collect(tree.All()))
	assert.Empty(t, slices.Collect(tree.InOrder()))
	assert.Empty(t, tree.RangeFind(-1, 1))
	assert.Equal(t, "", tree.String())
}

func TestDuplicates(t *testing.T) {
	require := require.New(t)
	tree := Trees.From(4, 2, 4, 6, 4)
	require.Equal([]int{2, 4, 4, 4, 6}, slices.Collect(tree.InOrder()))
	require.Equal([]int{4, 4, 4}, tree.RangeFind(4, 4))
	require.EqualValues(5, tree.Size())

	for range 3 {
		_, err := tree.Remove(4)
		require.NoError(err)
		require.False(tree.Corrupt())
	}
	require.False(tree.Has(4))
	require.Equal([]int{2, 6}, slices.Collect(tree.InOrder()))
}

func TestString(t *testing.T) {
	tree := Trees.From("m", "c", "x", "a")
	assert.Equal(t, "| x\nm\n| c\n| | a\n", tree.String())
}
