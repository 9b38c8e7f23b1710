// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidBranchingFactor(t *testing.T) {
	t.Parallel()

	for _, k := range []int{-1, 0, 1} {
		tree, err := New(intItems(1, 2, 3), k)
		require.ErrorIs(t, err, ErrInvalidBranchingFactor, "k=%d", k)
		assert.Nil(t, tree)
	}
}

func TestNewEmpty(t *testing.T) {
	t.Parallel()

	for _, items := range [][]Item[int]{nil, {}, intItems(null)} {
		tree := mustNew(t, items, 2)

		assert.Equal(t, 0, tree.Size())
		assert.Equal(t, 0, tree.Height())
		assert.Equal(t, 2, tree.K())
		assert.Equal(t, []Item[int]{None[int]()}, mustArray(t, tree))
		assert.Equal(t, "", tree.String())
		assert.Empty(t, tree.Mirror())
		assert.Equal(t, "", tree.LevelOrderString())

		_, err := tree.Get(0)
		require.ErrorIs(t, err, ErrNotFound)

		checkInvariants(t, tree)
	}
}

func TestNewInvalidShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []Item[int]
		k     int
	}{
		{"below empty root", intItems(null, 1, 2), 2},
		{"below hole", intItems(0, null, null, 3), 2},
		{"deep below hole", intItems(0, 1, null, 3, null, null, null, null, null, null, null, null, null, 13), 2},
		{"ternary", intItems(0, 1, null, 3, null, null, null, 7), 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tree, err := New(tc.items, tc.k)
			require.ErrorIs(t, err, ErrInvalidTreeShape)
			assert.Nil(t, tree)
		})
	}
}

func TestFromPointers(t *testing.T) {
	t.Parallel()

	zero, two := 0, 2
	tree, err := FromPointers([]*int{&zero, nil, &two}, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, tree.Size())
	assert.Equal(t, intItems(0, null, 2), mustArray(t, tree))
}

func TestSizeHeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		items  []Item[int]
		k      int
		size   int
		height int
	}{
		{"root only", intItems(0), 2, 1, 0},
		{"root and holes", intItems(0, null, null, null, null, null, null), 2, 1, 0},
		{"two levels", intItems(0, 1, 2), 2, 3, 1},
		{"sparse", intItems(0, null, 2, null, null, 5, 6), 2, 4, 2},
		{"complete 15", intItems(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14), 2, 15, 3},
		{"ternary", intItems(0, 1, 2, 3, 4), 3, 5, 2},
		{"hole group", intItems(0, 1, null, 3, 4, null, null), 2, 4, 2},
		{"empty root", intItems(null, null, null), 2, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tree := mustNew(t, tc.items, tc.k)

			assert.Equal(t, tc.size, tree.Size(), "Size")
			assert.Equal(t, tc.height, tree.Height(), "Height")
			checkInvariants(t, tree)
		})
	}
}

func TestHeightAfterSet(t *testing.T) {
	t.Parallel()

	tree := mustNew(t, intItems(0, null, null, null, null, null, null), 2)
	require.Equal(t, 0, tree.Height())

	require.NoError(t, tree.Set(1, 5))
	assert.Equal(t, 1, tree.Height())
	assert.Equal(t, 2, tree.Size())

	require.NoError(t, tree.Delete(1))
	assert.Equal(t, 0, tree.Height())
	assert.Equal(t, 1, tree.Size())

	require.NoError(t, tree.Set(2, 3))
	assert.Equal(t, 1, tree.Height())
	assert.Equal(t, 2, tree.Size())

	checkInvariants(t, tree)
}

func TestGet(t *testing.T) {
	t.Parallel()

	tree := bananaTree(t)

	tests := []struct {
		idx  int
		want string
		ok   bool
	}{
		{0, "_", true},
		{1, "_", true},
		{2, "A", true},
		{3, "B", true},
		{4, "N", true},
		{5, "", false}, // hole
		{6, "", false}, // hole
		{7, "", false}, // missing
		{100, "", false},
		{-1, "", false},
	}

	for _, tc := range tests {
		got, err := tree.Get(tc.idx)
		if !tc.ok {
			require.ErrorIs(t, err, ErrNotFound, "Get(%d)", tc.idx)
			continue
		}
		require.NoError(t, err, "Get(%d)", tc.idx)
		assert.Equal(t, tc.want, got, "Get(%d)", tc.idx)
	}
}

func TestSetBuildsTree(t *testing.T) {
	t.Parallel()

	tree := mustNew[int](t, nil, 2)

	require.NoError(t, tree.Set(0, 1))
	require.NoError(t, tree.Set(1, 2))
	require.NoError(t, tree.Set(2, 3))
	require.NoError(t, tree.Set(3, 1))

	assert.Equal(t, 4, tree.Size())
	assert.Equal(t, 2, tree.Height())
	assert.Equal(t, "1\n2 3\n1 null null null", tree.String())
	checkInvariants(t, tree)

	require.NoError(t, tree.Delete(3))
	assert.Equal(t, "1\n2 3", tree.String())
	assert.Equal(t, 3, tree.Size())
	assert.Equal(t, 1, tree.Height())
	checkInvariants(t, tree)
}

func TestSetReplace(t *testing.T) {
	t.Parallel()

	tree := mustNew(t, intItems(0, 1, 2), 2)

	require.NoError(t, tree.Set(1, 11))
	got, err := tree.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 11, got)
	assert.Equal(t, 3, tree.Size(), "replace must not change size")
}

func TestSetMaterializesHoles(t *testing.T) {
	t.Parallel()

	tree := mustNew(t, intItems(0), 3)

	require.NoError(t, tree.Set(3, 9))
	assert.Equal(t, 2, tree.Size())
	assert.Equal(t, 1, tree.Height())
	assert.Equal(t, intItems(0, null, null, 9), mustArray(t, tree))

	_, err := tree.Get(1)
	require.ErrorIs(t, err, ErrNotFound, "materialized slot is a hole")

	require.NoError(t, tree.Set(1, 4))
	assert.Equal(t, 3, tree.Size())
	assert.Equal(t, intItems(0, 4, null, 9), mustArray(t, tree))

	checkInvariants(t, tree)
}

func TestSetRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []Item[int]
		idx   int
		err   error
	}{
		{"negative", intItems(0, 1, 2), -1, ErrInvalidIndex},
		{"below hole", intItems(0, null, 2), 3, ErrInvalidTreeShape},
		{"below missing", intItems(0, 1, 2), 7, ErrInvalidTreeShape},
		{"below empty root", intItems(null), 1, ErrInvalidTreeShape},
		{"deep below hole", intItems(0, null, 2), 8, ErrInvalidTreeShape},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tree := mustNew(t, tc.items, 2)
			before := mustArray(t, tree)
			nodes := len(tree.arena.nodes)

			err := tree.Set(tc.idx, 42)
			require.ErrorIs(t, err, tc.err)

			assert.Equal(t, before, mustArray(t, tree), "tree changed")
			assert.Equal(t, nodes, len(tree.arena.nodes), "nodes allocated")
			checkInvariants(t, tree)
		})
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	tree := mustNew(t, intItems(0, null, 2, null, null, 5, 6), 2)
	require.Equal(t, "0\nnull 2\nnull null 5 6", tree.String())

	require.ErrorIs(t, tree.Delete(2), ErrNotRemovable, "has children")
	require.ErrorIs(t, tree.Delete(1), ErrNotRemovable, "hole")
	require.ErrorIs(t, tree.Delete(99), ErrNotRemovable, "missing")
	require.ErrorIs(t, tree.Delete(-1), ErrNotRemovable, "negative")
	require.Equal(t, 4, tree.Size())

	require.NoError(t, tree.Delete(6))
	assert.Equal(t, "0\nnull 2\nnull null 5 null", tree.String())
	assert.Equal(t, 3, tree.Size())
	assert.Equal(t, 2, tree.Height())

	require.NoError(t, tree.Delete(5))
	assert.Equal(t, "0\nnull 2", tree.String())
	assert.Equal(t, 1, tree.Height())

	require.NoError(t, tree.Delete(2))
	assert.Equal(t, "0", tree.String())
	assert.Equal(t, 0, tree.Height())

	require.NoError(t, tree.Delete(0))
	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, "", tree.String())
	assert.Equal(t, intItems(null), mustArray(t, tree))
	checkInvariants(t, tree)

	// the placeholders survive, the tree can grow again
	require.NoError(t, tree.Set(0, 7))
	require.NoError(t, tree.Set(2, 8))
	assert.Equal(t, "7\nnull 8", tree.String())
	checkInvariants(t, tree)
}

func TestDeleteThenSetSameSlot(t *testing.T) {
	t.Parallel()

	tree := seqTree(t, 7, 2)
	nodes := len(tree.arena.nodes)

	require.NoError(t, tree.Delete(6))
	require.NoError(t, tree.Set(6, 60))

	got, err := tree.Get(6)
	require.NoError(t, err)
	assert.Equal(t, 60, got)
	assert.Equal(t, 7, tree.Size())
	assert.Equal(t, nodes, len(tree.arena.nodes), "hole must be reused")
}
