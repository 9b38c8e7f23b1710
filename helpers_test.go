// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// null marks a hole in the int fixtures.
const null = -1

// intItems converts vals to items, null becomes a hole.
func intItems(vals ...int) []Item[int] {
	items := make([]Item[int], len(vals))
	for i, v := range vals {
		if v != null {
			items[i] = Some(v)
		}
	}
	return items
}

// strItems converts vals to items, "null" becomes a hole.
func strItems(vals ...string) []Item[string] {
	items := make([]Item[string], len(vals))
	for i, v := range vals {
		if v != nullToken {
			items[i] = Some(v)
		}
	}
	return items
}

func mustNew[V any](tb testing.TB, items []Item[V], k int) *Tree[V] {
	tb.Helper()
	tree, err := New(items, k)
	require.NoError(tb, err)
	return tree
}

func mustArray[V any](tb testing.TB, tree *Tree[V]) []Item[V] {
	tb.Helper()
	items, err := tree.ToArray()
	require.NoError(tb, err)
	return items
}

// bananaTree is the binary code tree for B, A and N.
func bananaTree(tb testing.TB) *Tree[string] {
	tb.Helper()
	return mustNew(tb, strItems("_", "_", "A", "B", "N", "null", "null"), 2)
}

// bananasTree is the ternary code tree for B, A, N and S.
func bananasTree(tb testing.TB) *Tree[string] {
	tb.Helper()
	return mustNew(tb, strItems(
		"_",
		"_", "_", "B",
		"S", "null", "null", "N", "null", "A", "null", "null", "null",
	), 3)
}

// seqTree returns the complete tree 0 ... n-1.
func seqTree(tb testing.TB, n, k int) *Tree[int] {
	tb.Helper()
	items := make([]Item[int], n)
	for i := range items {
		items[i] = Some(i)
	}
	return mustNew(tb, items, k)
}

// countPresent is the reference count of present values reachable
// through the child chains.
func countPresent[V any](a *arena[V], h handle) int {
	n := 0
	if a.isPresent(h) {
		n++
	}
	for c := a.nodes[h].child; c != nilHandle; c = a.nodes[c].sibling {
		n += countPresent(a, c)
	}
	return n
}

// checkNoValueBelowHole fails if a present node hangs below a hole.
func checkNoValueBelowHole[V any](tb testing.TB, a *arena[V], h handle) {
	tb.Helper()
	for c := a.nodes[h].child; c != nilHandle; c = a.nodes[c].sibling {
		if !a.isPresent(h) {
			require.Zero(tb, countPresent(a, c), "value below hole at index %d", a.nodes[h].idx)
			continue
		}
		checkNoValueBelowHole(tb, a, c)
	}
}

// checkInvariants verifies the structural invariants of t.
func checkInvariants[V any](tb testing.TB, t *Tree[V]) {
	tb.Helper()
	a := t.arena

	require.Equal(tb, t.size, a.present.Count(), "size vs. present bits\n%s", t.dumpString())
	require.Equal(tb, t.size, countPresent(a, rootHandle), "size vs. reachable values\n%s", t.dumpString())
	require.Equal(tb, a.heightFrom(rootHandle), t.height, "stale height\n%s", t.dumpString())
	require.Equal(tb, 0, a.nodes[rootHandle].idx)
	require.Equal(tb, nilHandle, a.nodes[rootHandle].sibling)
	checkNoValueBelowHole(tb, a, rootHandle)

	for h := range a.nodes[1:] {
		parent := handle(h + 1)
		want := a.nodes[parent].idx*t.k + 1
		for c := a.nodes[parent].child; c != nilHandle; c = a.nodes[c].sibling {
			require.Equal(tb, want, a.nodes[c].idx, "child chain of %d\n%s", a.nodes[parent].idx, t.dumpString())
			want++
		}
		require.LessOrEqual(tb, want, a.nodes[parent].idx*t.k+t.k+1)
	}
}
