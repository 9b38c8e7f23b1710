// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import (
	"fmt"

	"github.com/gaissmai/ktree/internal/deque"
	"github.com/gaissmai/ktree/internal/index"
)

// MaxArrayLen is the largest flat array form ToArray and Subtree build.
const MaxArrayLen = 1 << 24

// ToArray returns the flat array form of the tree.
//
// The array has the capacity of a complete tree of the current height,
// trimmed after the level that holds the last value.
// A tree with an empty root returns a single hole.
//
// ErrTooLarge is returned if the array would exceed MaxArrayLen slots,
// e.g. for a huge branching factor.
func (t *Tree[V]) ToArray() ([]Item[V], error) {
	return t.arena.arrayFrom(rootHandle, t.height, t.k)
}

// Subtree returns the flat array form of the subtree rooted at index i,
// re-indexed so that i becomes 0.
func (t *Tree[V]) Subtree(i int) ([]Item[V], error) {
	h := t.arena.locate(i, t.k)
	if !t.arena.isPresent(h) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, i)
	}
	return t.arena.arrayFrom(h, t.arena.heightFrom(h), t.k)
}

func (a *arena[V]) arrayFrom(start handle, height, k int) ([]Item[V], error) {
	n := index.Capacity(height, k)
	if n > MaxArrayLen {
		return nil, fmt.Errorf("%w: height %d with k=%d", ErrTooLarge, height, k)
	}

	items, last := a.fill(start, n, k)

	if last >= 0 && last < n-1 {
		items = items[:min(n, index.LevelEnd(index.Depth(last, k), k)+1)]
	}
	return items, nil
}

// fillSlot is a pending child group with the relative index of its first node.
type fillSlot struct {
	head  handle
	first int
}

// fill writes the subtree rooted at start breadth-first into n slots
// at indices relative to start. It returns the slots and the last
// relative index holding a value, -1 if there is none.
func (a *arena[V]) fill(start handle, n, k int) (items []Item[V], last int) {
	items = make([]Item[V], n)
	last = -1

	var queue deque.Queue[fillSlot]

	put := func(h handle, rel int) {
		nd := a.nodes[h]
		if a.isPresent(h) {
			items[rel] = Some(nd.val)
			last = max(last, rel)
		}
		// the first child must fit, rel*k+1 <= n-1
		if nd.child != nilHandle && rel <= (n-2)/k {
			queue.Enqueue(fillSlot{head: nd.child, first: index.FirstChild(rel, k)})
		}
	}

	put(start, 0)
	for slot, ok := queue.Dequeue(); ok; slot, ok = queue.Dequeue() {
		rel := slot.first
		for h := slot.head; h != nilHandle && rel < n; h = a.nodes[h].sibling {
			put(h, rel)
			rel++
		}
	}

	return items, last
}
