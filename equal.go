// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import (
	"github.com/gaissmai/ktree/internal/deque"
	"github.com/gaissmai/ktree/internal/value"
)

// Equal reports whether t and o have the same branching factor
// and hold equal values at the same indices. Holes without values
// below them do not count.
//
// Values are compared with their Equal method if V implements
// Equal(V) bool, otherwise with reflect.DeepEqual.
func (t *Tree[V]) Equal(o *Tree[V]) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t == o {
		return true
	}

	if t.k != o.k || t.size != o.size || t.height != o.height {
		return false
	}

	a, b := t.arena.presentInOrder(), o.arena.presentInOrder()
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		na, nb := t.arena.nodes[a[i]], o.arena.nodes[b[i]]
		if na.idx != nb.idx || !value.Equal(na.val, nb.val) {
			return false
		}
	}
	return true
}

// presentInOrder returns the handles of all present nodes,
// breadth-first and thus in ascending index order.
// Holes are walked through.
func (a *arena[V]) presentInOrder() []handle {
	var hs []handle
	var queue deque.Queue[handle]

	queue.Enqueue(rootHandle)
	for head, ok := queue.Dequeue(); ok; head, ok = queue.Dequeue() {
		for h := head; h != nilHandle; h = a.nodes[h].sibling {
			if a.isPresent(h) {
				hs = append(hs, h)
			}
			if c := a.nodes[h].child; c != nilHandle {
				queue.Enqueue(c)
			}
		}
	}
	return hs
}
