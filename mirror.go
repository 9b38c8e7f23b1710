// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import "github.com/gaissmai/ktree/internal/deque"

// Mirror returns the values of the tree level by level, each level
// read from right to left. Holes are skipped.
func (t *Tree[V]) Mirror() []V {
	a := t.arena
	vals := make([]V, 0, t.size)

	var groups deque.Queue[handle]
	var level deque.Stack[handle]

	groups.Enqueue(rootHandle)
	for !groups.IsEmpty() {
		var next deque.Queue[handle]

		for head, ok := groups.Dequeue(); ok; head, ok = groups.Dequeue() {
			for h := head; h != nilHandle; h = a.nodes[h].sibling {
				level.Push(h)
				if c := a.nodes[h].child; c != nilHandle {
					next.Enqueue(c)
				}
			}
		}

		for h, ok := level.Pop(); ok; h, ok = level.Pop() {
			if a.isPresent(h) {
				vals = append(vals, a.nodes[h].val)
			}
		}

		groups = next
	}

	return vals
}
