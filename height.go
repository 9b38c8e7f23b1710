// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import "github.com/gaissmai/ktree/internal/deque"

// levelSlot is a pending child group in a breadth-first sweep.
type levelSlot struct {
	head  handle
	level int
}

// heightFrom sweeps the subtree rooted at start breadth-first and
// returns the deepest level reached. Siblings of start are not visited.
//
// A child group is one level below its parent only if any node of
// the group holds a value, otherwise it stays on the parent's level.
func (a *arena[V]) heightFrom(start handle) int {
	if !a.isPresent(start) {
		return 0
	}

	var queue deque.Queue[levelSlot]
	height := 0

	visit := func(h handle, level int) {
		height = max(height, level)

		first := a.nodes[h].child
		if first == nilHandle {
			return
		}
		if a.groupHasPresent(first) {
			level++
		}
		queue.Enqueue(levelSlot{head: first, level: level})
	}

	visit(start, 0)
	for slot, ok := queue.Dequeue(); ok; slot, ok = queue.Dequeue() {
		for h := slot.head; h != nilHandle; h = a.nodes[h].sibling {
			visit(h, slot.level)
		}
	}

	return height
}
