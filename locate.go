// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import "github.com/gaissmai/ktree/internal/index"

// locate returns the node with index i, nilHandle if it is not materialized.
func (a *arena[V]) locate(i, k int) handle {
	path := index.Path(i, k)
	if path == nil {
		return nilHandle
	}

	h := rootHandle
	for _, want := range path[1:] {
		if h = a.childAt(h, want); h == nilHandle {
			return nilHandle
		}
	}
	return h
}

// childAt walks the child chain of parent to the node with index want.
func (a *arena[V]) childAt(parent handle, want int) handle {
	for c := a.nodes[parent].child; c != nilHandle; c = a.nodes[c].sibling {
		switch idx := a.nodes[c].idx; {
		case idx == want:
			return c
		case idx > want:
			return nilHandle
		}
	}
	return nilHandle
}

// materialize extends the child chain of parent with holes up to
// index want and returns the handle of want.
func (a *arena[V]) materialize(parent handle, want, k int) handle {
	next := index.FirstChild(a.nodes[parent].idx, k)
	last := nilHandle

	for c := a.nodes[parent].child; c != nilHandle; c = a.nodes[c].sibling {
		last = c
		next = a.nodes[c].idx + 1
	}

	h := nilHandle
	for ; next <= want; next++ {
		h = a.alloc(next)
		if last == nilHandle {
			a.nodes[parent].child = h
		} else {
			a.nodes[last].sibling = h
		}
		last = h
	}
	return h
}
