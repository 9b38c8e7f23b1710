// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import (
	"github.com/gaissmai/ktree/internal/bitset"
	"github.com/gaissmai/ktree/internal/value"
)

// handle addresses a node in the arena, the zero handle is nil.
type handle uint32

const (
	nilHandle  handle = 0
	rootHandle handle = 1
)

// node is one entry of the left-child / right-sibling structure.
// The payload is only meaningful if the arena marks the handle present.
type node[V any] struct {
	val     V
	idx     int
	child   handle
	sibling handle
}

// arena owns all nodes of a tree, slot 0 is unused.
type arena[V any] struct {
	nodes   []node[V]
	present bitset.BitSet
}

func newArena[V any](capacity int) *arena[V] {
	return &arena[V]{nodes: make([]node[V], 1, capacity+1)}
}

// alloc appends a hole with conceptual index idx.
// Pointers into nodes are invalid after alloc.
func (a *arena[V]) alloc(idx int) handle {
	a.nodes = append(a.nodes, node[V]{idx: idx})
	return handle(len(a.nodes) - 1)
}

func (a *arena[V]) isPresent(h handle) bool {
	return h != nilHandle && a.present.Test(uint(h))
}

func (a *arena[V]) store(h handle, val V) {
	a.nodes[h].val = val
	a.present.Set(uint(h))
}

func (a *arena[V]) erase(h handle) {
	var zero V
	a.nodes[h].val = zero
	a.present.Clear(uint(h))
}

// groupHasPresent reports whether any node in the sibling chain
// starting at first holds a value.
func (a *arena[V]) groupHasPresent(first handle) bool {
	for h := first; h != nilHandle; h = a.nodes[h].sibling {
		if a.isPresent(h) {
			return true
		}
	}
	return false
}

// clone copies the arena, payloads are copied with cloneFn.
func (a *arena[V]) clone(cloneFn value.CloneFunc[V]) *arena[V] {
	c := &arena[V]{
		nodes:   make([]node[V], len(a.nodes)),
		present: a.present.Clone(),
	}
	copy(c.nodes, a.nodes)

	for i, ok := c.present.NextSet(0); ok; i, ok = c.present.NextSet(i + 1) {
		c.nodes[i].val = cloneFn(c.nodes[i].val)
	}
	return c
}
