// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import (
	"iter"
	"strings"

	"github.com/gaissmai/ktree/internal/value"
)

// LevelOrder returns an iterator over all values in breadth-first order.
//
// The tree may be mutated inside the loop body,
// the iteration is not affected by it.
func (t *Tree[V]) LevelOrder() iter.Seq[V] {
	return seq(t.LevelOrderIterator)
}

// PreOrder returns an iterator over all values in depth-first pre-order.
func (t *Tree[V]) PreOrder() iter.Seq[V] {
	return seq(t.PreOrderIterator)
}

// PostOrder returns an iterator over all values in depth-first post-order.
func (t *Tree[V]) PostOrder() iter.Seq[V] {
	return seq(t.PostOrderIterator)
}

// seq adapts a pull iterator to a range-over-func iterator,
// every range loop starts a fresh traversal.
func seq[V any](newIter func() Iterator[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		it := newIter()
		for it.HasNext() {
			val, err := it.Next()
			if err != nil || !yield(val) {
				return
			}
		}
	}
}

// LevelOrderString renders the breadth-first traversal,
// values separated by a single space.
func (t *Tree[V]) LevelOrderString() string {
	return joinValues[V](newLevelOrderIterator(t.arena))
}

// PreOrderString renders the pre-order traversal,
// values separated by a single space.
func (t *Tree[V]) PreOrderString() string {
	return joinValues[V](newPreOrderIterator(t.arena))
}

// PostOrderString renders the post-order traversal,
// values separated by a single space.
func (t *Tree[V]) PostOrderString() string {
	return joinValues[V](newPostOrderIterator(t.arena))
}

// joinValues drains it, the tree is not touched meanwhile.
func joinValues[V any](it Iterator[V]) string {
	var tokens []string
	for it.HasNext() {
		val, _ := it.Next()
		tokens = append(tokens, value.Render(val))
	}
	return strings.Join(tokens, " ")
}
