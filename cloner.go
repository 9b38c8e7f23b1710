// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import "github.com/gaissmai/ktree/internal/value"

// Cloner is an interface, if implemented by payload of type V the values are deeply copied
// during [Tree.Clone].
type Cloner[V any] interface {
	Clone() V
}

// Clone returns a copy of the tree.
// The payload of type V is shallow copied, but if type V implements the [Cloner] interface,
// the values are cloned.
func (t *Tree[V]) Clone() *Tree[V] {
	if t == nil {
		return nil
	}

	c := &Tree[V]{
		k:      t.k,
		arena:  t.arena.clone(value.CloneFnFactory[V]()),
		size:   t.size,
		height: t.height,
		log:    t.log,
	}
	return c
}
