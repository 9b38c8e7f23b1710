// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/gaissmai/ktree/internal/index"
	"github.com/gaissmai/ktree/internal/value"
)

// Tree is a K-ary tree in left-child / right-sibling form.
//
// Node i has the conceptual index of a complete K-ary tree stored in
// array form: the root is 0, the children of i are i*k+1 ... i*k+k.
// A node may be a hole, a placeholder without value that still
// carries the structure below it.
//
// A Tree must be created with New or FromPointers.
// A Tree is not safe for concurrent mutation.
type Tree[V any] struct {
	k     int
	arena *arena[V]

	size   int
	height int

	// shared is set while iterators may reference the arena,
	// the next mutation detaches the tree from them.
	shared atomic.Bool

	log *zap.Logger
}

// New builds a tree with branching factor k from the flat array form,
// item i becomes the node with index i. Holes are kept as placeholders.
// An empty slice yields a tree with an empty root.
//
// A value below a hole is rejected with ErrInvalidTreeShape,
// every value must be reachable through values.
func New[V any](items []Item[V], k int, opts ...Option) (*Tree[V], error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: k=%d", ErrInvalidBranchingFactor, k)
	}

	cfg := newConfig(opts)

	t := &Tree[V]{
		k:     k,
		arena: newArena[V](max(len(items), 1)),
		log:   cfg.logger,
	}

	// the root always exists, handle i+1 belongs to index i while building
	t.arena.alloc(0)

	for i, item := range items {
		h := rootHandle
		if i > 0 {
			h = t.arena.alloc(i)
			parent := handle(index.Parent(i, k) + 1)
			if index.Offset(i, k) == 0 {
				t.arena.nodes[parent].child = h
			} else {
				t.arena.nodes[h-1].sibling = h
			}

			if item.Ok && !t.arena.isPresent(parent) {
				return nil, fmt.Errorf("%w: value at %d below empty index %d",
					ErrInvalidTreeShape, i, index.Parent(i, k))
			}
		}

		if item.Ok {
			t.arena.store(h, item.Val)
			t.size++
		}
	}

	t.height = t.arena.heightFrom(rootHandle)

	t.log.Debug("ktree: built",
		zap.Int("k", k),
		zap.Int("items", len(items)),
		zap.Int("size", t.size),
		zap.Int("height", t.height))

	return t, nil
}

// FromPointers is like New, nil pointers become holes.
func FromPointers[V any](vals []*V, k int, opts ...Option) (*Tree[V], error) {
	return New(Items(vals), k, opts...)
}

// K returns the branching factor.
func (t *Tree[V]) K() int {
	return t.k
}

// Size returns the number of present values.
func (t *Tree[V]) Size() int {
	return t.size
}

// Height returns the number of edges on the longest downward path
// from the root. Child groups without any value do not add a level.
// A tree with an empty root has height 0.
func (t *Tree[V]) Height() int {
	return t.height
}

// Get returns the value at index i.
func (t *Tree[V]) Get(i int) (val V, err error) {
	h := t.arena.locate(i, t.k)
	if !t.arena.isPresent(h) {
		return val, fmt.Errorf("%w: %d", ErrNotFound, i)
	}
	return t.arena.nodes[h].val, nil
}

// Set inserts or replaces the value at index i.
//
// All ancestors of i must hold values. Missing nodes in the child
// chain of the parent up to i are created as holes.
// The tree is unchanged if an error is returned,
// a rejected Set allocates no nodes.
func (t *Tree[V]) Set(i int, val V) error {
	if i < 0 {
		return t.reject("set", i, fmt.Errorf("%w: %d", ErrInvalidIndex, i))
	}

	path := index.Path(i, t.k)
	parent, h := nilHandle, rootHandle

	for d, want := range path[1:] {
		if !t.arena.isPresent(h) {
			return t.reject("set", i,
				fmt.Errorf("%w: ancestor %d of %d is empty", ErrInvalidTreeShape, path[d], i))
		}

		parent, h = h, t.arena.childAt(h, want)
		if h == nilHandle && want != i {
			return t.reject("set", i,
				fmt.Errorf("%w: ancestor %d of %d is missing", ErrInvalidTreeShape, want, i))
		}
	}

	t.mutate()

	if h == nilHandle {
		h = t.arena.materialize(parent, i, t.k)
	}

	if !t.arena.isPresent(h) {
		t.size++
	}
	t.arena.store(h, val)
	t.height = t.arena.heightFrom(rootHandle)

	return nil
}

// Delete clears the value at index i and leaves a hole.
// Only leaves can be removed: a missing node, a hole or a node
// with any present child is rejected with ErrNotRemovable.
func (t *Tree[V]) Delete(i int) error {
	h := t.arena.locate(i, t.k)
	if !t.arena.isPresent(h) {
		return t.reject("delete", i, fmt.Errorf("%w: no value at %d", ErrNotRemovable, i))
	}

	if t.arena.groupHasPresent(t.arena.nodes[h].child) {
		return t.reject("delete", i, fmt.Errorf("%w: %d has children", ErrNotRemovable, i))
	}

	t.mutate()

	t.arena.erase(h)
	t.size--
	t.height = t.arena.heightFrom(rootHandle)

	return nil
}

func (t *Tree[V]) reject(op string, i int, err error) error {
	t.log.Debug("ktree: rejected", zap.String("op", op), zap.Int("index", i), zap.Error(err))
	return err
}

// snapshot returns the arena for a reader that outlives the call.
func (t *Tree[V]) snapshot() *arena[V] {
	t.shared.Store(true)
	return t.arena
}

// mutate detaches the tree from live iterators before a write.
func (t *Tree[V]) mutate() {
	if !t.shared.Load() {
		return
	}
	t.arena = t.arena.clone(value.CopyVal[V])
	t.shared.Store(false)

	t.log.Debug("ktree: arena copied on write", zap.Int("nodes", len(t.arena.nodes)-1))
}
