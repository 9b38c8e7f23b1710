// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import (
	"fmt"

	"github.com/gaissmai/ktree/internal/deque"
)

// Iterator is an external, pull-style cursor over the values of a tree.
//
// HasNext never consumes a value and may be called any number of times.
// Next returns ErrExhausted after the last value.
type Iterator[V any] interface {
	HasNext() bool
	Next() (V, error)
}

// Iterable is implemented by containers that hand out fresh iterators
// for the three classic traversal orders.
type Iterable[V any] interface {
	LevelOrderIterator() Iterator[V]
	PreOrderIterator() Iterator[V]
	PostOrderIterator() Iterator[V]
}

var _ Iterable[any] = (*Tree[any])(nil)

// LevelOrderIterator returns a breadth-first iterator, left to right.
// Every call starts a new traversal from the root.
//
// The iterator works on the tree as it was at creation time,
// later mutations of the tree are not visible to it.
func (t *Tree[V]) LevelOrderIterator() Iterator[V] {
	return newLevelOrderIterator(t.snapshot())
}

// PreOrderIterator returns a depth-first iterator, node before children.
// Snapshot semantics as for LevelOrderIterator.
func (t *Tree[V]) PreOrderIterator() Iterator[V] {
	return newPreOrderIterator(t.snapshot())
}

// PostOrderIterator returns a depth-first iterator, children before node.
// Snapshot semantics as for LevelOrderIterator.
func (t *Tree[V]) PostOrderIterator() Iterator[V] {
	return newPostOrderIterator(t.snapshot())
}

func exhausted[V any]() (V, error) {
	var zero V
	return zero, fmt.Errorf("%w: traversal finished", ErrExhausted)
}

// levelOrderIterator walks sibling chains in place and queues the
// first child of every visited node, holes included.
type levelOrderIterator[V any] struct {
	a      *arena[V]
	groups deque.Queue[handle]
	cur    handle
}

func newLevelOrderIterator[V any](a *arena[V]) *levelOrderIterator[V] {
	return &levelOrderIterator[V]{a: a, cur: rootHandle}
}

// settle moves the cursor to the next node holding a value.
func (it *levelOrderIterator[V]) settle() {
	for it.cur != nilHandle && !it.a.isPresent(it.cur) {
		it.advance()
	}
}

func (it *levelOrderIterator[V]) advance() {
	n := it.a.nodes[it.cur]
	if n.child != nilHandle {
		it.groups.Enqueue(n.child)
	}
	if n.sibling != nilHandle {
		it.cur = n.sibling
		return
	}
	// nilHandle if the queue is empty
	it.cur, _ = it.groups.Dequeue()
}

func (it *levelOrderIterator[V]) HasNext() bool {
	it.settle()
	return it.cur != nilHandle
}

func (it *levelOrderIterator[V]) Next() (V, error) {
	if !it.HasNext() {
		return exhausted[V]()
	}
	val := it.a.nodes[it.cur].val
	it.advance()
	return val, nil
}

// preOrderIterator keeps the pending sibling continuations on a stack.
type preOrderIterator[V any] struct {
	a     *arena[V]
	stack deque.Stack[handle]
	cur   handle
}

func newPreOrderIterator[V any](a *arena[V]) *preOrderIterator[V] {
	return &preOrderIterator[V]{a: a, cur: rootHandle}
}

func (it *preOrderIterator[V]) settle() {
	for it.cur != nilHandle && !it.a.isPresent(it.cur) {
		it.advance()
	}
}

func (it *preOrderIterator[V]) advance() {
	n := it.a.nodes[it.cur]
	if n.sibling != nilHandle {
		it.stack.Push(n.sibling)
	}
	if n.child != nilHandle {
		it.cur = n.child
		return
	}
	// nilHandle if the stack is empty
	it.cur, _ = it.stack.Pop()
}

func (it *preOrderIterator[V]) HasNext() bool {
	it.settle()
	return it.cur != nilHandle
}

func (it *preOrderIterator[V]) Next() (V, error) {
	if !it.HasNext() {
		return exhausted[V]()
	}
	val := it.a.nodes[it.cur].val
	it.advance()
	return val, nil
}

// postOrderIterator precomputes the visiting order at creation:
// popping the result stack yields children before their parent.
type postOrderIterator[V any] struct {
	a      *arena[V]
	result deque.Stack[handle]
}

func newPostOrderIterator[V any](a *arena[V]) *postOrderIterator[V] {
	it := &postOrderIterator[V]{a: a}

	var work deque.Stack[handle]
	work.Push(rootHandle)

	for h, ok := work.Pop(); ok; h, ok = work.Pop() {
		it.result.Push(h)
		for c := a.nodes[h].child; c != nilHandle; c = a.nodes[c].sibling {
			work.Push(c)
		}
	}

	it.settle()
	return it
}

// settle drops holes from the top of the result stack.
func (it *postOrderIterator[V]) settle() {
	for h, ok := it.result.Peek(); ok && !it.a.isPresent(h); h, ok = it.result.Peek() {
		it.result.Pop()
	}
}

func (it *postOrderIterator[V]) HasNext() bool {
	it.settle()
	return !it.result.IsEmpty()
}

func (it *postOrderIterator[V]) Next() (V, error) {
	if !it.HasNext() {
		return exhausted[V]()
	}
	h, _ := it.result.Pop()
	return it.a.nodes[h].val, nil
}
