// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package deque provides the slice backed LIFO and FIFO containers
// used as scratch space by the tree traversals.
//
// The zero values are ready to use. Nothing is safe for concurrent use,
// every traversal owns its containers.
package deque

// Stack is a LIFO container.
type Stack[T any] struct {
	items []T
}

// Push puts item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item, ok is false for an empty stack.
func (s *Stack[T]) Pop() (item T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return item, false
	}

	item = s.items[n-1]

	// release the reference for the GC
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return item, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (item T, ok bool) {
	if len(s.items) == 0 {
		return item, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Queue is a FIFO container.
type Queue[T any] struct {
	items []T
	head  int
}

// Enqueue appends item at the back of the queue.
func (q *Queue[T]) Enqueue(item T) {
	// reclaim the consumed prefix before growing
	if q.head > 0 && len(q.items) == cap(q.items) && q.head >= len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	q.items = append(q.items, item)
}

// Dequeue removes and returns the front item, ok is false for an empty queue.
func (q *Queue[T]) Dequeue() (item T, ok bool) {
	if q.head == len(q.items) {
		return item, false
	}

	item = q.items[q.head]

	var zero T
	q.items[q.head] = zero
	q.head++

	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}

	return item, true
}

// Len returns the number of items in the queue.
func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}
