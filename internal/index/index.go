// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package index summarizes the functions and inverse functions
// for mapping between a node position in a complete K-ary tree
// and its flat array index.
//
// The root has index 0, the children of index i are
//
//	i*k+1, i*k+2, ..., i*k+k
//
// and level d occupies the index range
//
//	[LevelStart(d) .. LevelStart(d+1)-1]
//
// All functions expect k >= 2, the caller guarantees it.
package index

import "math"

// Child returns the index of the child at offset (0-based) of parent.
func Child(parent, k, offset int) int {
	return parent*k + 1 + offset
}

// FirstChild returns the index of the leftmost child slot of parent.
func FirstChild(parent, k int) int {
	return parent*k + 1
}

// LastChild returns the index of the rightmost child slot of parent.
func LastChild(parent, k int) int {
	return parent*k + k
}

// Parent returns the index of the parent of i.
//
// It panics on invalid input.
func Parent(i, k int) int {
	if i <= 0 {
		panic("logic error, root has no parent")
	}
	return (i - 1) / k
}

// Offset returns the 0-based position of i among its siblings.
//
// It panics on invalid input.
func Offset(i, k int) int {
	if i <= 0 {
		panic("logic error, root has no siblings")
	}
	return (i - 1) % k
}

// Depth returns the level of i, the root is on level 0.
func Depth(i, k int) int {
	d := 0
	for i > 0 {
		i = (i - 1) / k
		d++
	}
	return d
}

// LevelStart returns the index of the leftmost slot on level d.
//
//	(k^d - 1) / (k - 1)
//
// The result saturates at math.MaxInt instead of overflowing.
func LevelStart(d, k int) int {
	start, width := 0, 1
	for range d {
		if start > math.MaxInt-width {
			return math.MaxInt
		}
		start += width

		if width > math.MaxInt/k {
			width = math.MaxInt
		} else {
			width *= k
		}
	}
	return start
}

// LevelEnd returns the index of the rightmost slot on level d,
// saturating like LevelStart.
func LevelEnd(d, k int) int {
	return LevelStart(d+1, k) - 1
}

// Capacity returns the number of slots of a complete tree with height h,
// measured in edges.
//
//	(k^(h+1) - 1) / (k - 1)
//
// math.MaxInt means the capacity is not representable as int.
func Capacity(h, k int) int {
	return LevelStart(h+1, k)
}

// Path returns the indices from the root down to i, both included.
// A negative i has no path.
func Path(i, k int) []int {
	if i < 0 {
		return nil
	}

	path := make([]int, Depth(i, k)+1)
	for d := len(path) - 1; d >= 0; d-- {
		path[d] = i
		if i > 0 {
			i = (i - 1) / k
		}
	}
	return path
}
