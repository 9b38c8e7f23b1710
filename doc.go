// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package ktree provides a generic K-ary tree stored in
// left-child / right-sibling form.
//
// A tree is built from the flat array form of a complete K-ary tree,
// the children of index i live at i*k+1 ... i*k+k. Absent slots become
// holes: placeholders without value that keep the structure below them.
//
//	t, _ := ktree.New([]ktree.Item[int]{ktree.Some(0), ktree.None[int](), ktree.Some(2)}, 2)
//	fmt.Println(t)
//	// 0
//	// null 2
//
// Values are read and written by index with Get, Set and Delete.
// Size counts the present values, Height measures the longest path
// from the root in edges, where a child group without any value
// does not count as a level.
//
// ToArray and String convert back to the flat form, Subtree extracts
// the array form below an index and Mirror lists the values level by
// level from right to left.
//
// Level-order, pre-order and post-order traversals are available as
// restartable external iterators and as range-over-func iterators.
// Iterators snapshot the tree: the next mutation copies the tree's
// storage, live iterators keep walking the state they started on.
//
// Decode walks a code tree of strings along a path of child offsets
// and recovers the encoded leaf values.
package ktree
