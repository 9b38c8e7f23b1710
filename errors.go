// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import "errors"

// Construction errors
var (
	// ErrInvalidBranchingFactor indicates a branching factor k < 2.
	ErrInvalidBranchingFactor = errors.New("branching factor must be at least 2")
)

// Lookup and mutation errors
var (
	// ErrNotFound indicates that no present value lives at the index.
	ErrNotFound = errors.New("no value at index")

	// ErrInvalidIndex indicates a negative index.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInvalidTreeShape indicates a value below an empty or missing
	// ancestor, rejected by New and Set.
	ErrInvalidTreeShape = errors.New("invalid tree shape")

	// ErrNotRemovable indicates that Delete addressed a hole, a missing
	// node or a node with present children.
	ErrNotRemovable = errors.New("node not removable")
)

// Conversion errors
var (
	// ErrTooLarge indicates that the flat array form exceeds MaxArrayLen.
	ErrTooLarge = errors.New("array form too large")
)

// Traversal errors
var (
	// ErrExhausted indicates that an iterator has no more values.
	ErrExhausted = errors.New("no more items")

	// ErrMalformedPath indicates a decode path that does not describe
	// a walk through the tree.
	ErrMalformedPath = errors.New("malformed path")
)
