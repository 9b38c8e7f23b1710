// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import (
	"github.com/gaissmai/ktree/internal/value"
)

// Item is one slot of the flat array form of a tree.
// Ok is false for a hole, Val is then the zero value.
type Item[V any] struct {
	Val V
	Ok  bool
}

// Some returns a present item with value v.
func Some[V any](v V) Item[V] {
	return Item[V]{Val: v, Ok: true}
}

// None returns a hole.
func None[V any]() Item[V] {
	return Item[V]{}
}

// String renders the item, holes as null.
func (it Item[V]) String() string {
	if !it.Ok {
		return nullToken
	}
	return value.Render(it.Val)
}

// Items converts a slice of pointers into items, nil pointers become holes.
func Items[V any](vals []*V) []Item[V] {
	items := make([]Item[V], len(vals))
	for i, p := range vals {
		if p != nil {
			items[i] = Some(*p)
		}
	}
	return items
}
