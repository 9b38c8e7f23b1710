// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON renders a hole as null and a present item as its value.
func (it Item[V]) MarshalJSON() ([]byte, error) {
	if !it.Ok {
		return []byte(nullToken), nil
	}
	return json.Marshal(it.Val)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (it *Item[V]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte(nullToken)) {
		*it = None[V]()
		return nil
	}

	var val V
	if err := json.Unmarshal(data, &val); err != nil {
		return err
	}
	*it = Some(val)
	return nil
}

// MarshalJSON dumps the flat array form of the tree as a JSON array,
// holes are null.
func (t *Tree[V]) MarshalJSON() ([]byte, error) {
	items, err := t.ToArray()
	if err != nil {
		return nil, err
	}
	return json.Marshal(items)
}

// FromJSON builds a tree with branching factor k from a JSON array
// as written by MarshalJSON.
func FromJSON[V any](data []byte, k int, opts ...Option) (*Tree[V], error) {
	var items []Item[V]
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return New(items, k, opts...)
}
