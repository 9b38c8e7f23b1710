// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import (
	"fmt"
	"strings"
)

// DefaultBlank marks the inner nodes of a code tree.
const DefaultBlank = "_"

// Decode interprets path as a sequence of child offsets in a code tree
// and returns the concatenated leaf values, see DecodeBlank.
func Decode(t *Tree[string], path string) (string, error) {
	return DecodeBlank(t, path, DefaultBlank)
}

// DecodeBlank walks the tree from the root, each digit of path selects
// the child at that offset. Reaching a value other than blank emits it
// and restarts the walk at the root.
//
// ErrMalformedPath is returned for non-digit runes, offsets past the
// child chain and holes on the way. A path that ends inside a code is
// malformed too, it is not silently truncated. On error the values
// decoded so far are returned with it.
func DecodeBlank(t *Tree[string], path, blank string) (string, error) {
	vals, err := decodeSeq(t.arena, path, blank)
	return strings.Join(vals, ""), err
}

func decodeSeq[V comparable](a *arena[V], path string, blank V) ([]V, error) {
	var vals []V
	cur := rootHandle

	for pos, r := range path {
		if r < '0' || r > '9' {
			return vals, fmt.Errorf("%w: %q at position %d is not a digit", ErrMalformedPath, r, pos)
		}

		h := a.nodes[cur].child
		for range int(r - '0') {
			if h == nilHandle {
				break
			}
			h = a.nodes[h].sibling
		}

		if h == nilHandle {
			return vals, fmt.Errorf("%w: no child %c below index %d at position %d",
				ErrMalformedPath, r, a.nodes[cur].idx, pos)
		}
		if !a.isPresent(h) {
			return vals, fmt.Errorf("%w: index %d at position %d is empty",
				ErrMalformedPath, a.nodes[h].idx, pos)
		}

		if val := a.nodes[h].val; val != blank {
			vals = append(vals, val)
			cur = rootHandle
			continue
		}
		cur = h
	}

	if cur != rootHandle {
		return vals, fmt.Errorf("%w: path ends inside a code at index %d",
			ErrMalformedPath, a.nodes[cur].idx)
	}
	return vals, nil
}
