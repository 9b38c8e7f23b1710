// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gaissmai/ktree/internal/index"
)

const nullToken = "null"

// String returns the level-by-level rendering of the tree, see Fprint.
// A tree with an empty root or an array form beyond MaxArrayLen
// renders as the empty string.
//
// If Fprint fails for any other reason, String panics.
func (t *Tree[V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrTooLarge) {
			return ""
		}
		panic(err)
	}
	return w.String()
}

// Fprint writes one line per level of the flat array form, values
// separated by a single space and holes written as null.
//
//	0
//	null 2
//	null null 5 6
//
// ErrNotFound is returned for a tree with an empty root,
// ErrTooLarge as for ToArray.
func (t *Tree[V]) Fprint(w io.Writer) error {
	if !t.arena.isPresent(rootHandle) {
		return fmt.Errorf("%w: root is empty", ErrNotFound)
	}

	items, err := t.ToArray()
	if err != nil {
		return err
	}
	tokens := make([]string, 0, len(items))

	for d, start := 0, 0; start < len(items); d++ {
		end := min(index.LevelEnd(d, t.k), len(items)-1)

		tokens = tokens[:0]
		for _, item := range items[start : end+1] {
			tokens = append(tokens, item.String())
		}

		sep := "\n"
		if d == 0 {
			sep = ""
		}
		if _, err := fmt.Fprint(w, sep, strings.Join(tokens, " ")); err != nil {
			return err
		}

		start = end + 1
	}

	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Tree.Fprint].
func (t *Tree[V]) MarshalText() ([]byte, error) {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}
	return []byte(w.String()), nil
}
