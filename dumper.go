// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import (
	"fmt"
	"io"
	"strings"
)

type nodeType byte

const (
	holeNode  nodeType = iota // placeholder without value
	leafNode                  // value, no child holds a value
	innerNode                 // value and at least one child with value
)

func (nt nodeType) String() string {
	switch nt {
	case holeNode:
		return "HOLE"
	case leafNode:
		return "LEAF"
	case innerNode:
		return "INNER"
	default:
		return "unreachable"
	}
}

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (t *Tree[V]) dumpString() string {
	w := new(strings.Builder)
	t.dump(w)

	return w.String()
}

// dump the tree header and all the nodes to w.
func (t *Tree[V]) dump(w io.Writer) {
	if t == nil {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "### k(%d), size(%d), height(%d), nodes(%d), present(%v)",
		t.k, t.size, t.height, len(t.arena.nodes)-1, t.arena.present.All())
	t.arena.dumpRec(w, rootHandle, 0)
}

// dumpRec, rec-descent the child chains.
func (a *arena[V]) dumpRec(w io.Writer, h handle, depth int) {
	a.dump(w, h, depth)

	for c := a.nodes[h].child; c != nilHandle; c = a.nodes[c].sibling {
		a.dumpRec(w, c, depth+1)
	}
}

// dump the node to w.
func (a *arena[V]) dump(w io.Writer, h handle, depth int) {
	indent := strings.Repeat(".", depth)
	n := a.nodes[h]

	fmt.Fprintf(w, "\n%s[%s] idx: %d handle: %d", indent, a.hasType(h), n.idx, h)
	if a.isPresent(h) {
		fmt.Fprintf(w, " val: %v", n.val)
	}
	fmt.Fprintln(w)
}

// hasType returns the nodeType.
func (a *arena[V]) hasType(h handle) nodeType {
	switch {
	case !a.isPresent(h):
		return holeNode
	case a.groupHasPresent(a.nodes[h].child):
		return innerNode
	default:
		return leafNode
	}
}
