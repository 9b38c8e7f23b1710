/*
Copyright 2014 Will Fitzgerald. All rights reserved.
Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file.
*/

// Package bitset implements a growable set of non-negative integers.
//
// The tree arena marks the node handles holding a present value here,
// holes are simply the cleared bits.
//
// This is a heavily stripped down version of:
//
//	github.com/bits-and-blooms/bitset
//
// All bugs belong to me.
package bitset

import (
	"math/bits"
)

// the wordSize of a bit set
const wordSize = uint(64)

// log2WordSize is lg(wordSize)
const log2WordSize = uint(6)

// A BitSet is a set of bits, the zero value is an empty set.
type BitSet struct {
	set []uint64
}

// wordsNeeded calculates the number of words needed for i bits.
func wordsNeeded(i uint) int {
	return int((i + (wordSize - 1)) >> log2WordSize)
}

// bitsCapacity returns the number of possible bits in the current set.
func (b BitSet) bitsCapacity() uint {
	return uint(len(b.set)) * wordSize
}

// Test whether bit i is set.
func (b BitSet) Test(i uint) bool {
	if i >= b.bitsCapacity() {
		return false
	}
	return b.set[i>>log2WordSize]&(1<<(i&(wordSize-1))) != 0
}

// Set bit i to 1, the capacity of the bitset is increased accordingly.
func (b *BitSet) Set(i uint) {
	if i >= b.bitsCapacity() {
		newset := make([]uint64, wordsNeeded(i+1))
		copy(newset, b.set)
		b.set = newset
	}
	b.set[i>>log2WordSize] |= 1 << (i & (wordSize - 1))
}

// Clear bit i to 0.
func (b *BitSet) Clear(i uint) {
	if i >= b.bitsCapacity() {
		return
	}
	b.set[i>>log2WordSize] &^= 1 << (i & (wordSize - 1))
}

// NextSet returns the next bit set from the specified index,
// including possibly the current index, ok is false if no set bit is left.
//
//	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {...}
func (b BitSet) NextSet(i uint) (uint, bool) {
	x := int(i >> log2WordSize)
	if x >= len(b.set) {
		return 0, false
	}

	w := b.set[x] >> (i & (wordSize - 1))
	if w != 0 {
		return i + uint(bits.TrailingZeros64(w)), true
	}

	for x++; x < len(b.set); x++ {
		if b.set[x] != 0 {
			return uint(x)*wordSize + uint(bits.TrailingZeros64(b.set[x])), true
		}
	}
	return 0, false
}

// All returns all set bits in ascending order.
func (b BitSet) All() []uint {
	all := make([]uint, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		all = append(all, i)
	}
	return all
}

// Clone this BitSet, returning a new BitSet that has the same bits set.
func (b BitSet) Clone() BitSet {
	if b.set == nil {
		return BitSet{}
	}

	c := BitSet{set: make([]uint64, len(b.set))}
	copy(c.set, b.set)
	return c
}

// Count (number of set bits).
// Also known as "popcount" or "population count".
func (b BitSet) Count() int {
	var cnt int
	for _, x := range b.set {
		cnt += bits.OnesCount64(x)
	}
	return cnt
}
