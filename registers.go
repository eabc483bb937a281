// Copyright (c) 2024 Symbol Not Found LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:SymbolNotFound/hyperminhash/registers.go

package hyperminhash

import (
	"math/bits"

	"github.com/SymbolNotFound/hyperminhash/hashcore"
)

// Fixed shape of the sketch. These are part of the wire contract (see
// codec.go) even though they are never themselves serialized.
const (
	p = 14          // register-address width
	q = 6           // leading-zero-count field width
	r = 10          // extra-bits field width
	m = 1 << p      // number of registers: 16384
	maxLZ = 1<<q - 1 // 63, the saturating cap on the LZC field
	rMask = 1<<r - 1 // mask for the low r bits of a digest
)

// registers is the fixed-size packed register array. Each cell holds a
// 16-bit value: the 6-bit LZC field in the high bits, the 10-bit r-bits
// field in the low bits. Storage is one uint16 per cell -- the natural
// choice the spec leaves unconstrained -- packed into a flat array so
// Codec can encode it with a single loop.
type registers [m]uint16

// indexAndCell splits a 128-bit digest into its register index, its packed
// (lz, rbits) cell, ready to be folded into a registers array by update.
func indexAndCell(d hashcore.Digest128) (j uint16, cell uint16) {
	j = uint16(d.Hi >> (64 - p))

	// The remaining 128-p = 114 bits are the low (64-p) bits of Hi
	// followed by all 64 bits of Lo.
	hiSuffix := d.Hi & ((1 << (64 - p)) - 1)

	var lzc int
	if hiSuffix != 0 {
		// hiSuffix occupies only (64-p) bits; LeadingZeros64 counts from
		// bit 63, so subtract the p bits that are structurally zero.
		lzc = bits.LeadingZeros64(hiSuffix) - p
	} else if d.Lo != 0 {
		lzc = (64 - p) + bits.LeadingZeros64(d.Lo)
	} else {
		lzc = 64 - p + 64 // both halves of the suffix are zero
	}

	lz := lzc + 1
	if lz > maxLZ {
		lz = maxLZ
	}

	rbits := uint16(d.Lo & rMask)
	cell = uint16(lz)<<r | rbits
	return j, cell
}

// update folds the digest of one item into the register array, keeping
// the lexicographically greater of the new and existing packed cell at
// that index (higher lz wins; ties broken by higher rbits -- equivalent
// to comparing the two cells as a single packed 16-bit integer).
func (regs *registers) update(d hashcore.Digest128) {
	j, cell := indexAndCell(d)
	if cell > regs[j] {
		regs[j] = cell
	}
}

// merge folds other into regs in place: an element-wise, commutative max.
func (regs *registers) merge(other *registers) {
	for i := range regs {
		if other[i] > regs[i] {
			regs[i] = other[i]
		}
	}
}

// mergeCopy returns a new array holding the element-wise max of a and b,
// leaving both inputs untouched -- used wherever an estimate is needed
// from a hypothetical union without mutating either sketch.
func mergeCopy(a, b *registers) *registers {
	out := *a
	out.merge(b)
	return &out
}

// equal reports whether two register arrays are cell-for-cell identical.
func (regs *registers) equal(other *registers) bool {
	return *regs == *other
}

// isZero reports whether every register is still at its initial value.
// This is an exact computation, not an estimate, matching Sketch.Bool.
func (regs *registers) isZero() bool {
	for _, cell := range regs {
		if cell != 0 {
			return false
		}
	}
	return true
}

// dominatedBy reports whether regs[j] <= other[j] for every j -- the
// partial order used for Sketch's comparison operators (spec §4.3).
func (regs *registers) dominatedBy(other *registers) bool {
	for i := range regs {
		if regs[i] > other[i] {
			return false
		}
	}
	return true
}
