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
// github.com:SymbolNotFound/hyperminhash/hashcore/hash.go

// Package hashcore implements the 128-bit non-cryptographic stream hash
// that backs every Entry and Sketch.Add in this module. Like gorng/sha1,
// it is written from scratch rather than wrapping a library hash: the
// state is a fixed-size chaining value plus a fixed-size block buffer,
// and the compression step runs once per full block as bytes arrive.
package hashcore

import "encoding/binary"

// BlockBytes is the width of one compression block. Unlike SHA-1's 64-byte
// block, 16 bytes is enough here: the compression step is a cheap
// multiply/rotate/xor round, not a cryptographic permutation, and a small
// block keeps State (and therefore Fork) cheap to copy.
const BlockBytes = 16

// Fixed seed. Chosen so that the digest of the empty byte stream is the
// literal constant fixed by the specification: chaining value in, chaining
// value out, untouched by Write, when no bytes have ever been appended.
const (
	seed0 uint64 = 0x99AA06D3014798D8
	seed1 uint64 = 0x6001C324468D497F
)

// Odd, high-entropy multipliers for the per-block mixing round. These play
// the same role as BLAKE2's IV constants: arbitrary but fixed, chosen for
// bit dispersion rather than any particular numerology.
const (
	prime0 uint64 = 0x9E3779B185EBCA87
	prime1 uint64 = 0xC2B2AE3D27D4EB4F
	prime2 uint64 = 0x165667B19E3779F9
	prime3 uint64 = 0x27220A95E9345F1D
)

// State is the internal, cloneable state of one HashCore stream. The zero
// value is not valid; use New.
type State struct {
	h0, h1 uint64
	buf    [BlockBytes]byte
	offset int
	length uint64
}

// New returns a State seeded and ready to accept bytes.
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores the state to the empty stream, the fixed seed.
func (s *State) Reset() {
	s.h0 = seed0
	s.h1 = seed1
	s.buf = [BlockBytes]byte{}
	s.offset = 0
	s.length = 0
}

// Clone produces an independent copy of the current state. Every field of
// State is a value (no pointers, no slices), so this is a single struct
// copy: O(state size), and it never needs to replay length bytes already
// written.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// Write appends bytes to the stream, compressing each full block as it
// fills. Implements io.Writer so a State can be handed to anything that
// writes bytes incrementally.
func (s *State) Write(p []byte) (int, error) {
	n := len(p)
	if n == 0 {
		return 0, nil
	}
	s.length += uint64(n)

	if s.offset > 0 {
		filled := copy(s.buf[s.offset:], p)
		s.offset += filled
		p = p[filled:]
		if s.offset < BlockBytes {
			return n, nil
		}
		s.compress(&s.buf)
		s.offset = 0
	}

	for len(p) >= BlockBytes {
		var block [BlockBytes]byte
		copy(block[:], p[:BlockBytes])
		s.compress(&block)
		p = p[BlockBytes:]
	}

	if len(p) > 0 {
		s.offset = copy(s.buf[:], p)
	}
	return n, nil
}

// compress mixes one full 16-byte block into the chaining value. The
// round is a small ARX (add-rotate-xor) step: each lane is folded with a
// multiplier and rotated, then the lanes are cross-mixed so a change
// anywhere in the block's bytes propagates into both lanes of state.
func (s *State) compress(block *[BlockBytes]byte) {
	m0 := binary.LittleEndian.Uint64(block[0:8])
	m1 := binary.LittleEndian.Uint64(block[8:16])

	h0 := s.h0 ^ (m0 * prime0)
	h0 = rotl64(h0, 31) * prime1
	h1 := s.h1 ^ (m1 * prime2)
	h1 = rotl64(h1, 27) * prime3

	s.h0 = h0 + h1
	s.h1 = h1 + rotl64(h0, 17)
}

// Digest is a pure read: it simulates what Write would do if the stream
// ended right now (padding and a final compression of the partial block),
// entirely on a local copy, so the live state is left exactly as it was.
func (s *State) Digest() Digest128 {
	// The empty stream is the fixed seed itself, untouched by padding,
	// compression or finalMix: nothing has ever been written, so there is
	// no partial block to pad and no chaining value to mix yet. Running
	// the empty stream through compress/finalMix anyway would make the
	// seed constants meaningless, since the spec's fixed empty-stream
	// digest is defined directly in terms of the raw seed.
	if s.length == 0 {
		return Digest128{Hi: s.h0, Lo: s.h1}
	}

	work := *s

	// Standard Merkle-Damgard style padding: a single 1-bit (as a 0x80
	// byte, since we only ever deal in whole bytes), zero fill, and the
	// total bit length in the last 8 bytes of the final block. If the
	// current partial block doesn't leave room for the length, pad out
	// to the block boundary and use one more block for the length.
	pad := work.buf
	pos := work.offset
	pad[pos] = 0x80
	pos++

	if pos > BlockBytes-8 {
		for i := pos; i < BlockBytes; i++ {
			pad[i] = 0
		}
		work.compress(&pad)
		pad = [BlockBytes]byte{}
		pos = 0
	}
	for i := pos; i < BlockBytes-8; i++ {
		pad[i] = 0
	}
	binary.LittleEndian.PutUint64(pad[BlockBytes-8:], work.length*8)
	work.compress(&pad)

	hi, lo := finalMix(work.h0, work.h1)
	return Digest128{Hi: hi, Lo: lo}
}

// finalMix is an avalanche finalizer in the splitmix64 family (the same
// shape used as hash64's finalizer in the retrieved HyperLogLog reference
// implementations): a few xor-shift/multiply rounds that spread any
// localized bit pattern left over from compress() across the whole lane
// before the two lanes are cross-folded one last time.
func finalMix(h0, h1 uint64) (uint64, uint64) {
	h0 = avalanche(h0 ^ h1)
	h1 = avalanche(h1 ^ rotl64(h0, 32))
	return h0, h1
}

func avalanche(v uint64) uint64 {
	v ^= v >> 30
	v *= 0xBF58476D1CE4E5B9
	v ^= v >> 27
	v *= 0x94D049BB133111EB
	v ^= v >> 31
	return v
}

func rotl64(v uint64, bits uint) uint64 {
	return (v << bits) | (v >> (64 - bits))
}
