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
// github.com:SymbolNotFound/hyperminhash/entry.go

package hyperminhash

import (
	"encoding/binary"
	"fmt"

	"github.com/SymbolNotFound/hyperminhash/hashcore"
)

// Entry is a forkable streaming digest for one logical item. It accumulates
// raw bytes -- no length framing, no separators -- and is later consumed by
// a Sketch via AddEntry. Holding an Entry around and computing its digest
// never disturbs the underlying stream, so the same Entry can feed more
// than one Sketch, or be forked to explore two continuations of the same
// prefix (e.g. hashing a common path prefix once, then branching per file).
//
// Go has no operator overloading, so the spec's "must raise TypeError when
// hashed as a map key" becomes a compile-time guarantee instead of a
// runtime one: the trailing func-typed field below makes Entry
// non-comparable, so `m[entry]` and `entry1 == entry2` both fail to
// compile. Use Equal for value comparison.
type Entry struct {
	state      *hashcore.State
	empty      bool
	_          [0]func() // makes Entry non-comparable; see doc comment above
}

// NewEntry returns an empty Entry: the digest of the empty byte stream,
// fixed by spec to 0x99aa06d3014798d86001c324468d497f.
func NewEntry() *Entry {
	return &Entry{state: hashcore.New(), empty: true}
}

// AddBytes appends raw bytes to the entry's stream.
func (e *Entry) AddBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	e.state.Write(b)
	e.empty = false
}

// Add feeds bytes derived from a host value: strings are their UTF-8
// bytes, byte slices are themselves, and int, int64 and uint64 use a fixed
// little-endian 8-byte encoding so the same integer always contributes
// the same bytes regardless of platform. Anything else, including other
// integer types such as int32 or uint, is a TypeError --
// the core refuses to guess at a byte encoding for arbitrary values.
func (e *Entry) Add(value any) error {
	switch v := value.(type) {
	case []byte:
		e.AddBytes(v)
	case string:
		e.AddBytes([]byte(v))
	case int:
		e.AddBytes(encodeInt(int64(v)))
	case int64:
		e.AddBytes(encodeInt(v))
	case uint64:
		e.AddBytes(encodeInt(int64(v)))
	default:
		return newTypeError("Entry.Add", fmt.Sprintf("cannot derive bytes from %T", value))
	}
	return nil
}

func encodeInt(v int64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(v))
	return buf
}

// Fork produces an independent Entry with identical state to the
// receiver; the two may be mutated afterward without affecting each
// other.
func (e *Entry) Fork() *Entry {
	return &Entry{state: e.state.Clone(), empty: e.empty}
}

// Digest returns the current 128-bit digest. Pure: does not consume or
// otherwise mutate the entry.
func (e *Entry) Digest() hashcore.Digest128 {
	return e.state.Digest()
}

// IsEmpty reports whether no bytes have been added since construction.
// A fork carries over the flag of the entry it was forked from.
func (e *Entry) IsEmpty() bool {
	return e.empty
}

// Equal compares two entries by their current digest, per spec §4.2.
func (e *Entry) Equal(other *Entry) bool {
	return e.Digest() == other.Digest()
}

// String renders the entry the way the spec's debug format fixes:
// "Entry(digest=<32hex>)".
func (e *Entry) String() string {
	return fmt.Sprintf("Entry(digest=%s)", e.Digest().Hex())
}
