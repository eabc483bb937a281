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
// github.com:SymbolNotFound/hyperminhash/codec.go

package hyperminhash

import (
	"encoding/binary"
	"fmt"
)

// WireSize is the exact length of a serialized Sketch: m registers at 2
// bytes each, no header, no version tag, no checksum. Compatibility is
// enforced solely by this fixed length.
const WireSize = m * 2

// Save serializes the sketch to a flat byte blob of exactly WireSize
// bytes. Register j occupies bytes [2j, 2j+2), packed 16-bit
// little-endian (lz in the high 6 bits, rbits in the low 10).
func (s *Sketch) Save() []byte {
	buf := make([]byte, WireSize)
	for j, cell := range s.regs {
		binary.LittleEndian.PutUint16(buf[2*j:2*j+2], cell)
	}
	return buf
}

// Load parses a WireSize-byte blob into a new Sketch. Returns a
// FormatError if len(buf) != WireSize; any 16-bit pattern within the
// buffer is otherwise a legal register, so no further validation applies.
func Load(buf []byte) (*Sketch, error) {
	if len(buf) != WireSize {
		return nil, newFormatError("Load",
			fmt.Sprintf("expected %d bytes, got %d", WireSize, len(buf)))
	}
	s := New()
	for j := 0; j < m; j++ {
		s.regs[j] = binary.LittleEndian.Uint16(buf[2*j : 2*j+2])
	}
	return s, nil
}
