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
// github.com:SymbolNotFound/hyperminhash/hashcore/digest.go

package hashcore

import (
	"encoding/binary"
	"fmt"
)

// DigestBytes is the width of a Digest128 in bytes.
const DigestBytes = 16

// Digest128 is a 128-bit hash value, held as two 64-bit lanes so callers
// can slice out the register index / LZC suffix / r-bits without ever
// materializing a byte slice on the hot path.
type Digest128 struct {
	Hi uint64 // most significant 64 bits
	Lo uint64 // least significant 64 bits
}

// Bytes renders the digest big-endian, most significant byte first, so the
// hex string produced from it reads the same as the integer's usual
// base-16 notation.
func (d Digest128) Bytes() []byte {
	buf := make([]byte, DigestBytes)
	binary.BigEndian.PutUint64(buf[0:8], d.Hi)
	binary.BigEndian.PutUint64(buf[8:16], d.Lo)
	return buf
}

// Hex renders the digest as 32 lowercase hex digits, no "0x" prefix.
func (d Digest128) Hex() string {
	return fmt.Sprintf("%016x%016x", d.Hi, d.Lo)
}

func (d Digest128) String() string {
	return d.Hex()
}
