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
// github.com:SymbolNotFound/hyperminhash/hashcore/hash_test.go

package hashcore_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/hyperminhash/hashcore"
)

func TestEmptyDigestMatchesFixedSeed(t *testing.T) {
	s := hashcore.New()
	d := s.Digest()
	require.Equal(t, "99aa06d3014798d86001c324468d497f", d.Hex())
}

func TestDigestIsPure(t *testing.T) {
	s := hashcore.New()
	s.Write([]byte("partial"))
	first := s.Digest()
	second := s.Digest()
	require.Equal(t, first, second, "Digest must not mutate state")

	s.Write([]byte(" more"))
	third := s.Digest()
	require.NotEqual(t, first, third, "more bytes must change the digest")
}

func TestStreamingEquivalence(t *testing.T) {
	full := strings.Repeat("hyperminhash ", 97) + "tail"

	whole := hashcore.New()
	whole.Write([]byte(full))

	for _, chunkSize := range []int{1, 3, 7, 16, 17, 64} {
		chunked := hashcore.New()
		data := []byte(full)
		for len(data) > 0 {
			n := chunkSize
			if n > len(data) {
				n = len(data)
			}
			chunked.Write(data[:n])
			data = data[n:]
		}
		require.Equal(t, whole.Digest(), chunked.Digest(),
			"chunk size %d must match single-shot digest", chunkSize)
	}
}

func TestForkDivergesIndependently(t *testing.T) {
	base := hashcore.New()
	base.Write([]byte("shared prefix"))

	left := base.Clone()
	right := base.Clone()

	left.Write([]byte("-left"))
	right.Write([]byte("-right"))

	require.NotEqual(t, left.Digest(), right.Digest())
	require.NotEqual(t, base.Digest(), left.Digest())

	replay := hashcore.New()
	replay.Write([]byte("shared prefix-left"))
	require.Equal(t, replay.Digest(), left.Digest())
}

func TestWriteEmptyIsNoop(t *testing.T) {
	s := hashcore.New()
	before := s.Digest()
	n, err := s.Write(nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Equal(t, before, s.Digest())
}

func TestBytesRoundTripOrdering(t *testing.T) {
	s := hashcore.New()
	s.Write([]byte("x"))
	d := s.Digest()
	b := d.Bytes()
	require.Len(t, b, hashcore.DigestBytes)
	require.True(t, strings.HasPrefix(d.Hex(), hexPrefix(b))) // sanity, not a semantic requirement
}

func hexPrefix(b []byte) string {
	const hextable = "0123456789abcdef"
	out := make([]byte, 2)
	out[0] = hextable[b[0]>>4]
	out[1] = hextable[b[0]&0xF]
	return string(out)
}
