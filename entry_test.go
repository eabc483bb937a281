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
// github.com:SymbolNotFound/hyperminhash/entry_test.go

package hyperminhash_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/hyperminhash"
)

func TestNewEntryIsEmpty(t *testing.T) {
	e := hyperminhash.NewEntry()
	require.True(t, e.IsEmpty())
	require.Equal(t, "99aa06d3014798d86001c324468d497f", e.Digest().Hex())
}

func TestEntryAddBytesMarksNonEmpty(t *testing.T) {
	e := hyperminhash.NewEntry()
	e.AddBytes([]byte("a"))
	require.False(t, e.IsEmpty())
}

func TestEntryStreamingEquivalence(t *testing.T) {
	whole := hyperminhash.NewEntry()
	whole.AddBytes([]byte("aa"))

	parts := hyperminhash.NewEntry()
	parts.AddBytes([]byte("a"))
	parts.AddBytes([]byte("a"))

	require.True(t, whole.Equal(parts))
	require.Equal(t, whole.Digest(), parts.Digest())
}

func TestEntryForkDiverges(t *testing.T) {
	base := hyperminhash.NewEntry()
	base.AddBytes([]byte("x"))

	fork := base.Fork()
	fork.AddBytes([]byte("y"))

	require.False(t, base.Equal(fork))

	replay := hyperminhash.NewEntry()
	replay.AddBytes([]byte("xy"))
	require.True(t, replay.Equal(fork))
}

func TestEntryAddRejectsUnsupportedType(t *testing.T) {
	e := hyperminhash.NewEntry()
	err := e.Add(3.14)
	require.Error(t, err)

	var serr *hyperminhash.SketchError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, hyperminhash.TypeError, serr.Kind)
}

func TestEntryAddAcceptsStringsBytesAndInts(t *testing.T) {
	e1 := hyperminhash.NewEntry()
	require.NoError(t, e1.Add("foo"))

	e2 := hyperminhash.NewEntry()
	e2.AddBytes([]byte("foo"))

	require.True(t, e1.Equal(e2))

	e3 := hyperminhash.NewEntry()
	require.NoError(t, e3.Add(42))
	require.False(t, e3.IsEmpty())
}

func TestEntryStringFormat(t *testing.T) {
	e := hyperminhash.NewEntry()
	require.Equal(t, "Entry(digest=99aa06d3014798d86001c324468d497f)", e.String())
}
