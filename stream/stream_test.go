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
// github.com:SymbolNotFound/hyperminhash/stream/stream_test.go

package stream_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/hyperminhash"
	"github.com/SymbolNotFound/hyperminhash/stream"
)

func TestAddReaderMatchesAddBytes(t *testing.T) {
	payload := strings.Repeat("the quick brown fox ", 500)

	whole := hyperminhash.NewEntry()
	whole.AddBytes([]byte(payload))

	chunked := hyperminhash.NewEntry()
	require.NoError(t, stream.AddReader(chunked, strings.NewReader(payload), 7))

	require.True(t, whole.Equal(chunked))
}

func TestAddReaderDefaultsChunkSize(t *testing.T) {
	e := hyperminhash.NewEntry()
	require.NoError(t, stream.AddReader(e, strings.NewReader("hello"), 0))
	require.False(t, e.IsEmpty())
}

func TestAggregatorMatchesSequentialAdd(t *testing.T) {
	items := make([]string, 0, 2000)
	for i := 0; i < 2000; i++ {
		items = append(items, fmt.Sprintf("item-%d", i))
	}

	sequential := hyperminhash.New()
	for _, item := range items {
		sequential.AddBytes([]byte(item))
	}

	agg := stream.NewAggregator(8)
	for _, item := range items {
		agg.Add([]byte(item))
	}
	concurrent := agg.Close()

	// Every worker's local Sketch is an element-wise max over a subset of
	// the same items; merging subsets back together is commutative and
	// associative, so the combined result must match the sequential one
	// exactly, not just approximately.
	require.True(t, sequential.Equal(concurrent))
}
