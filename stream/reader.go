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
// github.com:SymbolNotFound/hyperminhash/stream/reader.go

// Package stream provides bulk-ingestion helpers for feeding large inputs
// into Entries and Sketches without the caller hand-rolling a read loop.
package stream

import "io"

// DefaultChunkSize is used by AddReader when the caller passes a
// non-positive size; it keeps per-read allocation small enough to stream
// an arbitrarily large file without buffering it whole.
const DefaultChunkSize = 4096

// byteSink is the subset of *hyperminhash.Entry that AddReader needs. It
// is defined here instead of imported so AddReader has no hard
// dependency on the root package's concrete type -- any accumulator with
// an AddBytes method can be fed this way.
type byteSink interface {
	AddBytes(b []byte)
}

// AddReader drains r in chunkSize pieces (DefaultChunkSize if chunkSize
// is <= 0), feeding each piece to sink.AddBytes in order. It stops at
// io.EOF and returns any other error unchanged.
func AddReader(sink byteSink, r io.Reader, chunkSize int) error {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			sink.AddBytes(buf[:n])
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
