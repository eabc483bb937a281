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
// github.com:SymbolNotFound/hyperminhash/errors.go

package hyperminhash

import "fmt"

// Kind classifies the small set of ways an operation on a Sketch or Entry
// can fail. There is no recovery policy: an operation either succeeds and
// mutates state, or fails before any register write occurs.
type Kind int

const (
	// TypeError: a value handed to Entry.Add or Sketch.Add cannot be turned into bytes.
	TypeError Kind = iota
	// FormatError: Load was given a buffer whose length isn't exactly 2^15.
	FormatError
	// ValueError: a comparison was attempted between sketches of different shape.
	ValueError
)

func (k Kind) String() string {
	switch k {
	case TypeError:
		return "TypeError"
	case FormatError:
		return "FormatError"
	case ValueError:
		return "ValueError"
	default:
		return "UnknownError"
	}
}

// SketchError is the single error type this package returns. It carries
// the Kind so callers can branch on failure class with errors.As, and the
// operation name so the message identifies what was being attempted.
type SketchError struct {
	Kind Kind
	Op   string
	Msg  string
}

func (e *SketchError) Error() string {
	return fmt.Sprintf("hyperminhash: %s: %s: %s", e.Op, e.Kind, e.Msg)
}

func newTypeError(op, msg string) error {
	return &SketchError{Kind: TypeError, Op: op, Msg: msg}
}

func newFormatError(op, msg string) error {
	return &SketchError{Kind: FormatError, Op: op, Msg: msg}
}

func newValueError(op, msg string) error {
	return &SketchError{Kind: ValueError, Op: op, Msg: msg}
}
