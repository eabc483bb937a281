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
// github.com:SymbolNotFound/hyperminhash/sketch.go

// Package hyperminhash implements an approximate distinct-element counter
// (a HyperMinHash cardinality sketch) with union, intersection-cardinality,
// and Jaccard-similarity composition across sketches of the same shape.
package hyperminhash

import "math"

// Sketch is a fixed-shape probabilistic set. It owns its register array
// exclusively: Entries feed it a digest but are never taken ownership of,
// and a Sketch never shrinks once created.
//
// Like Entry, Sketch is deliberately non-comparable (the trailing
// func-typed field below): spec §9 calls for Sketches to NOT be usable as
// host hash-map keys, since a mutable value's identity-based hash would
// silently corrupt such a container. Use Equal for value comparison.
type Sketch struct {
	regs registers
	_    [0]func()
}

// New returns an empty Sketch: every register zero.
func New() *Sketch {
	return &Sketch{}
}

// AddBytes hashes b as one item and folds it into the sketch.
func (s *Sketch) AddBytes(b []byte) {
	e := NewEntry()
	e.AddBytes(b)
	s.regs.update(e.Digest())
}

// Add feeds a host value the same way Entry.Add does, then folds its
// digest into the sketch. Returns a TypeError if value isn't a type
// Entry.Add knows how to turn into bytes.
func (s *Sketch) Add(value any) error {
	e := NewEntry()
	if err := e.Add(value); err != nil {
		return err
	}
	s.regs.update(e.Digest())
	return nil
}

// AddEntry folds e's current digest into the sketch. e is read, not
// consumed: it can be reused or forked afterward.
func (s *Sketch) AddEntry(e *Entry) {
	s.regs.update(e.Digest())
}

// Cardinality returns the estimated number of distinct items added so
// far. Pure; never negative.
func (s *Sketch) Cardinality() float64 {
	return cardinality(&s.regs)
}

// Len returns round(Cardinality()) as a non-negative integer.
func (s *Sketch) Len() int {
	return int(math.Round(s.Cardinality()))
}

// Bool reports whether any item has ever been added: exact, not
// estimated, since it is just "are all registers zero".
func (s *Sketch) Bool() bool {
	return !s.regs.isZero()
}

// Merge folds other's registers into s in place: element-wise max,
// commutative and idempotent.
func (s *Sketch) Merge(other *Sketch) {
	s.regs.merge(&other.regs)
}

// UnionEstimate returns the cardinality of s merged with other, without
// mutating either sketch.
func (s *Sketch) UnionEstimate(other *Sketch) float64 {
	return unionEstimate(&s.regs, &other.regs)
}

// Intersection estimates |s ∩ other|.
func (s *Sketch) Intersection(other *Sketch) float64 {
	return intersectionEstimate(&s.regs, &other.regs)
}

// Similarity estimates the Jaccard similarity of s and other, in [0, 1].
func (s *Sketch) Similarity(other *Sketch) float64 {
	return similarityEstimate(&s.regs, &other.regs)
}

// Equal reports register-wise equality.
func (s *Sketch) Equal(other *Sketch) bool {
	return s.regs.equal(&other.regs)
}

// LessOrEqual reports whether s is pointwise dominated by other: every
// register of s is <= the corresponding register of other. This is a
// partial order -- see Comparable.
func (s *Sketch) LessOrEqual(other *Sketch) bool {
	return s.regs.dominatedBy(&other.regs)
}

// Comparable reports both directions of the partial order: whether
// s <= other and whether other <= s (both hold only when the sketches are
// equal; the interesting case is when exactly one direction holds). When
// neither s <= other nor other <= s holds, the two sketches are simply
// incomparable -- this package reports false/false rather than raising a
// ValueError, since unlike a shape mismatch (which can't happen: shape is
// fixed at compile time) an incomparable pair is an expected, valid
// outcome, not a programming error.
func (s *Sketch) Comparable(other *Sketch) (sLessOrEqual, otherLessOrEqual bool) {
	return s.LessOrEqual(other), other.LessOrEqual(s)
}
