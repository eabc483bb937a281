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
// github.com:SymbolNotFound/hyperminhash/estimator.go

package hyperminhash

import "math"

// alphaM is the standard HyperLogLog bias-correction constant for m =
// 16384 registers, using the generic large-m formula (m >= 128 never
// needs the small-m lookup table).
var alphaM = 0.7213 / (1 + 1.079/float64(m))

// cardinality implements the HyperMinHash point estimate: a bias-corrected
// harmonic mean of per-register contributions, refined by the r-bit tail
// to smooth the estimate between the coarse LZC buckets. Each register's
// contribution is 2^-(lz + rbits/2^r): the LZC term is the usual HyperLogLog
// bucket weight, and the fractional rbits/2^r term is what the spec calls
// the "MinHash refinement" -- it is a deterministic function of the packed
// cell alone, so two sketches built the same way always agree bit for bit.
func cardinality(regs *registers) float64 {
	var harmonicSum float64
	var zeros int

	for _, cell := range regs {
		if cell == 0 {
			zeros++
		}
		lz := float64(cell >> r)
		rbits := float64(cell & rMask)
		exponent := lz + rbits/float64(1<<r)
		harmonicSum += math.Exp2(-exponent)
	}

	raw := alphaM * float64(m) * float64(m) / harmonicSum

	// Small-range correction: linear counting, continuous with the raw
	// estimate at the m*2.5 crossover the original HyperLogLog paper uses.
	if raw <= 2.5*float64(m) && zeros > 0 {
		raw = float64(m) * math.Log(float64(m)/float64(zeros))
	}

	if raw < 0 {
		return 0
	}
	return raw
}

// collisionProbability is the chance two unrelated items land on the same
// register with the same r-bit tiebreaker purely by accident. With r bits
// of refinement this is 2^-r; it is the noise floor similarity/intersection
// must subtract before the count of matching registers means anything.
var collisionProbability = 1.0 / float64(uint64(1)<<r)

// jaccard estimates |A ∩ B| / |A ∪ B| directly from the two sketches' own
// (unmerged) register arrays: count registers where both are populated
// and identical, correct for the registers that would match purely by
// the r-bit birthday coincidence described above, and normalize by the
// number of registers occupied in at least one of the two sketches --
// not by m. At any realistic cardinality far fewer than m registers are
// ever touched, so normalizing by m would dilute the matching-register
// rate by however empty the sketches happen to be instead of measuring
// the collision rate among the registers that actually carry data.
func jaccard(a, b *registers) float64 {
	var matching, occupied int
	for i := range a {
		if a[i] != 0 || b[i] != 0 {
			occupied++
			if a[i] != 0 && a[i] == b[i] {
				matching++
			}
		}
	}
	if occupied == 0 {
		return 0
	}

	raw := float64(matching)/float64(occupied) - collisionProbability
	adjusted := raw / (1 - collisionProbability)
	if adjusted < 0 {
		return 0
	}
	if adjusted > 1 {
		return 1
	}
	return adjusted
}

// unionEstimate is the cardinality of the element-wise max of a and b.
func unionEstimate(a, b *registers) float64 {
	return cardinality(mergeCopy(a, b))
}

// intersectionEstimate is |A ∪ B| * J(A,B), per spec §4.4. An empty
// sketch has zero cardinality and therefore can never report a positive
// intersection with anything.
func intersectionEstimate(a, b *registers) float64 {
	if a.isZero() || b.isZero() {
		return 0
	}
	return jaccard(a, b) * unionEstimate(a, b)
}

// similarityEstimate is J(A,B) directly; similarity of two empty sketches
// is defined as 0 (the 0/0 case is otherwise undefined).
func similarityEstimate(a, b *registers) float64 {
	if a.isZero() && b.isZero() {
		return 0
	}
	return jaccard(a, b)
}
