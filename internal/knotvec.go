package internal

import "math"

type KnotVec []float64

// ClampedKnots builds the two-valued knot vector of a Bezier-equivalent
// patch: degree+1 zeros followed by degree+1 ones.
func ClampedKnots(numBasis int) KnotVec {
	knots := make(KnotVec, 2*numBasis)
	for i := numBasis; i < len(knots); i++ {
		knots[i] = 1
	}

	return knots
}

func (this KnotVec) Clone() KnotVec {
	return append(KnotVec(nil), this...)
}

func (this KnotVec) Domain() float64 {
	return this[len(this)-1] - this[0]
}

// Find the span on the knot vector without supplying n
//
// **params**
// + integer degree of function
// + float parameter
//
// **returns**
// + the index of the knot span
func (this KnotVec) Span(degree int, u float64) int {
	m := len(this) - 1
	n := m - degree - 1

	return this.SpanGivenN(n, degree, u)
}

// Find the span on the knot vector of the given parameter
// (corresponds to algorithm 2.1 from The NURBS book, Piegl & Tiller 2nd edition)
//
// **params**
// + integer number of basis functions - 1 = len(knots) - degree - 2
// + integer degree of function
// + float parameter
//
// **returns**
// + the index of the knot span
func (this KnotVec) SpanGivenN(n int, degree int, u float64) int {
	if u >= this[n+1] {
		return n
	}

	if u < this[degree] {
		return degree
	}

	low, high := degree, n+1
	mid := (low + high) / 2

	for u < this[mid] || u >= this[mid+1] {
		if u < this[mid] {
			high = mid
		} else {
			low = mid
		}

		mid = (low + high) / 2
	}

	return mid
}

func (this KnotVec) IsValid(degree int) bool {
	if len(this) == 0 {
		return false
	}

	if len(this) < (degree+1)*2 {
		return false
	}

	rep := this[0]

	for _, knot := range this[:degree+1] {
		if math.Abs(knot-rep) > Epsilon {
			return false
		}
	}

	rep = this[len(this)-1]

	for _, knot := range this[len(this)-degree-1:] {
		if math.Abs(knot-rep) > Epsilon {
			return false
		}
	}

	return this.IsNonDecreasing()
}

func (this KnotVec) IsNonDecreasing() bool {
	rep := this[0]
	for _, knot := range this[1:] {
		if knot < rep-Epsilon {
			return false
		}
		rep = knot
	}
	return true
}

// KnotSpan is a non-degenerate interval [Lo, Hi) of a knot vector, owned by
// the basis function at Index.
type KnotSpan struct {
	Lo, Hi float64
	Index  int
}

// NonDegenerateSpans collects the intervals of the knot vector with nonzero
// width, in order. A vector too short to contain an interval has none.
func (this KnotVec) NonDegenerateSpans() []KnotSpan {
	if len(this) < 2 {
		return nil
	}

	spans := make([]KnotSpan, 0, len(this)-1)
	for i := 0; i < len(this)-1; i++ {
		if this[i] == this[i+1] {
			continue
		}
		spans = append(spans, KnotSpan{this[i], this[i+1], i})
	}

	return spans
}

// FindSpan returns the owning index of the span containing t, by linear scan.
// Each span is half-open at the top except the final one, which also claims
// its upper bound. Parameters outside every span return -1.
func FindSpan(t float64, spans []KnotSpan) int {
	for _, span := range spans {
		if span.Lo <= t && t < span.Hi {
			return span.Index
		}
	}

	if len(spans) > 0 && t == spans[len(spans)-1].Hi {
		return spans[len(spans)-1].Index
	}

	return -1
}
