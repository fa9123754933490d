package internal

import "math"

var binomCache map[[2]int]float64

func init() {
	binomCache = make(map[[2]int]float64)
}

// Binomial computes the binomial coefficient C(n, k), returning 0 for k
// outside [0, n]. Results are memoized; the kernel is single-threaded by
// contract, so the cache carries no lock.
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}

	if k == 0 || k == n {
		return 1
	}

	if k > n-k {
		k = n - k // optimization
	}

	if result, ok := binomCache[[2]int{n, k}]; ok {
		return result
	}

	r := 1.0
	nn := n
	for d := 1; d <= k; d++ {
		r *= float64(nn) / float64(d)
		nn--
	}

	binomCache[[2]int{n, k}] = r
	return r
}

// Bernstein evaluates the Bernstein polynomial B(n,i) at t:
//
//	B(n,i,t) = C(n,i) * t^i * (1-t)^(n-i)
//
// An index outside [0, n] evaluates to 0, which the derivative identities
// rely on for their out-of-range terms.
func Bernstein(n, i int, t float64) float64 {
	if i < 0 || i > n {
		return 0
	}

	return Binomial(n, i) * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
}

// CoxDeBoor evaluates the B-spline basis function N(i,p) at t by the
// recursive Cox-de Boor definition. The zero-degree case tests span
// ownership against the precomputed non-degenerate spans; a 0/0 coefficient
// collapses to 0 and a zero-coefficient branch is not recursed into, so the
// function is never evaluated outside its support. Recursion depth equals p.
//
// **params**
// + float parameter
// + integer basis function index
// + integer degree of function
// + array of nondecreasing knot values
// + non-degenerate spans of the knot vector
//
// **returns**
// + the basis function value
func CoxDeBoor(t float64, i, p int, knots KnotVec, spans []KnotSpan) float64 {
	if p == 0 {
		if FindSpan(t, spans) == i {
			return 1
		}
		return 0
	}

	var f, g float64
	if denom := knots[i+p] - knots[i]; denom != 0 {
		f = (t - knots[i]) / denom
	}
	if denom := knots[i+p+1] - knots[i+1]; denom != 0 {
		g = (knots[i+p+1] - t) / denom
	}

	switch {
	case f == 0 && g == 0:
		return 0
	case g == 0:
		return f * CoxDeBoor(t, i, p-1, knots, spans)
	case f == 0:
		return g * CoxDeBoor(t, i+1, p-1, knots, spans)
	}

	return f*CoxDeBoor(t, i, p-1, knots, spans) + g*CoxDeBoor(t, i+1, p-1, knots, spans)
}

// BasisFunctions evaluates all numBasis B-spline basis functions of the given
// degree at t.
func BasisFunctions(t float64, degree, numBasis int, knots KnotVec, spans []KnotSpan) []float64 {
	values := make([]float64, numBasis)
	for i := range values {
		values[i] = CoxDeBoor(t, i, degree, knots, spans)
	}

	return values
}

// DerivativeBasisFunctions computes the non-vanishing basis functions and
// their derivatives up to numDerivs
// (corresponds to algorithm 2.3 from The NURBS book, Piegl & Tiller 2nd edition)
//
// **params**
// + integer knot span index
// + float parameter
// + integer degree
// + integer number of derivatives to compute
// + array of nondecreasing knot values
//
// **returns**
// + 2d array of basis and derivative values of size (numDerivs+1, p+1). The
// kth row holds the kth derivative, the first row the basis function values.
func DerivativeBasisFunctions(knotSpanIndex int, u float64, p, numDerivs int, knots KnotVec) [][]float64 {
	ndu := zeros2d(p+1, p+1)

	left := make([]float64, p+1)
	right := make([]float64, p+1)

	ndu[0][0] = 1

	for j := 1; j <= p; j++ {
		left[j] = u - knots[knotSpanIndex+1-j]
		right[j] = knots[knotSpanIndex+j] - u
		var saved float64

		for r := 0; r < j; r++ {
			ndu[j][r] = right[r+1] + left[j-r]
			temp := ndu[r][j-1] / ndu[j][r]

			ndu[r][j] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		ndu[j][j] = saved
	}

	ders := zeros2d(numDerivs+1, p+1)

	for j := 0; j <= p; j++ {
		ders[0][j] = ndu[j][p]
	}

	// derivatives above the degree stay zero
	n := numDerivs
	if n > p {
		n = p
	}

	a := zeros2d(2, p+1)
	var j1, j2 int

	for r := 0; r <= p; r++ {
		s1, s2 := 0, 1
		a[0][0] = 1

		for k := 1; k <= n; k++ {
			var d float64
			rk := r - k
			pk := p - k

			if r >= k {
				a[s2][0] = a[s1][0] / ndu[pk+1][rk]
				d = a[s2][0] * ndu[rk][pk]
			}

			if rk >= -1 {
				j1 = 1
			} else {
				j1 = -rk
			}

			if r-1 <= pk {
				j2 = k - 1
			} else {
				j2 = p - r
			}

			for j := j1; j <= j2; j++ {
				a[s2][j] = (a[s1][j] - a[s1][j-1]) / ndu[pk+1][rk+j]
				d += a[s2][j] * ndu[rk+j][pk]
			}

			if r <= pk {
				a[s2][k] = -a[s1][k-1] / ndu[pk+1][r]
				d += a[s2][k] * ndu[r][pk]
			}

			ders[k][r] = d

			s1, s2 = s2, s1
		}
	}

	acc := p
	for k := 1; k <= n; k++ {
		for j := 0; j <= p; j++ {
			ders[k][j] *= float64(acc)
		}
		acc *= p - k
	}

	return ders
}

func zeros2d(n, m int) [][]float64 {
	result := make([][]float64, n)
	for i := range result {
		result[i] = make([]float64, m)
	}

	return result
}
