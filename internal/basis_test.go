package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinomial(t *testing.T) {
	assert.Equal(t, 1.0, Binomial(0, 0))
	assert.Equal(t, 1.0, Binomial(5, 0))
	assert.Equal(t, 1.0, Binomial(5, 5))
	assert.Equal(t, 6.0, Binomial(4, 2))
	assert.Equal(t, 10.0, Binomial(5, 2))
	assert.InDelta(t, 252, Binomial(10, 5), 1e-9)
}

func TestBinomialOutOfRange(t *testing.T) {
	assert.Equal(t, 0.0, Binomial(3, -1))
	assert.Equal(t, 0.0, Binomial(3, 4))
}

func TestBernsteinPartitionOfUnity(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for _, u := range []float64{0, 0.25, 0.5, 0.75, 1} {
			sum := 0.0
			for i := 0; i <= n; i++ {
				sum += Bernstein(n, i, u)
			}
			assert.InDelta(t, 1, sum, 1e-12, "degree %d at %v", n, u)
		}
	}
}

func TestBernsteinEndpoints(t *testing.T) {
	assert.Equal(t, 1.0, Bernstein(3, 0, 0))
	assert.Equal(t, 1.0, Bernstein(3, 3, 1))
	assert.Equal(t, 0.0, Bernstein(3, 1, 0))
	assert.Equal(t, 0.0, Bernstein(3, 2, 1))
}

func TestBernsteinOutOfRangeIndex(t *testing.T) {
	assert.Equal(t, 0.0, Bernstein(3, -1, 0.5))
	assert.Equal(t, 0.0, Bernstein(3, 4, 0.5))
}

func TestCoxDeBoorMatchesBernsteinOnClampedKnots(t *testing.T) {
	degree := 3
	knots := ClampedKnots(degree + 1)
	spans := knots.NonDegenerateSpans()

	for i := 0; i <= degree; i++ {
		for _, u := range []float64{0, 0.2, 0.5, 0.9, 1} {
			assert.InDelta(t, Bernstein(degree, i, u), CoxDeBoor(u, i, degree, knots, spans), 1e-12,
				"basis %d at %v", i, u)
		}
	}
}

func TestCoxDeBoorPartitionOfUnity(t *testing.T) {
	for degree := 1; degree <= 5; degree++ {
		knots := ClampedKnots(degree + 1)
		spans := knots.NonDegenerateSpans()

		for _, u := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.99, 1} {
			values := BasisFunctions(u, degree, degree+1, knots, spans)

			sum := 0.0
			for _, v := range values {
				require.False(t, math.IsNaN(v))
				sum += v
			}
			assert.InDelta(t, 1, sum, 1e-12, "degree %d at %v", degree, u)
		}
	}
}

func TestCoxDeBoorPartitionOfUnityInteriorKnot(t *testing.T) {
	knots := KnotVec{0, 0, 0, 0.5, 1, 1, 1}
	spans := knots.NonDegenerateSpans()

	for _, u := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.99, 1} {
		values := BasisFunctions(u, 2, 4, knots, spans)

		sum := 0.0
		for _, v := range values {
			sum += v
		}
		assert.InDelta(t, 1, sum, 1e-12, "at %v", u)
	}
}

func TestCoxDeBoorOutsideDomain(t *testing.T) {
	knots := ClampedKnots(3)
	spans := knots.NonDegenerateSpans()

	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, CoxDeBoor(-0.5, i, 2, knots, spans))
		assert.Equal(t, 0.0, CoxDeBoor(1.5, i, 2, knots, spans))
	}
}

func TestDerivativeBasisFunctionsZerothRow(t *testing.T) {
	degree := 3
	knots := ClampedKnots(degree + 1)
	u := 0.3

	span := knots.Span(degree, u)
	ders := DerivativeBasisFunctions(span, u, degree, 2, knots)

	for j := 0; j <= degree; j++ {
		assert.InDelta(t, Bernstein(degree, j, u), ders[0][j], 1e-12, "basis %d", j)
	}
}

func TestDerivativeBasisFunctionsMatchFiniteDifference(t *testing.T) {
	degree := 3
	knots := ClampedKnots(degree + 1)
	u := 0.4
	h := 1e-6

	span := knots.Span(degree, u)
	ders := DerivativeBasisFunctions(span, u, degree, 1, knots)

	for j := 0; j <= degree; j++ {
		fd := (Bernstein(degree, j, u+h) - Bernstein(degree, j, u-h)) / (2 * h)
		assert.InDelta(t, fd, ders[1][j], 1e-5, "derivative of basis %d", j)
	}
}

func TestDerivativeBasisFunctionsRowsSumToZero(t *testing.T) {
	knots := KnotVec{0, 0, 0, 0.5, 1, 1, 1}
	u := 0.3
	degree := 2

	span := knots.Span(degree, u)
	ders := DerivativeBasisFunctions(span, u, degree, 2, knots)

	for k := 1; k <= 2; k++ {
		sum := 0.0
		for j := 0; j <= degree; j++ {
			sum += ders[k][j]
		}
		assert.InDelta(t, 0, sum, 1e-9, "derivative order %d", k)
	}
}

func TestDerivativeBasisFunctionsAboveDegreeAreZero(t *testing.T) {
	degree := 2
	knots := ClampedKnots(degree + 1)
	u := 0.5

	span := knots.Span(degree, u)
	ders := DerivativeBasisFunctions(span, u, degree, 4, knots)

	require.Len(t, ders, 5)
	for k := degree + 1; k <= 4; k++ {
		for j := 0; j <= degree; j++ {
			assert.Equal(t, 0.0, ders[k][j])
		}
	}
}
