package astk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func testNurbsSurface(t *testing.T) *NurbsSurface {
	t.Helper()

	// degree 2 in u, degree 2 in v with an interior double knot at 0.5
	points := [][]vec3.T{
		{{0, 0, 0}, {0, 1, 1}, {0, 2, 1}, {0, 3, 0}},
		{{1, 0, 1}, {1, 1, 2}, {1, 2, 3}, {1, 3, 1}},
		{{2, 0, 0}, {2, 1, 1}, {2, 2, 0.5}, {2, 3, 0}},
	}
	weights := [][]float64{
		{1, 0.8, 1.2, 1},
		{2, 1, 1, 0.5},
		{1, 1.5, 1, 1},
	}
	knotsU := []float64{0, 0, 0, 1, 1, 1}
	knotsV := []float64{0, 0, 0, 0.5, 1, 1, 1}

	surf, err := NewNurbsSurface(2, 2, points, weights, knotsU, knotsV)
	require.NoError(t, err)

	return surf
}

func TestNurbsSurfaceValidation(t *testing.T) {
	points := [][]vec3.T{
		{{0, 0, 0}, {0, 1, 0}},
		{{1, 0, 0}, {1, 1, 0}},
	}
	weights := unitWeights(2, 2)
	clamped := []float64{0, 0, 1, 1}

	t.Run("valid", func(t *testing.T) {
		_, err := NewNurbsSurface(1, 1, points, weights, clamped, clamped)
		assert.NoError(t, err)
	})

	t.Run("empty knots", func(t *testing.T) {
		_, err := NewNurbsSurface(1, 1, points, weights, nil, []float64{0, 0, 1, 1})
		var ige InvalidGeometryError
		require.ErrorAs(t, err, &ige)
	})

	t.Run("knot length", func(t *testing.T) {
		_, err := NewNurbsSurface(1, 1, points, weights, []float64{0, 0, 1, 1, 1}, clamped)
		var ige InvalidGeometryError
		require.ErrorAs(t, err, &ige)
	})

	t.Run("unclamped knots", func(t *testing.T) {
		_, err := NewNurbsSurface(1, 1, points, weights, []float64{0, 0.5, 1, 1}, clamped)
		var ige InvalidGeometryError
		require.ErrorAs(t, err, &ige)
	})

	t.Run("decreasing knots", func(t *testing.T) {
		_, err := NewNurbsSurface(1, 1, points, weights,
			[]float64{0, 0, 1, 1}, []float64{1, 1, 0, 0})
		var ige InvalidGeometryError
		require.ErrorAs(t, err, &ige)
	})

	t.Run("negative weight", func(t *testing.T) {
		_, err := NewNurbsSurface(1, 1, points, [][]float64{{1, 1}, {1, -2}}, clamped, clamped)
		var nwe NegativeWeightError
		require.ErrorAs(t, err, &nwe)
	})

	t.Run("ragged grid", func(t *testing.T) {
		_, err := NewNurbsSurface(1, 1, [][]vec3.T{{{0, 0, 0}, {0, 1, 0}}, {{1, 0, 0}}},
			weights, clamped, clamped)
		var ige InvalidGeometryError
		require.ErrorAs(t, err, &ige)
	})
}

func TestNurbsSurfaceClampedMatchesRationalBezier(t *testing.T) {
	rational := testRationalPatch(t)
	nurbs, err := NewNurbsSurface(2, 2,
		rational.ControlPoints(), rational.Weights(),
		rational.KnotsU(), rational.KnotsV())
	require.NoError(t, err)

	for _, uv := range []UV{{0, 0}, {0.25, 0.75}, {0.5, 0.5}, {1, 0.3}, {1, 1}} {
		assertVecInDelta(t, rational.Point(uv), nurbs.Point(uv), 1e-12)
	}
}

func TestNurbsSurfaceDerivativesZeroOrderIsPoint(t *testing.T) {
	surf := testNurbsSurface(t)

	for _, uv := range []UV{{0.1, 0.2}, {0.5, 0.5}, {0.9, 0.8}} {
		ders := surf.Derivatives(uv, 2)
		assertVecInDelta(t, surf.Point(uv), ders[0][0], 1e-12)
	}
}

func TestNurbsSurfaceFirstDerivsMatchFiniteDifference(t *testing.T) {
	surf := testNurbsSurface(t)

	h := 1e-5
	for _, uv := range []UV{{0.3, 0.25}, {0.5, 0.7}, {0.8, 0.3}} {
		hi := surf.Point(UV{uv[0] + h, uv[1]})
		lo := surf.Point(UV{uv[0] - h, uv[1]})
		fd := vec3.Sub(&hi, &lo)
		fd.Scale(1 / (2 * h))
		assertVecInDelta(t, fd, surf.DerivU(uv), 1e-6)

		hi = surf.Point(UV{uv[0], uv[1] + h})
		lo = surf.Point(UV{uv[0], uv[1] - h})
		fd = vec3.Sub(&hi, &lo)
		fd.Scale(1 / (2 * h))
		assertVecInDelta(t, fd, surf.DerivV(uv), 1e-6)
	}
}

func TestNurbsSurfaceSecondDerivsMatchFiniteDifference(t *testing.T) {
	surf := testNurbsSurface(t)

	h := 1e-4
	for _, uv := range []UV{{0.3, 0.25}, {0.6, 0.7}} {
		hi := surf.Point(UV{uv[0] + h, uv[1]})
		mid := surf.Point(uv)
		lo := surf.Point(UV{uv[0] - h, uv[1]})

		fd := vec3.Add(&hi, &lo)
		scaled := mid.Scaled(2)
		fd.Sub(&scaled)
		fd.Scale(1 / (h * h))

		assertVecInDelta(t, fd, surf.SecondDerivU(uv), 1e-3)
	}
}

func TestNurbsSurfaceSampleSpansDomain(t *testing.T) {
	surf := testNurbsSurface(t)

	grid := surf.Sample(3, 5)
	require.Len(t, grid, 3)
	require.Len(t, grid[0], 5)

	assertVecInDelta(t, surf.Point(UV{0, 0}), grid[0][0], 1e-12)
	assertVecInDelta(t, surf.Point(UV{1, 1}), grid[2][4], 1e-12)
}

func TestNurbsSurfaceAccessorsCopy(t *testing.T) {
	surf := testNurbsSurface(t)

	pts := surf.ControlPoints()
	pts[0][0] = vec3.T{9, 9, 9}
	assertVecInDelta(t, vec3.T{0, 0, 0}, surf.ControlPoints()[0][0], 1e-12)

	knots := surf.KnotsV()
	knots[3] = 0.9
	assert.Equal(t, 0.5, surf.KnotsV()[3])
}

func TestNurbsSurfaceInterchange(t *testing.T) {
	surf := testNurbsSurface(t)
	x := surf.Interchange()

	assert.Equal(t, 2, x.DegreeU)
	assert.Equal(t, 2, x.DegreeV)
	assert.Equal(t, []float64{0, 0, 0, 0.5, 1, 1, 1}, x.KnotsV)
	assert.Equal(t, surf.Weights(), x.Weights)
}

func TestNurbsSurfaceDomain(t *testing.T) {
	surf := testNurbsSurface(t)

	lo, hi := surf.DomainU()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}
