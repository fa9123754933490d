package astk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func assertVecInDelta(t *testing.T, expected, actual vec3.T, delta float64) {
	t.Helper()
	for c := 0; c < 3; c++ {
		assert.InDelta(t, expected[c], actual[c], delta, "component %d", c)
	}
}

// parabolicPatch carries the exact surface S(u,v) = (2u, 2v, u^2): the x
// and y coefficient rows are the linear-precision values 2*i/n, and u^2 is
// the top quadratic Bernstein basis function.
func parabolicPatch() *BezierSurface {
	z := []float64{0, 0, 1}

	points := make([][]vec3.T, 3)
	for i := range points {
		points[i] = make([]vec3.T, 3)
		for j := range points[i] {
			points[i][j] = vec3.T{float64(i), float64(j), z[i]}
		}
	}

	return NewBezierSurface(points)
}

func TestBezierSurfacePointExact(t *testing.T) {
	surf := parabolicPatch()

	for _, u := range []float64{0, 0.25, 0.5, 1} {
		for _, v := range []float64{0, 0.3, 1} {
			assertVecInDelta(t, vec3.T{2 * u, 2 * v, u * u}, surf.Point(UV{u, v}), 1e-12)
		}
	}
}

func TestBezierSurfaceDerivsExact(t *testing.T) {
	surf := parabolicPatch()

	for _, u := range []float64{0, 0.4, 1} {
		for _, v := range []float64{0.1, 0.9} {
			assertVecInDelta(t, vec3.T{2, 0, 2 * u}, surf.DerivU(UV{u, v}), 1e-12)
			assertVecInDelta(t, vec3.T{0, 2, 0}, surf.DerivV(UV{u, v}), 1e-12)
			assertVecInDelta(t, vec3.T{0, 0, 2}, surf.SecondDerivU(UV{u, v}), 1e-12)
			assertVecInDelta(t, vec3.T{0, 0, 0}, surf.SecondDerivV(UV{u, v}), 1e-12)
		}
	}
}

func TestBezierSurfaceDerivsMatchFiniteDifference(t *testing.T) {
	surf := NewBezierSurfaceFromArray([][][3]float64{
		{{0, 0, 0}, {0, 1, 1}, {0, 2, 0.5}},
		{{1, 0, 1}, {1, 1, 3}, {1, 2, 1}},
		{{2, 0, 0.5}, {2, 1, 1}, {2, 2, 2}},
	})

	h := 1e-5
	for _, uv := range []UV{{0.3, 0.3}, {0.5, 0.7}, {0.8, 0.2}} {
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

		hi = surf.Point(UV{uv[0] + h, uv[1]})
		mid := surf.Point(uv)
		lo = surf.Point(UV{uv[0] - h, uv[1]})
		fd = vec3.Add(&hi, &lo)
		scaled := mid.Scaled(2)
		fd.Sub(&scaled)
		fd.Scale(1 / (h * h))
		assertVecInDelta(t, fd, surf.SecondDerivU(uv), 1e-4)
	}
}

func TestBezierSurfaceInterpolatesCorners(t *testing.T) {
	surf := NewBezierSurfaceFromArray([][][3]float64{
		{{0, 0, 0}, {0, 1, 1}, {0, 2, 0.5}},
		{{1, 0, 1}, {1, 1, 3}, {1, 2, 1}},
		{{2, 0, 0.5}, {2, 1, 1}, {2, 2, 2}},
	})

	pts := surf.ControlPoints()
	for _, corner := range []SurfaceCorner{Northeast, Northwest, Southwest, Southeast} {
		i, j := surf.CornerIndex(corner)
		assertVecInDelta(t, pts[i][j], surf.Point(surf.CornerUV(corner)), 1e-12)
	}
}

func TestBezierSurfaceCornerIndex(t *testing.T) {
	surf := parabolicPatch()

	cases := []struct {
		corner SurfaceCorner
		i, j   int
	}{
		{Northeast, 2, 2},
		{Northwest, 0, 2},
		{Southwest, 0, 0},
		{Southeast, 2, 0},
	}
	for _, c := range cases {
		i, j := surf.CornerIndex(c.corner)
		assert.Equal(t, c.i, i, c.corner.String())
		assert.Equal(t, c.j, j, c.corner.String())
	}

	assert.Panics(t, func() { surf.CornerIndex(SurfaceCorner(9)) })
}

func TestBezierSurfaceEdgeAddressing(t *testing.T) {
	surf := parabolicPatch()
	pts := surf.ControlPoints()

	assertVecInDelta(t, pts[1][2], surf.GetPoint(1, 0, North), 1e-12)
	assertVecInDelta(t, pts[1][1], surf.GetPoint(1, 1, North), 1e-12)
	assertVecInDelta(t, pts[1][0], surf.GetPoint(1, 0, South), 1e-12)
	assertVecInDelta(t, pts[2][1], surf.GetPoint(1, 0, East), 1e-12)
	assertVecInDelta(t, pts[1][1], surf.GetPoint(1, 1, East), 1e-12)
	assertVecInDelta(t, pts[0][1], surf.GetPoint(1, 0, West), 1e-12)

	assert.Panics(t, func() { surf.GetPoint(0, 0, SurfaceEdge(7)) })
}

func TestBezierSurfaceParallelAndPerpendicularDegree(t *testing.T) {
	surf := NewBezierSurfaceFromArray([][][3]float64{
		{{0, 0, 0}, {0, 1, 0}, {0, 2, 0}},
		{{1, 0, 0}, {1, 1, 0}, {1, 2, 0}},
	})

	assert.Equal(t, 1, surf.ParallelDegree(North))
	assert.Equal(t, 2, surf.PerpendicularDegree(North))
	assert.Equal(t, 2, surf.ParallelDegree(East))
	assert.Equal(t, 1, surf.PerpendicularDegree(East))
}

func TestBezierSurfaceEdgeMatchesBoundaryIsoCurve(t *testing.T) {
	surf := NewBezierSurfaceFromArray([][][3]float64{
		{{0, 0, 0}, {0, 1, 1}, {0, 2, 0.5}},
		{{1, 0, 1}, {1, 1, 3}, {1, 2, 1}},
		{{2, 0, 0.5}, {2, 1, 1}, {2, 2, 2}},
	})

	north := surf.Edge(North, 7)
	for k, u := range []float64{0, 1.0 / 6, 2.0 / 6, 0.5, 4.0 / 6, 5.0 / 6, 1} {
		assertVecInDelta(t, surf.Point(UV{u, 1}), north[k], 1e-12)
	}

	west := surf.Edge(West, 3)
	assertVecInDelta(t, surf.Point(UV{0, 0}), west[0], 1e-12)
	assertVecInDelta(t, surf.Point(UV{0, 0.5}), west[1], 1e-12)
	assertVecInDelta(t, surf.Point(UV{0, 1}), west[2], 1e-12)
}

func TestBezierSurfaceExtractEdgeCurve(t *testing.T) {
	surf := parabolicPatch()

	south := surf.ExtractEdgeCurve(South)
	require.Equal(t, 2, south.Degree())
	for _, u := range []float64{0, 0.3, 1} {
		assertVecInDelta(t, surf.Point(UV{u, 0}), south.Point(u), 1e-12)
	}
}

func testPatchPair() (a, b *BezierSurface) {
	a = NewBezierSurfaceFromArray([][][3]float64{
		{{0, 0, 0.2}, {0, 1, 1}, {0, 2, 0.5}},
		{{1, 0, 1}, {1, 1, 3}, {1, 2, 1.5}},
		{{2, 0, 0.5}, {2, 1, 1}, {2, 2, 2}},
	})
	b = NewBezierSurfaceFromArray([][][3]float64{
		{{0.1, 2.2, 0}, {0, 3, 0.4}, {0, 4, 1}},
		{{1, 2.1, 0.7}, {1, 3, 0.1}, {1, 4, 0}},
		{{2, 2.3, 0.9}, {2, 3, 0.5}, {2, 4, 1}},
	})

	return a, b
}

func TestBezierSurfaceEnforceG0(t *testing.T) {
	a, b := testPatchPair()

	b.EnforceG0(a, South, North)

	require.NoError(t, VerifyG0(b, a, South, North, 11))
	for row := 0; row <= 2; row++ {
		assertVecInDelta(t, a.GetPoint(row, 0, North), b.GetPoint(row, 0, South), 1e-12)
	}
}

func TestBezierSurfaceEnforceC0C1(t *testing.T) {
	a, b := testPatchPair()

	b.EnforceC0C1(a, South, North)

	require.NoError(t, VerifyG0(b, a, South, North, 11))
	require.NoError(t, VerifyG1(b, a, South, North, 11))

	// f = 1 with equal degrees gives exact derivative equality
	da := a.EdgeFirstDerivs(North, 9, true)
	db := b.EdgeFirstDerivs(South, 9, true)
	for k := range da {
		assertVecInDelta(t, da[k], db[k], 1e-9)
	}
}

func TestBezierSurfaceEnforceC0C1C2(t *testing.T) {
	a, b := testPatchPair()

	b.EnforceC0C1C2(a, South, North)

	require.NoError(t, VerifyG0(b, a, South, North, 11))
	require.NoError(t, VerifyG1(b, a, South, North, 11))
	require.NoError(t, VerifyG2(b, a, South, North, 11))

	da := a.EdgeSecondDerivs(North, 9, true)
	db := b.EdgeSecondDerivs(South, 9, true)
	for k := range da {
		assertVecInDelta(t, da[k], db[k], 1e-9)
	}
}

func TestBezierSurfaceEnforceG0G1WithRatio(t *testing.T) {
	a, b := testPatchPair()

	b.EnforceG0G1(a, 0.5, South, North)

	require.NoError(t, VerifyG0(b, a, South, North, 11))
	require.NoError(t, VerifyG1(b, a, South, North, 11))
}

func TestBezierSurfaceEnforceAcrossOppositeEdges(t *testing.T) {
	a, b := testPatchPair()

	b.EnforceC0C1(a, West, East)

	require.NoError(t, VerifyG0(b, a, West, East, 11))
	require.NoError(t, VerifyG1(b, a, West, East, 11))
}

func TestBezierSurfaceEnforceRowsMatchesUniform(t *testing.T) {
	a, b1 := testPatchPair()
	_, b2 := testPatchPair()

	b1.EnforceG0G1G2(a, 0.6, South, North)
	b2.EnforceG0G1G2Rows(a, []float64{0.6, 0.6, 0.6}, South, North)

	assert.Equal(t, b1.ControlPoints(), b2.ControlPoints())
}

func TestBezierSurfaceEnforceRowsLengthPanics(t *testing.T) {
	a, b := testPatchPair()

	assert.Panics(t, func() {
		b.EnforceG0G1Rows(a, []float64{1}, South, North)
	})
}

func TestBezierSurfaceEnforceDegreeMismatchPanics(t *testing.T) {
	a := parabolicPatch()
	c := NewBezierSurfaceFromArray([][][3]float64{
		{{0, 0, 0}, {0, 1, 0}},
		{{1, 0, 0}, {1, 1, 0}},
	})

	assert.Panics(t, func() { c.EnforceG0(a, South, North) })
}

func TestBezierSurfaceSampleShapeAndCorners(t *testing.T) {
	surf := parabolicPatch()

	grid := surf.Sample(4, 6)
	require.Len(t, grid, 4)
	for _, row := range grid {
		require.Len(t, row, 6)
	}

	assertVecInDelta(t, surf.Point(UV{0, 0}), grid[0][0], 1e-12)
	assertVecInDelta(t, surf.Point(UV{1, 1}), grid[3][5], 1e-12)
}

func TestBezierSurfaceRaggedGridPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewBezierSurface([][]vec3.T{
			{{0, 0, 0}, {0, 1, 0}},
			{{1, 0, 0}},
		})
	})
}

func TestBezierSurfaceInterchange(t *testing.T) {
	surf := parabolicPatch()
	x := surf.Interchange()

	assert.Equal(t, 2, x.DegreeU)
	assert.Equal(t, 2, x.DegreeV)
	assert.Nil(t, x.Weights)
	assert.Empty(t, x.KnotsU)
	assert.Equal(t, surf.ControlPoints(), x.ControlPoints)
}
