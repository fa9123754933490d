package astk

import (
	"github.com/Chaitanya-Cho-Ongole/astk/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// BezierSurface is a polynomial tensor-product Bezier patch. The control
// grid is fixed in shape at construction; individual slots are rewritten in
// place by continuity enforcement.
type BezierSurface struct {
	// 2d grid of control points, u increasing by row, v by column
	points [][]vec3.T

	// integer degree of surface in u direction
	degreeU int

	// integer degree of surface in v direction
	degreeV int
}

func NewBezierSurface(points [][]vec3.T) *BezierSurface {
	checkGrid(points)

	return &BezierSurface{
		points:  clonePoints(points),
		degreeU: len(points) - 1,
		degreeV: len(points[0]) - 1,
	}
}

// NewBezierSurfaceFromArray converts a raw coordinate grid into a patch.
func NewBezierSurfaceFromArray(points [][][3]float64) *BezierSurface {
	grid := make([][]vec3.T, len(points))
	for i := range grid {
		grid[i] = make([]vec3.T, len(points[i]))
		for j := range grid[i] {
			grid[i][j] = vec3.T(points[i][j])
		}
	}

	return NewBezierSurface(grid)
}

func (this *BezierSurface) DegreeU() int { return this.degreeU }
func (this *BezierSurface) DegreeV() int { return this.degreeV }
func (this *BezierSurface) NumU() int    { return this.degreeU + 1 }
func (this *BezierSurface) NumV() int    { return this.degreeV + 1 }

func (this *BezierSurface) ControlPoints() [][]vec3.T {
	return clonePoints(this.points)
}

func (this *BezierSurface) Interchange() *Interchange {
	return &Interchange{
		ControlPoints: clonePoints(this.points),
		DegreeU:       this.degreeU,
		DegreeV:       this.degreeV,
	}
}

// Point evaluates the surface at the given parameter pair:
//
//	S(u,v) = sum_i sum_j P[i][j] * Bu_i(u) * Bv_j(v)
func (this *BezierSurface) Point(uv UV) vec3.T {
	var pt vec3.T
	for i := 0; i <= this.degreeU; i++ {
		bu := internal.Bernstein(this.degreeU, i, uv[0])
		for j := 0; j <= this.degreeV; j++ {
			bv := internal.Bernstein(this.degreeV, j, uv[1])
			scaled := this.points[i][j].Scaled(bu * bv)
			pt.Add(&scaled)
		}
	}

	return pt
}

// DerivU evaluates dS/du using the degree-lowering difference identity
// dB(n,i)/du = n * (B(n-1,i-1) - B(n-1,i)), with out-of-range basis indices
// evaluating to zero.
func (this *BezierSurface) DerivU(uv UV) vec3.T {
	n, m := this.degreeU, this.degreeV

	var deriv vec3.T
	for i := 0; i <= n; i++ {
		dbu := float64(n) * (internal.Bernstein(n-1, i-1, uv[0]) - internal.Bernstein(n-1, i, uv[0]))
		for j := 0; j <= m; j++ {
			bv := internal.Bernstein(m, j, uv[1])
			scaled := this.points[i][j].Scaled(dbu * bv)
			deriv.Add(&scaled)
		}
	}

	return deriv
}

// DerivV evaluates dS/dv.
func (this *BezierSurface) DerivV(uv UV) vec3.T {
	n, m := this.degreeU, this.degreeV

	var deriv vec3.T
	for i := 0; i <= n; i++ {
		bu := internal.Bernstein(n, i, uv[0])
		for j := 0; j <= m; j++ {
			dbv := float64(m) * (internal.Bernstein(m-1, j-1, uv[1]) - internal.Bernstein(m-1, j, uv[1]))
			scaled := this.points[i][j].Scaled(bu * dbv)
			deriv.Add(&scaled)
		}
	}

	return deriv
}

// SecondDerivU evaluates d2S/du2 as the second difference of degree-(n-2)
// Bernstein bases.
func (this *BezierSurface) SecondDerivU(uv UV) vec3.T {
	n, m := this.degreeU, this.degreeV
	nn := float64(n) * float64(n-1)

	var deriv vec3.T
	for i := 0; i <= n; i++ {
		d2bu := nn * (internal.Bernstein(n-2, i-2, uv[0]) -
			2*internal.Bernstein(n-2, i-1, uv[0]) +
			internal.Bernstein(n-2, i, uv[0]))
		for j := 0; j <= m; j++ {
			bv := internal.Bernstein(m, j, uv[1])
			scaled := this.points[i][j].Scaled(d2bu * bv)
			deriv.Add(&scaled)
		}
	}

	return deriv
}

// SecondDerivV evaluates d2S/dv2.
func (this *BezierSurface) SecondDerivV(uv UV) vec3.T {
	n, m := this.degreeU, this.degreeV
	mm := float64(m) * float64(m-1)

	var deriv vec3.T
	for i := 0; i <= n; i++ {
		bu := internal.Bernstein(n, i, uv[0])
		for j := 0; j <= m; j++ {
			d2bv := mm * (internal.Bernstein(m-2, j-2, uv[1]) -
				2*internal.Bernstein(m-2, j-1, uv[1]) +
				internal.Bernstein(m-2, j, uv[1]))
			scaled := this.points[i][j].Scaled(bu * d2bv)
			deriv.Add(&scaled)
		}
	}

	return deriv
}

// Sample evaluates the surface on a regular nu x nv parameter grid over
// [0,1]^2, for meshing and plotting consumers.
func (this *BezierSurface) Sample(nu, nv int) [][]vec3.T {
	return sampleGrid(nu, nv, this.Point)
}

// IsoCurveU samples the isoparametric curve at fixed v.
func (this *BezierSurface) IsoCurveU(nu int, v float64) []vec3.T {
	pts := make([]vec3.T, nu)
	for i, u := range linspace(0, 1, nu) {
		pts[i] = this.Point(UV{u, v})
	}

	return pts
}

// IsoCurveV samples the isoparametric curve at fixed u.
func (this *BezierSurface) IsoCurveV(nv int, u float64) []vec3.T {
	pts := make([]vec3.T, nv)
	for j, v := range linspace(0, 1, nv) {
		pts[j] = this.Point(UV{u, v})
	}

	return pts
}

// Edge samples the boundary curve lying on the given edge.
func (this *BezierSurface) Edge(edge SurfaceEdge, numPoints int) []vec3.T {
	return edgeSamples(this, edge, numPoints)
}

// EdgeFirstDerivs samples the first derivative along the given edge. With
// perp set, the derivative is taken across the edge; otherwise along it.
func (this *BezierSurface) EdgeFirstDerivs(edge SurfaceEdge, numPoints int, perp bool) []vec3.T {
	return edgeDerivSamples(this.DerivU, this.DerivV, edge, numPoints, perp)
}

// EdgeSecondDerivs samples the second derivative along the given edge.
func (this *BezierSurface) EdgeSecondDerivs(edge SurfaceEdge, numPoints int, perp bool) []vec3.T {
	return edgeDerivSamples(this.SecondDerivU, this.SecondDerivV, edge, numPoints, perp)
}

// ExtractEdgeCurve lifts the boundary control row of the given edge into a
// standalone Bezier curve.
func (this *BezierSurface) ExtractEdgeCurve(edge SurfaceEdge) *BezierCurve {
	degree := this.ParallelDegree(edge)
	pts := make([]vec3.T, degree+1)
	for row := 0; row <= degree; row++ {
		pts[row] = this.GetPoint(row, 0, edge)
	}

	return NewBezierCurve(pts)
}

// ParallelDegree reports the degree along the given edge.
func (this *BezierSurface) ParallelDegree(edge SurfaceEdge) int {
	switch edge {
	case North, South:
		return this.degreeU
	case East, West:
		return this.degreeV
	}
	panic(InvalidEdgeError{edge})
}

// PerpendicularDegree reports the degree across the given edge.
func (this *BezierSurface) PerpendicularDegree(edge SurfaceEdge) int {
	switch edge {
	case North, South:
		return this.degreeV
	case East, West:
		return this.degreeU
	}
	panic(InvalidEdgeError{edge})
}

// GetPoint addresses a control point by its position along an edge and its
// continuity depth inward from the boundary. North and East edges are the
// far side of the grid, so their depth counts back from the row end.
func (this *BezierSurface) GetPoint(rowIndex, continuityIndex int, edge SurfaceEdge) vec3.T {
	switch edge {
	case North:
		return this.points[rowIndex][this.degreeV-continuityIndex]
	case South:
		return this.points[rowIndex][continuityIndex]
	case East:
		return this.points[this.degreeU-continuityIndex][rowIndex]
	case West:
		return this.points[continuityIndex][rowIndex]
	}
	panic(InvalidEdgeError{edge})
}

// SetPoint writes a control point slot addressed the same way as GetPoint.
func (this *BezierSurface) SetPoint(pt vec3.T, rowIndex, continuityIndex int, edge SurfaceEdge) {
	switch edge {
	case North:
		this.points[rowIndex][this.degreeV-continuityIndex] = pt
	case South:
		this.points[rowIndex][continuityIndex] = pt
	case East:
		this.points[this.degreeU-continuityIndex][rowIndex] = pt
	case West:
		this.points[continuityIndex][rowIndex] = pt
	default:
		panic(InvalidEdgeError{edge})
	}
}

// CornerIndex reports the grid indices of the control point at a corner.
func (this *BezierSurface) CornerIndex(corner SurfaceCorner) (int, int) {
	switch corner {
	case Northeast:
		return this.degreeU, this.degreeV
	case Northwest:
		return 0, this.degreeV
	case Southwest:
		return 0, 0
	case Southeast:
		return this.degreeU, 0
	}
	panic(InvalidCornerError{corner})
}

// CornerUV reports the parameter pair at which the surface interpolates the
// control point of a corner.
func (this *BezierSurface) CornerUV(corner SurfaceCorner) UV {
	switch corner {
	case Northeast:
		return UV{1, 1}
	case Northwest:
		return UV{0, 1}
	case Southwest:
		return UV{0, 0}
	case Southeast:
		return UV{1, 0}
	}
	panic(InvalidCornerError{corner})
}

// EnforceG0 copies the boundary row of the other patch's edge onto this
// patch's edge, making the two patches positionally continuous there. The
// parallel degrees of the two edges must match.
func (this *BezierSurface) EnforceG0(other *BezierSurface, edge, otherEdge SurfaceEdge) {
	if this.ParallelDegree(edge) != other.ParallelDegree(otherEdge) {
		panic("parallel degrees must match to join surface edges")
	}

	for row := 0; row <= this.ParallelDegree(edge); row++ {
		this.SetPoint(other.GetPoint(row, 0, otherEdge), row, 0, edge)
	}
}

// EnforceC0 is the exact-continuity alias of EnforceG0.
func (this *BezierSurface) EnforceC0(other *BezierSurface, edge, otherEdge SurfaceEdge) {
	this.EnforceG0(other, edge, otherEdge)
}

// EnforceG0G1 enforces G0 and then rewrites the first interior row so the
// cross-boundary tangents match up to the ratio f (f = 1 gives exact C1):
//
//	P1_b = P0_b + f * (n_a/n_b) * (P0_a - P1_a)
//
// where n_a, n_b are the perpendicular degrees of the two edges.
func (this *BezierSurface) EnforceG0G1(other *BezierSurface, f float64, edge, otherEdge SurfaceEdge) {
	this.EnforceG0G1Rows(other, uniformRows(f, this.ParallelDegree(edge)+1), edge, otherEdge)
}

// EnforceG0G1Rows is EnforceG0G1 with one tangent ratio per boundary row.
func (this *BezierSurface) EnforceG0G1Rows(other *BezierSurface, f []float64, edge, otherEdge SurfaceEdge) {
	if len(f) != this.ParallelDegree(edge)+1 {
		panic("f must supply one tangent ratio per boundary row")
	}

	this.EnforceG0(other, edge, otherEdge)

	ratio := float64(other.PerpendicularDegree(otherEdge)) / float64(this.PerpendicularDegree(edge))
	for row := 0; row <= this.ParallelDegree(edge); row++ {
		p0b := this.GetPoint(row, 0, edge)
		pma := other.GetPoint(row, 0, otherEdge)
		pm1a := other.GetPoint(row, 1, otherEdge)

		step := vec3.Sub(&pma, &pm1a)
		step.Scale(f[row] * ratio)
		this.SetPoint(vec3.Add(&p0b, &step), row, 1, edge)
	}
}

func (this *BezierSurface) EnforceC0C1(other *BezierSurface, edge, otherEdge SurfaceEdge) {
	this.EnforceG0G1(other, 1.0, edge, otherEdge)
}

// EnforceG0G1G2 enforces G0 and G1 and then rewrites the second interior row
// with the second-difference formula, scaled by f^2 and the curvature degree
// ratio (n_a^2 - n_a) / (n_b^2 - n_b).
func (this *BezierSurface) EnforceG0G1G2(other *BezierSurface, f float64, edge, otherEdge SurfaceEdge) {
	this.EnforceG0G1G2Rows(other, uniformRows(f, this.ParallelDegree(edge)+1), edge, otherEdge)
}

// EnforceG0G1G2Rows is EnforceG0G1G2 with one ratio per boundary row.
func (this *BezierSurface) EnforceG0G1G2Rows(other *BezierSurface, f []float64, edge, otherEdge SurfaceEdge) {
	this.EnforceG0G1Rows(other, f, edge, otherEdge)

	pa := float64(other.PerpendicularDegree(otherEdge))
	pb := float64(this.PerpendicularDegree(edge))
	ratio := (pa*pa - pa) / (pb*pb - pb)

	for row := 0; row <= this.ParallelDegree(edge); row++ {
		p0b := this.GetPoint(row, 0, edge)
		p1b := this.GetPoint(row, 1, edge)
		pma := other.GetPoint(row, 0, otherEdge)
		pm1a := other.GetPoint(row, 1, otherEdge)
		pm2a := other.GetPoint(row, 2, otherEdge)

		// (2*P1_b - P0_b) + f^2 * ratio * (P0_a - 2*P1_a + P2_a)
		lead := p1b.Scaled(2)
		lead.Sub(&p0b)

		second := pm1a.Scaled(-2)
		second.Add(&pma)
		second.Add(&pm2a)
		second.Scale(f[row] * f[row] * ratio)

		this.SetPoint(vec3.Add(&lead, &second), row, 2, edge)
	}
}

func (this *BezierSurface) EnforceC0C1C2(other *BezierSurface, edge, otherEdge SurfaceEdge) {
	this.EnforceG0G1G2(other, 1.0, edge, otherEdge)
}
