package astk

import (
	"github.com/Chaitanya-Cho-Ongole/astk/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// RationalBezierSurface is a weighted tensor-product Bezier patch. Its
// NURBS-equivalent knot vectors are the two-valued clamped form, derived on
// demand rather than stored. Every weight must be non-negative, both at
// construction and after any enforcement step.
type RationalBezierSurface struct {
	points  [][]vec3.T
	weights [][]float64
	degreeU int
	degreeV int
}

func NewRationalBezierSurface(points [][]vec3.T, weights [][]float64) (*RationalBezierSurface, error) {
	checkGrid(points)

	if len(weights) != len(points) {
		panic("weight grid must have the same shape as the control point grid")
	}
	for i, row := range weights {
		if len(row) != len(points[i]) {
			panic("weight grid must have the same shape as the control point grid")
		}
		for _, w := range row {
			if w < 0 {
				return nil, NegativeWeightError{w}
			}
		}
	}

	return &RationalBezierSurface{
		points:  clonePoints(points),
		weights: cloneWeights(weights),
		degreeU: len(points) - 1,
		degreeV: len(points[0]) - 1,
	}, nil
}

// NewRationalBezierSurfaceFromArray converts raw coordinate and weight grids
// into a patch.
func NewRationalBezierSurfaceFromArray(points [][][3]float64, weights [][]float64) (*RationalBezierSurface, error) {
	grid := make([][]vec3.T, len(points))
	for i := range grid {
		grid[i] = make([]vec3.T, len(points[i]))
		for j := range grid[i] {
			grid[i][j] = vec3.T(points[i][j])
		}
	}

	return NewRationalBezierSurface(grid, weights)
}

func (this *RationalBezierSurface) DegreeU() int { return this.degreeU }
func (this *RationalBezierSurface) DegreeV() int { return this.degreeV }
func (this *RationalBezierSurface) NumU() int    { return this.degreeU + 1 }
func (this *RationalBezierSurface) NumV() int    { return this.degreeV + 1 }

func (this *RationalBezierSurface) ControlPoints() [][]vec3.T {
	return clonePoints(this.points)
}

func (this *RationalBezierSurface) Weights() [][]float64 {
	return cloneWeights(this.weights)
}

// KnotsU derives the clamped knot vector of the NURBS-equivalent form.
func (this *RationalBezierSurface) KnotsU() []float64 {
	return internal.ClampedKnots(len(this.points))
}

func (this *RationalBezierSurface) KnotsV() []float64 {
	return internal.ClampedKnots(len(this.points[0]))
}

func (this *RationalBezierSurface) Interchange() *Interchange {
	return &Interchange{
		ControlPoints: clonePoints(this.points),
		Weights:       cloneWeights(this.weights),
		KnotsU:        this.KnotsU(),
		KnotsV:        this.KnotsV(),
		DegreeU:       this.degreeU,
		DegreeV:       this.degreeV,
	}
}

// ToNurbs converts the patch to its explicit NURBS form with clamped knots.
func (this *RationalBezierSurface) ToNurbs() *NurbsSurface {
	return NewNurbsSurfaceUnchecked(this.degreeU, this.degreeV,
		this.points, this.weights, this.KnotsU(), this.KnotsV())
}

// Point evaluates the rational surface:
//
//	S(u,v) = sum(P*w*Bu*Bv) / sum(w*Bu*Bv)
//
// The denominator accumulates over the entire control grid. A vanishing
// denominator is not guarded; the division propagates to the caller.
func (this *RationalBezierSurface) Point(uv UV) vec3.T {
	var num vec3.T
	var denom float64
	for i := 0; i <= this.degreeU; i++ {
		bu := internal.Bernstein(this.degreeU, i, uv[0])
		for j := 0; j <= this.degreeV; j++ {
			bv := internal.Bernstein(this.degreeV, j, uv[1])
			wBuBv := bu * bv * this.weights[i][j]
			denom += wBuBv
			scaled := this.points[i][j].Scaled(wBuBv)
			num.Add(&scaled)
		}
	}

	return num.Scaled(1 / denom)
}

func (this *RationalBezierSurface) Sample(nu, nv int) [][]vec3.T {
	return sampleGrid(nu, nv, this.Point)
}

func (this *RationalBezierSurface) IsoCurveU(nu int, v float64) []vec3.T {
	pts := make([]vec3.T, nu)
	for i, u := range linspace(0, 1, nu) {
		pts[i] = this.Point(UV{u, v})
	}

	return pts
}

func (this *RationalBezierSurface) IsoCurveV(nv int, u float64) []vec3.T {
	pts := make([]vec3.T, nv)
	for j, v := range linspace(0, 1, nv) {
		pts[j] = this.Point(UV{u, v})
	}

	return pts
}

func (this *RationalBezierSurface) Edge(edge SurfaceEdge, numPoints int) []vec3.T {
	return edgeSamples(this, edge, numPoints)
}

func (this *RationalBezierSurface) EdgeFirstDerivs(edge SurfaceEdge, numPoints int, perp bool) []vec3.T {
	return edgeDerivSamples(this.DerivU, this.DerivV, edge, numPoints, perp)
}

func (this *RationalBezierSurface) EdgeSecondDerivs(edge SurfaceEdge, numPoints int, perp bool) []vec3.T {
	return edgeDerivSamples(this.SecondDerivU, this.SecondDerivV, edge, numPoints, perp)
}

// rationalSums carries the weighted numerator/denominator sums and their
// basis-difference counterparts in one parametric direction. pd and wd use
// the first-difference identity of degree n-1 bases, pd2 and wd2 the
// second difference of degree n-2 bases; the degree factors are applied by
// the quotient-rule formulas, not here.
type rationalSums struct {
	w, wd, wd2 float64
	p, pd, pd2 vec3.T
}

func (this *RationalBezierSurface) sums(uv UV, useV bool, order int) rationalSums {
	n, m := this.degreeU, this.degreeV

	var s rationalSums
	for i := 0; i <= n; i++ {
		bu := internal.Bernstein(n, i, uv[0])

		var dbu, d2bu float64
		if !useV {
			dbu = internal.Bernstein(n-1, i-1, uv[0]) - internal.Bernstein(n-1, i, uv[0])
			if order >= 2 {
				d2bu = internal.Bernstein(n-2, i-2, uv[0]) -
					2*internal.Bernstein(n-2, i-1, uv[0]) +
					internal.Bernstein(n-2, i, uv[0])
			}
		}

		for j := 0; j <= m; j++ {
			bv := internal.Bernstein(m, j, uv[1])
			w := this.weights[i][j]

			base := w * bu * bv
			s.w += base
			scaled := this.points[i][j].Scaled(base)
			s.p.Add(&scaled)

			var diff, diff2 float64
			if useV {
				dbv := internal.Bernstein(m-1, j-1, uv[1]) - internal.Bernstein(m-1, j, uv[1])
				diff = w * bu * dbv
				if order >= 2 {
					d2bv := internal.Bernstein(m-2, j-2, uv[1]) -
						2*internal.Bernstein(m-2, j-1, uv[1]) +
						internal.Bernstein(m-2, j, uv[1])
					diff2 = w * bu * d2bv
				}
			} else {
				diff = w * dbu * bv
				diff2 = w * d2bu * bv
			}

			s.wd += diff
			scaled = this.points[i][j].Scaled(diff)
			s.pd.Add(&scaled)

			if order >= 2 {
				s.wd2 += diff2
				scaled = this.points[i][j].Scaled(diff2)
				s.pd2.Add(&scaled)
			}
		}
	}

	return s
}

// DerivU evaluates dS/du by the quotient rule over the weighted sums:
//
//	dS/du = (A - B) / W,  A = n*W_sum*dN, B = n*N*dW_sum, W = W_sum^2
func (this *RationalBezierSurface) DerivU(uv UV) vec3.T {
	n := float64(this.degreeU)
	s := this.sums(uv, false, 1)

	a := s.pd.Scaled(n * s.w)
	b := s.p.Scaled(n * s.wd)
	a.Sub(&b)

	return a.Scaled(1 / (s.w * s.w))
}

// DerivV evaluates dS/dv.
func (this *RationalBezierSurface) DerivV(uv UV) vec3.T {
	m := float64(this.degreeV)
	s := this.sums(uv, true, 1)

	a := s.pd.Scaled(m * s.w)
	b := s.p.Scaled(m * s.wd)
	a.Sub(&b)

	return a.Scaled(1 / (s.w * s.w))
}

// SecondDerivU differentiates the quotient once more:
//
//	d2S/du2 = (W*(dA - dB) - dW*(A - B)) / W^2
//
// with dA = n^2*dW_sum*dN + W_sum*d2N, dB = n^2*dN*dW_sum + N*d2W_sum and
// dW = 2*n*W_sum*dW_sum. Continuity enforcement depends on these exact
// combinations, so they are kept term for term.
func (this *RationalBezierSurface) SecondDerivU(uv UV) vec3.T {
	n := float64(this.degreeU)
	s := this.sums(uv, false, 2)

	return secondQuotient(n, s)
}

// SecondDerivV evaluates d2S/dv2.
func (this *RationalBezierSurface) SecondDerivV(uv UV) vec3.T {
	m := float64(this.degreeV)
	s := this.sums(uv, true, 2)

	return secondQuotient(m, s)
}

func secondQuotient(n float64, s rationalSums) vec3.T {
	a := s.pd.Scaled(n * s.w)
	b := s.p.Scaled(n * s.wd)
	ww := s.w * s.w

	dA := s.pd.Scaled(n * n * s.wd)
	t := s.pd2.Scaled(s.w)
	dA.Add(&t)

	dB := s.pd.Scaled(n * n * s.wd)
	t = s.p.Scaled(s.wd2)
	dB.Add(&t)

	dW := 2 * n * s.w * s.wd

	diff := dA
	diff.Sub(&dB)
	diff.Scale(ww)

	ab := a
	ab.Sub(&b)
	ab.Scale(dW)

	diff.Sub(&ab)
	return diff.Scaled(1 / (ww * ww))
}

func (this *RationalBezierSurface) ParallelDegree(edge SurfaceEdge) int {
	switch edge {
	case North, South:
		return this.degreeU
	case East, West:
		return this.degreeV
	}
	panic(InvalidEdgeError{edge})
}

func (this *RationalBezierSurface) PerpendicularDegree(edge SurfaceEdge) int {
	switch edge {
	case North, South:
		return this.degreeV
	case East, West:
		return this.degreeU
	}
	panic(InvalidEdgeError{edge})
}

// GetPoint addresses a control point the same way as on BezierSurface: by
// row position along the edge and continuity depth inward from it.
func (this *RationalBezierSurface) GetPoint(rowIndex, continuityIndex int, edge SurfaceEdge) vec3.T {
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

func (this *RationalBezierSurface) SetPoint(pt vec3.T, rowIndex, continuityIndex int, edge SurfaceEdge) {
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

func (this *RationalBezierSurface) GetWeight(rowIndex, continuityIndex int, edge SurfaceEdge) float64 {
	switch edge {
	case North:
		return this.weights[rowIndex][this.degreeV-continuityIndex]
	case South:
		return this.weights[rowIndex][continuityIndex]
	case East:
		return this.weights[this.degreeU-continuityIndex][rowIndex]
	case West:
		return this.weights[continuityIndex][rowIndex]
	}
	panic(InvalidEdgeError{edge})
}

func (this *RationalBezierSurface) SetWeight(w float64, rowIndex, continuityIndex int, edge SurfaceEdge) {
	switch edge {
	case North:
		this.weights[rowIndex][this.degreeV-continuityIndex] = w
	case South:
		this.weights[rowIndex][continuityIndex] = w
	case East:
		this.weights[this.degreeU-continuityIndex][rowIndex] = w
	case West:
		this.weights[continuityIndex][rowIndex] = w
	default:
		panic(InvalidEdgeError{edge})
	}
}

func (this *RationalBezierSurface) CornerIndex(corner SurfaceCorner) (int, int) {
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

func (this *RationalBezierSurface) CornerUV(corner SurfaceCorner) UV {
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

// EnforceG0 copies the boundary points and weights of the other patch's
// edge onto this patch's edge. The parallel degrees must match.
func (this *RationalBezierSurface) EnforceG0(other *RationalBezierSurface, edge, otherEdge SurfaceEdge) {
	if this.ParallelDegree(edge) != other.ParallelDegree(otherEdge) {
		panic("parallel degrees must match to join surface edges")
	}

	for row := 0; row <= this.ParallelDegree(edge); row++ {
		this.SetPoint(other.GetPoint(row, 0, otherEdge), row, 0, edge)
		this.SetWeight(other.GetWeight(row, 0, otherEdge), row, 0, edge)
	}
}

func (this *RationalBezierSurface) EnforceC0(other *RationalBezierSurface, edge, otherEdge SurfaceEdge) {
	this.EnforceG0(other, edge, otherEdge)
}

// EnforceG0G1 enforces G0 followed by tangent continuity with a uniform
// ratio f across all rows (f = 1 gives exact C1).
func (this *RationalBezierSurface) EnforceG0G1(other *RationalBezierSurface, f float64, edge, otherEdge SurfaceEdge) error {
	return this.EnforceG0G1Rows(other, uniformRows(f, this.ParallelDegree(edge)+1), edge, otherEdge)
}

// EnforceG0G1Rows enforces G0 followed by tangent continuity with one ratio
// per boundary row. Each row solves the weight first, then recovers the
// point from it:
//
//	w1_b = w0_b + f*(n_a/n_b)*(w0_a - w1_a)
//	P1_b = (w0_b/w1_b)*P0_b + f*(n_a/n_b)/w1_b*(w0_a*P0_a - w1_a*P1_a)
//
// A computed negative weight aborts with NegativeWeightError; rows already
// processed keep their new values.
func (this *RationalBezierSurface) EnforceG0G1Rows(other *RationalBezierSurface, f []float64, edge, otherEdge SurfaceEdge) error {
	if len(f) != this.ParallelDegree(edge)+1 {
		panic("f must supply one tangent ratio per boundary row")
	}

	this.EnforceG0(other, edge, otherEdge)

	ratio := float64(other.PerpendicularDegree(otherEdge)) / float64(this.PerpendicularDegree(edge))
	for row := 0; row <= this.ParallelDegree(edge); row++ {
		w0b := this.GetWeight(row, 0, edge)
		wma := other.GetWeight(row, 0, otherEdge)
		wm1a := other.GetWeight(row, 1, otherEdge)

		w1b := w0b + f[row]*ratio*(wma-wm1a)
		if w1b < 0 {
			return NegativeWeightError{w1b}
		}
		this.SetWeight(w1b, row, 1, edge)

		p0b := this.GetPoint(row, 0, edge)
		pma := other.GetPoint(row, 0, otherEdge)
		pm1a := other.GetPoint(row, 1, otherEdge)

		p1b := p0b.Scaled(w0b / w1b)
		step := pma.Scaled(wma)
		t := pm1a.Scaled(wm1a)
		step.Sub(&t)
		step.Scale(f[row] * ratio / w1b)
		p1b.Add(&step)

		this.SetPoint(p1b, row, 1, edge)
	}

	return nil
}

func (this *RationalBezierSurface) EnforceC0C1(other *RationalBezierSurface, edge, otherEdge SurfaceEdge) error {
	return this.EnforceG0G1(other, 1.0, edge, otherEdge)
}

// EnforceG0G1G2 enforces G0 and G1 followed by curvature continuity with a
// uniform ratio f.
func (this *RationalBezierSurface) EnforceG0G1G2(other *RationalBezierSurface, f float64, edge, otherEdge SurfaceEdge) error {
	return this.EnforceG0G1G2Rows(other, uniformRows(f, this.ParallelDegree(edge)+1), edge, otherEdge)
}

// EnforceG0G1G2Rows enforces G0 and G1 followed by curvature continuity,
// one ratio per boundary row. The second interior row is set by the
// second-difference formula scaled by f^2 and (n_a^2-n_a)/(n_b^2-n_b),
// again solving the weight before the point. A computed negative weight
// aborts with NegativeWeightError, leaving earlier rows mutated.
func (this *RationalBezierSurface) EnforceG0G1G2Rows(other *RationalBezierSurface, f []float64, edge, otherEdge SurfaceEdge) error {
	if err := this.EnforceG0G1Rows(other, f, edge, otherEdge); err != nil {
		return err
	}

	pa := float64(other.PerpendicularDegree(otherEdge))
	pb := float64(this.PerpendicularDegree(edge))
	ratio := (pa*pa - pa) / (pb*pb - pb)

	for row := 0; row <= this.ParallelDegree(edge); row++ {
		w0b := this.GetWeight(row, 0, edge)
		w1b := this.GetWeight(row, 1, edge)
		wma := other.GetWeight(row, 0, otherEdge)
		wm1a := other.GetWeight(row, 1, otherEdge)
		wm2a := other.GetWeight(row, 2, otherEdge)

		ff := f[row] * f[row]

		w2b := 2*w1b - w0b + ff*ratio*(wma-2*wm1a+wm2a)
		if w2b < 0 {
			return NegativeWeightError{w2b}
		}
		this.SetWeight(w2b, row, 2, edge)

		p0b := this.GetPoint(row, 0, edge)
		p1b := this.GetPoint(row, 1, edge)
		pma := other.GetPoint(row, 0, otherEdge)
		pm1a := other.GetPoint(row, 1, otherEdge)
		pm2a := other.GetPoint(row, 2, otherEdge)

		// 2*(w1_b/w2_b)*P1_b - (w0_b/w2_b)*P0_b
		p2b := p1b.Scaled(2 * w1b / w2b)
		t := p0b.Scaled(w0b / w2b)
		p2b.Sub(&t)

		// + f^2*ratio/w2_b*(w0_a*P0_a - 2*w1_a*P1_a + w2_a*P2_a)
		comb := pma.Scaled(wma)
		t = pm1a.Scaled(2 * wm1a)
		comb.Sub(&t)
		t = pm2a.Scaled(wm2a)
		comb.Add(&t)
		comb.Scale(ff * ratio / w2b)
		p2b.Add(&comb)

		this.SetPoint(p2b, row, 2, edge)
	}

	return nil
}

func (this *RationalBezierSurface) EnforceC0C1C2(other *RationalBezierSurface, edge, otherEdge SurfaceEdge) error {
	return this.EnforceG0G1G2(other, 1.0, edge, otherEdge)
}

func uniformRows(f float64, numRows int) []float64 {
	rows := make([]float64, numRows)
	for i := range rows {
		rows[i] = f
	}

	return rows
}
