package astk

import (
	"github.com/Chaitanya-Cho-Ongole/astk/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// NurbsSurface is a non-uniform rational B-spline patch. The knot vectors
// are clamped and the non-degenerate spans of each are precomputed at
// construction, so evaluation never rescans for them.
type NurbsSurface struct {
	degreeU, degreeV int
	points           [][]vec3.T
	weights          [][]float64
	knotsU, knotsV   internal.KnotVec
	spansU, spansV   []internal.KnotSpan
}

// NewNurbsSurface validates the control grid, weight grid and knot vectors
// before constructing the surface. Shape violations surface as
// InvalidGeometryError, a negative weight as NegativeWeightError.
func NewNurbsSurface(degreeU, degreeV int, points [][]vec3.T, weights [][]float64, knotsU, knotsV []float64) (*NurbsSurface, error) {
	this := NewNurbsSurfaceUnchecked(degreeU, degreeV, points, weights, knotsU, knotsV)
	if err := this.check(); err != nil {
		return nil, err
	}

	return this, nil
}

// NewNurbsSurfaceUnchecked constructs the surface without validation, for
// callers that guarantee consistency themselves.
func NewNurbsSurfaceUnchecked(degreeU, degreeV int, points [][]vec3.T, weights [][]float64, knotsU, knotsV []float64) *NurbsSurface {
	ku := internal.KnotVec(knotsU).Clone()
	kv := internal.KnotVec(knotsV).Clone()

	return &NurbsSurface{
		degreeU: degreeU,
		degreeV: degreeV,
		points:  clonePoints(points),
		weights: cloneWeights(weights),
		knotsU:  ku,
		knotsV:  kv,
		spansU:  ku.NonDegenerateSpans(),
		spansV:  kv.NonDegenerateSpans(),
	}
}

func (this *NurbsSurface) check() error {
	if len(this.points) == 0 || len(this.points[0]) == 0 {
		return InvalidGeometryError{"control point grid must have at least one row and one column"}
	}
	for _, row := range this.points {
		if len(row) != len(this.points[0]) {
			return InvalidGeometryError{"control point grid must be rectangular"}
		}
	}

	if len(this.weights) != len(this.points) {
		return InvalidGeometryError{"weight grid must have the same shape as the control point grid"}
	}
	for i, row := range this.weights {
		if len(row) != len(this.points[i]) {
			return InvalidGeometryError{"weight grid must have the same shape as the control point grid"}
		}
		for _, w := range row {
			if w < 0 {
				return NegativeWeightError{w}
			}
		}
	}

	if len(this.knotsU) != len(this.points)+this.degreeU+1 {
		return InvalidGeometryError{"u knot vector length must equal the number of u control points plus degree plus one"}
	}
	if len(this.knotsV) != len(this.points[0])+this.degreeV+1 {
		return InvalidGeometryError{"v knot vector length must equal the number of v control points plus degree plus one"}
	}
	if !this.knotsU.IsValid(this.degreeU) {
		return InvalidGeometryError{"u knot vector must be clamped and non-decreasing"}
	}
	if !this.knotsV.IsValid(this.degreeV) {
		return InvalidGeometryError{"v knot vector must be clamped and non-decreasing"}
	}

	return nil
}

func (this *NurbsSurface) DegreeU() int { return this.degreeU }
func (this *NurbsSurface) DegreeV() int { return this.degreeV }
func (this *NurbsSurface) NumU() int    { return len(this.points) }
func (this *NurbsSurface) NumV() int    { return len(this.points[0]) }

func (this *NurbsSurface) ControlPoints() [][]vec3.T {
	return clonePoints(this.points)
}

func (this *NurbsSurface) Weights() [][]float64 {
	return cloneWeights(this.weights)
}

func (this *NurbsSurface) KnotsU() []float64 {
	return this.knotsU.Clone()
}

func (this *NurbsSurface) KnotsV() []float64 {
	return this.knotsV.Clone()
}

func (this *NurbsSurface) Interchange() *Interchange {
	return &Interchange{
		ControlPoints: clonePoints(this.points),
		Weights:       cloneWeights(this.weights),
		KnotsU:        this.knotsU.Clone(),
		KnotsV:        this.knotsV.Clone(),
		DegreeU:       this.degreeU,
		DegreeV:       this.degreeV,
	}
}

// DomainU returns the parameter range covered by the u knot vector.
func (this *NurbsSurface) DomainU() (float64, float64) {
	return this.knotsU[0], this.knotsU[len(this.knotsU)-1]
}

func (this *NurbsSurface) DomainV() (float64, float64) {
	return this.knotsV[0], this.knotsV[len(this.knotsV)-1]
}

// Point evaluates the surface by the recursive Cox-de Boor definition,
// summing every basis product over the whole grid:
//
//	S(u,v) = sum(P*w*Nu*Nv) / sum(w*Nu*Nv)
//
// Outside the knot domain every basis function vanishes and the resulting
// division by zero propagates to the caller.
func (this *NurbsSurface) Point(uv UV) vec3.T {
	var num vec3.T
	var denom float64
	for i := range this.points {
		nu := internal.CoxDeBoor(uv[0], i, this.degreeU, this.knotsU, this.spansU)
		if nu == 0 {
			continue
		}
		for j := range this.points[i] {
			nv := internal.CoxDeBoor(uv[1], j, this.degreeV, this.knotsV, this.spansV)
			wNN := nu * nv * this.weights[i][j]
			denom += wNN
			scaled := this.points[i][j].Scaled(wNN)
			num.Add(&scaled)
		}
	}

	return num.Scaled(1 / denom)
}

// Sample evaluates an nu x nv grid of surface points over the knot domains.
func (this *NurbsSurface) Sample(nu, nv int) [][]vec3.T {
	uLo, uHi := this.DomainU()
	vLo, vHi := this.DomainV()
	us := linspace(uLo, uHi, nu)
	vs := linspace(vLo, vHi, nv)

	grid := make([][]vec3.T, nu)
	for i := range grid {
		grid[i] = make([]vec3.T, nv)
		for j := range grid[i] {
			grid[i][j] = this.Point(UV{us[i], vs[j]})
		}
	}

	return grid
}

// Derivatives computes the derivatives of the surface at the given parameter
// up to numDerivs in each direction
// (corresponds to algorithm 3.6 followed by equation 4.20 from The NURBS
// book, Piegl & Tiller 2nd edition)
//
// **params**
// + the surface parameter
// + the number of derivatives to compute
//
// **returns**
// + 2d array of derivative vectors indexed by (u order, v order); entry
// [0][0] is the surface point, [1][0] the first u partial, [0][1] the first
// v partial, and so on
func (this *NurbsSurface) Derivatives(uv UV, numDerivs int) [][]vec3.T {
	ders := this.homoDerivatives(uv, numDerivs)

	skl := make([][]vec3.T, numDerivs+1)
	for k := 0; k <= numDerivs; k++ {
		skl[k] = make([]vec3.T, numDerivs+1)

		for l := 0; l <= numDerivs-k; l++ {
			v := ders[k][l].Vec3

			for j := 1; j <= l; j++ {
				t := skl[k][l-j].Scaled(internal.Binomial(l, j) * ders[0][j].W)
				v.Sub(&t)
			}

			for i := 1; i <= k; i++ {
				t := skl[k-i][l].Scaled(internal.Binomial(k, i) * ders[i][0].W)
				v.Sub(&t)

				var v2 vec3.T
				for j := 1; j <= l; j++ {
					t := skl[k-i][l-j].Scaled(internal.Binomial(l, j) * ders[i][j].W)
					v2.Add(&t)
				}

				t = v2.Scaled(internal.Binomial(k, i))
				v.Sub(&t)
			}

			skl[k][l] = v.Scaled(1 / ders[0][0].W)
		}
	}

	return skl
}

// homoDerivatives computes the derivatives of the homogeneous form of the
// surface at the given parameter, via the banded basis derivative tables of
// the two directions.
func (this *NurbsSurface) homoDerivatives(uv UV, numDerivs int) [][]internal.HomoPoint {
	du := min(numDerivs, this.degreeU)
	dv := min(numDerivs, this.degreeV)

	n := len(this.knotsU) - this.degreeU - 2
	m := len(this.knotsV) - this.degreeV - 2

	knotSpanU := this.knotsU.SpanGivenN(n, this.degreeU, uv[0])
	knotSpanV := this.knotsV.SpanGivenN(m, this.degreeV, uv[1])

	udersBasis := internal.DerivativeBasisFunctions(knotSpanU, uv[0], this.degreeU, du, this.knotsU)
	vdersBasis := internal.DerivativeBasisFunctions(knotSpanV, uv[1], this.degreeV, dv, this.knotsV)

	homoPts := internal.Homogenize2d(this.points, this.weights)

	skl := make([][]internal.HomoPoint, numDerivs+1)
	for i := range skl {
		skl[i] = make([]internal.HomoPoint, numDerivs+1)
	}

	temp := make([]internal.HomoPoint, this.degreeV+1)

	for k := 0; k <= du; k++ {
		for s := 0; s <= this.degreeV; s++ {
			temp[s] = internal.HomoPoint{}

			for r := 0; r <= this.degreeU; r++ {
				pt := homoPts[knotSpanU-this.degreeU+r][knotSpanV-this.degreeV+s]
				pt.Scale(udersBasis[k][r])
				temp[s].Add(&pt)
			}
		}

		dd := min(numDerivs-k, dv)
		for l := 0; l <= dd; l++ {
			for s := 0; s <= this.degreeV; s++ {
				pt := temp[s]
				pt.Scale(vdersBasis[l][s])
				skl[k][l].Add(&pt)
			}
		}
	}

	return skl
}

func (this *NurbsSurface) DerivU(uv UV) vec3.T {
	return this.Derivatives(uv, 1)[1][0]
}

func (this *NurbsSurface) DerivV(uv UV) vec3.T {
	return this.Derivatives(uv, 1)[0][1]
}

func (this *NurbsSurface) SecondDerivU(uv UV) vec3.T {
	return this.Derivatives(uv, 2)[2][0]
}

func (this *NurbsSurface) SecondDerivV(uv UV) vec3.T {
	return this.Derivatives(uv, 2)[0][2]
}

// Edge samples surface points along a boundary. The knot vectors built by
// this package span [0, 1], which is what the sampler traverses.
func (this *NurbsSurface) Edge(edge SurfaceEdge, numPoints int) []vec3.T {
	return edgeSamples(this, edge, numPoints)
}

func (this *NurbsSurface) EdgeFirstDerivs(edge SurfaceEdge, numPoints int, perp bool) []vec3.T {
	return edgeDerivSamples(this.DerivU, this.DerivV, edge, numPoints, perp)
}

func (this *NurbsSurface) EdgeSecondDerivs(edge SurfaceEdge, numPoints int, perp bool) []vec3.T {
	return edgeDerivSamples(this.SecondDerivU, this.SecondDerivV, edge, numPoints, perp)
}
