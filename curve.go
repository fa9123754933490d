package astk

import (
	"github.com/Chaitanya-Cho-Ongole/astk/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// BezierCurve is a polynomial Bezier curve. It serves as a revolution
// profile and as the carrier for extracted patch boundary rows.
type BezierCurve struct {
	points []vec3.T
}

func NewBezierCurve(points []vec3.T) *BezierCurve {
	if len(points) == 0 {
		panic("curve control point array cannot be empty")
	}

	return &BezierCurve{append([]vec3.T(nil), points...)}
}

func (this *BezierCurve) Degree() int {
	return len(this.points) - 1
}

func (this *BezierCurve) ControlPoints() []vec3.T {
	return append([]vec3.T(nil), this.points...)
}

// Point evaluates the curve at parameter t in [0, 1].
func (this *BezierCurve) Point(t float64) vec3.T {
	n := this.Degree()

	var pt vec3.T
	for i, cp := range this.points {
		scaled := cp.Scaled(internal.Bernstein(n, i, t))
		pt.Add(&scaled)
	}

	return pt
}

// DerivAt evaluates the first derivative of the curve at t using the
// degree-lowering difference identity.
func (this *BezierCurve) DerivAt(t float64) vec3.T {
	n := this.Degree()

	var deriv vec3.T
	for i, cp := range this.points {
		db := float64(n) * (internal.Bernstein(n-1, i-1, t) - internal.Bernstein(n-1, i, t))
		scaled := cp.Scaled(db)
		deriv.Add(&scaled)
	}

	return deriv
}
