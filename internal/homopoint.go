package internal

import "github.com/ungerik/go3d/float64/vec3"

// HomoPoint is a control point in homogeneous space: (w*p, w).
type HomoPoint struct {
	Vec3 vec3.T
	W    float64
}

func (this *HomoPoint) Add(pt *HomoPoint) *HomoPoint {
	this.Vec3.Add(&pt.Vec3)
	this.W += pt.W

	return this
}

func (this *HomoPoint) Scale(scale float64) *HomoPoint {
	this.Vec3.Scale(scale)
	this.W *= scale

	return this
}

func (this *HomoPoint) Dehomogenized() vec3.T {
	return this.Vec3.Scaled(1 / this.W)
}

func Homogenized(pt vec3.T, w float64) HomoPoint {
	return HomoPoint{pt.Scaled(w), w}
}

// Homogenize2d transforms a grid of control points and the matching grid of
// weights into their homogeneous equivalents (wi*pi, wi).
func Homogenize2d(pts [][]vec3.T, weights [][]float64) [][]HomoPoint {
	homoPts := make([][]HomoPoint, len(pts))
	for i := range homoPts {
		homoPts[i] = make([]HomoPoint, len(pts[i]))
		for j := range homoPts[i] {
			homoPts[i][j] = Homogenized(pts[i][j], weights[i][j])
		}
	}

	return homoPts
}
