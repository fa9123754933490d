package internal

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Ray is an axis line through Origin with unit direction Dir.
type Ray struct {
	Origin, Dir vec3.T
}

func NewRay(p0, p1 vec3.T) Ray {
	dir := vec3.Sub(&p1, &p0)
	dir.Normalize()

	return Ray{p0, dir}
}

// Find the closest point on the ray
//
// **params**
// + point to project
//
// **returns**
// + the projection of the point onto the ray
func (this Ray) ClosestPoint(pt vec3.T) vec3.T {
	o2pt := vec3.Sub(&pt, &this.Origin)
	do2ptr := vec3.Dot(&o2pt, &this.Dir)
	dirScaled := this.Dir.Scaled(do2ptr)
	proj := vec3.Add(&this.Origin, &dirScaled)

	return proj
}

// Find the distance of a point to the ray
//
// **params**
// + point to project
//
// **returns**
// + the distance
func (this Ray) DistToPoint(pt vec3.T) float64 {
	d := this.ClosestPoint(pt)

	return vec3.Distance(&d, &pt)
}

// RotatedAbout rotates a point about the ray by the given angle in radians,
// using the Rodrigues rotation formula.
func (this Ray) RotatedAbout(pt vec3.T, angle float64) vec3.T {
	v := vec3.Sub(&pt, &this.Origin)
	k := this.Dir

	cos, sin := math.Cos(angle), math.Sin(angle)

	kCrossV := vec3.Cross(&k, &v)
	kDotV := vec3.Dot(&k, &v)

	rotated := v.Scaled(cos)
	crossCompon := kCrossV.Scaled(sin)
	axisCompon := k.Scaled(kDotV * (1 - cos))

	rotated.Add(&crossCompon)
	rotated.Add(&axisCompon)

	return vec3.Add(&this.Origin, &rotated)
}
