// Package make constructs surfaces from higher-level geometric inputs.
package make

import (
	"math"

	astk "github.com/Chaitanya-Cho-Ongole/astk"
	"github.com/Chaitanya-Cho-Ongole/astk/internal"
	"github.com/Chaitanya-Cho-Ongole/astk/units"
	"github.com/ungerik/go3d/float64/vec3"
)

// Profile is a curve supplying the control points swept by a revolution.
type Profile interface {
	ControlPoints() []vec3.T
}

// RevolvedRationalBezier sweeps the profile control points about the axis
// through center, from the start angle to the end angle, producing a
// rational patch that traces the circular arcs exactly. The u direction
// follows the profile and the v direction the sweep.
//
// Each quarter turn contributes one quadratic arc segment: the grid holds
// an odd number of angular stations, the even stations on the circle with
// weight 1 and the odd stations pushed outward to the arc midpoint tangent
// intersection with weight sin of the half-chord angle. A zero sweep angle
// is rejected with InvalidGeometryError.
func RevolvedRationalBezier(profile Profile, center, axis *vec3.T, start, end units.Angle) (*astk.RationalBezierSurface, error) {
	points, weights, err := revolvedGrid(profile, center, axis, start, end)
	if err != nil {
		return nil, err
	}

	return astk.NewRationalBezierSurface(points, weights)
}

// RevolvedNurbs builds the same revolved grid as RevolvedRationalBezier and
// pairs it with the piecewise-quadratic knot vector that keeps each quarter
// turn an exact circular arc: degree 2 in the sweep direction, with a double
// interior knot between consecutive arc segments.
func RevolvedNurbs(profile Profile, center, axis *vec3.T, start, end units.Angle) (*astk.NurbsSurface, error) {
	points, weights, err := revolvedGrid(profile, center, axis, start, end)
	if err != nil {
		return nil, err
	}

	numProfile := len(points)
	nAngles := len(points[0])

	knotsU := internal.ClampedKnots(numProfile)
	knotsV := segmentedArcKnots(nAngles)

	return astk.NewNurbsSurface(numProfile-1, 2, points, weights, knotsU, knotsV)
}

func revolvedGrid(profile Profile, center, axis *vec3.T, start, end units.Angle) ([][]vec3.T, [][]float64, error) {
	diff := math.Abs(end.Rad() - start.Rad())
	if diff == 0 {
		return nil, nil, astk.InvalidGeometryError{Reason: "revolution sweep angle cannot be zero"}
	}

	// one quadratic segment per started quarter turn, two stations each
	// plus the shared endpoints
	var nAngles int
	if math.Mod(diff, math.Pi/2) == 0 {
		nAngles = 2*int(diff/(math.Pi/2)) + 1
	} else {
		nAngles = 2*int(diff/(math.Pi/2)) + 3
	}

	angles := anglesBetween(start.Rad(), end.Rad(), nAngles)

	dir := axis.Normalized()
	ray := internal.Ray{Origin: *center, Dir: dir}

	profilePts := profile.ControlPoints()

	points := make([][]vec3.T, len(profilePts))
	weights := make([][]float64, len(profilePts))

	for pi, p := range profilePts {
		points[pi] = make([]vec3.T, nAngles)
		weights[pi] = make([]float64, nAngles)

		proj := ray.ClosestPoint(p)
		radius := vec3.Distance(&proj, &p)

		if radius == 0 {
			// on-axis profile points degenerate to a fixed row
			for ai := range points[pi] {
				points[pi][ai] = p
				weights[pi][ai] = 1
			}
			continue
		}

		for ai, angle := range angles {
			pt := ray.RotatedAbout(p, angle)

			if ai%2 == 1 {
				// midpoint station: intersection of the neighboring
				// tangents, weighted by sin of the half-chord angle
				sha := math.Sin(math.Pi/2 - 0.5*(angles[ai+1]-angles[ai-1]))

				outward := vec3.Sub(&pt, &proj)
				outward.Normalize()
				outward.Scale(radius / sha)

				points[pi][ai] = vec3.Add(&proj, &outward)
				weights[pi][ai] = sha
			} else {
				points[pi][ai] = pt
				weights[pi][ai] = 1
			}
		}
	}

	return points, weights, nil
}

func anglesBetween(lo, hi float64, numAngles int) []float64 {
	angles := make([]float64, numAngles)
	step := (hi - lo) / float64(numAngles-1)
	for i := range angles {
		angles[i] = lo + float64(i)*step
	}
	angles[numAngles-1] = hi

	return angles
}

// segmentedArcKnots refines the clamped quadratic knot vector [0 0 0 1 1 1]
// with a double knot between consecutive arc segments, one pair per interior
// station beyond the first segment.
func segmentedArcKnots(nAngles int) internal.KnotVec {
	knots := internal.KnotVec{0, 0, 0, 1, 1, 1}

	nInsert := nAngles - 3
	if nInsert <= 0 {
		return knots
	}

	delta := 1 / (float64(nInsert/2) + 1)
	for idx := 0; idx < nInsert; idx++ {
		val := knots[2+idx]
		if idx%2 == 0 {
			val += delta
		}

		pos := 3 + idx
		knots = append(knots, 0)
		copy(knots[pos+1:], knots[pos:])
		knots[pos] = val
	}

	return knots
}
