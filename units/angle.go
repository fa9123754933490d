// Package units carries the dimensioned scalar types of the kernel.
package units

import "math"

// Angle is a planar angle, stored in radians.
type Angle float64

func Radians(r float64) Angle {
	return Angle(r)
}

func Degrees(d float64) Angle {
	return Angle(d * math.Pi / 180)
}

func (this Angle) Rad() float64 {
	return float64(this)
}

func (this Angle) Deg() float64 {
	return float64(this) * 180 / math.Pi
}
