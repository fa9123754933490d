// Package iges serializes surfaces to the IGES 5.3 interchange format.
package iges

import (
	"strconv"
	"strings"

	astk "github.com/Chaitanya-Cho-Ongole/astk"
	"github.com/Chaitanya-Cho-Ongole/astk/internal"
)

// Entity is one IGES entity: a type number, a form number and the fields of
// its parameter data record, the leading field being the type number again.
type Entity interface {
	TypeNumber() int
	FormNumber() int
	ParameterData() []string
}

// RationalBSplineSurface is entity type 128, built from the interchange
// form of any surface in this kernel. Missing weights are taken as all 1
// and missing knot vectors as the clamped Bezier-equivalent ones, so plain
// polynomial patches serialize without further conversion.
type RationalBSplineSurface struct {
	surf *astk.Interchange
}

func NewRationalBSplineSurface(surf *astk.Interchange) *RationalBSplineSurface {
	return &RationalBSplineSurface{surf}
}

func (this *RationalBSplineSurface) TypeNumber() int { return 128 }
func (this *RationalBSplineSurface) FormNumber() int { return 0 }

// ParameterData lays the surface out in the order entity 128 requires:
// counts and property flags, u knots, v knots, weights, control points,
// then the parameter ranges. Weight and point sequences run with the u
// index fastest.
func (this *RationalBSplineSurface) ParameterData() []string {
	numU := len(this.surf.ControlPoints)
	numV := len(this.surf.ControlPoints[0])

	weights := this.surf.Weights
	if weights == nil {
		weights = make([][]float64, numU)
		for i := range weights {
			weights[i] = make([]float64, numV)
			for j := range weights[i] {
				weights[i][j] = 1
			}
		}
	}

	knotsU := this.surf.KnotsU
	if len(knotsU) == 0 {
		knotsU = internal.ClampedKnots(numU)
	}
	knotsV := this.surf.KnotsV
	if len(knotsV) == 0 {
		knotsV = internal.ClampedKnots(numV)
	}

	polynomial := 1
	for i := range weights {
		for j := range weights[i] {
			if weights[i][j] != weights[0][0] {
				polynomial = 0
			}
		}
	}

	fields := []string{
		strconv.Itoa(this.TypeNumber()),
		strconv.Itoa(numU - 1),
		strconv.Itoa(numV - 1),
		strconv.Itoa(this.surf.DegreeU),
		strconv.Itoa(this.surf.DegreeV),
		"0", // open in u
		"0", // open in v
		strconv.Itoa(polynomial),
		"0", // non-periodic in u
		"0", // non-periodic in v
	}

	for _, k := range knotsU {
		fields = append(fields, formatReal(k))
	}
	for _, k := range knotsV {
		fields = append(fields, formatReal(k))
	}

	for j := 0; j < numV; j++ {
		for i := 0; i < numU; i++ {
			fields = append(fields, formatReal(weights[i][j]))
		}
	}
	for j := 0; j < numV; j++ {
		for i := 0; i < numU; i++ {
			pt := this.surf.ControlPoints[i][j]
			fields = append(fields, formatReal(pt[0]), formatReal(pt[1]), formatReal(pt[2]))
		}
	}

	fields = append(fields,
		formatReal(knotsU[0]), formatReal(knotsU[len(knotsU)-1]),
		formatReal(knotsV[0]), formatReal(knotsV[len(knotsV)-1]))

	return fields
}

// formatReal renders a float with the decimal point IGES requires on every
// real-typed field.
func formatReal(v float64) string {
	s := strconv.FormatFloat(v, 'G', 10, 64)
	if !strings.ContainsAny(s, ".E") {
		s += "."
	}

	return s
}
