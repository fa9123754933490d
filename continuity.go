package astk

import (
	"math"

	"github.com/Chaitanya-Cho-Ongole/astk/internal"
	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"
)

// EdgeSampler is the sampling contract the continuity verifier checks
// against. All patch variants in this package satisfy it.
type EdgeSampler interface {
	Edge(edge SurfaceEdge, numPoints int) []vec3.T
	EdgeFirstDerivs(edge SurfaceEdge, numPoints int, perp bool) []vec3.T
	EdgeSecondDerivs(edge SurfaceEdge, numPoints int, perp bool) []vec3.T
}

const verifyPointTol = 1e-9

// VerifyG0 samples both edges at numPoints parameters and checks that the
// two point sequences coincide. The caller is responsible for supplying
// edges whose parameterizations run the same way.
func VerifyG0(a, b EdgeSampler, edgeA, edgeB SurfaceEdge, numPoints int) error {
	ptsA := a.Edge(edgeA, numPoints)
	ptsB := b.Edge(edgeB, numPoints)

	for k := range ptsA {
		diff := vec3.Sub(&ptsA[k], &ptsB[k])
		if diff.Length() > verifyPointTol {
			return errors.Errorf("edges %v and %v diverge at sample %d by %g",
				edgeA, edgeB, k, diff.Length())
		}
	}

	return nil
}

// VerifyG1 checks that the cross-boundary first derivatives of the two
// edges are parallel at every sample and related by one consistent scale
// across the whole boundary.
func VerifyG1(a, b EdgeSampler, edgeA, edgeB SurfaceEdge, numPoints int) error {
	da := a.EdgeFirstDerivs(edgeA, numPoints, true)
	db := b.EdgeFirstDerivs(edgeB, numPoints, true)

	if err := verifyParallel(da, db, edgeA, edgeB, "first"); err != nil {
		return err
	}

	return verifyConsistentScale(da, db, edgeA, edgeB, "first")
}

// VerifyG2 applies the same parallel-and-consistent-scale check to the
// cross-boundary second derivatives.
func VerifyG2(a, b EdgeSampler, edgeA, edgeB SurfaceEdge, numPoints int) error {
	da := a.EdgeSecondDerivs(edgeA, numPoints, true)
	db := b.EdgeSecondDerivs(edgeB, numPoints, true)

	if err := verifyParallel(da, db, edgeA, edgeB, "second"); err != nil {
		return err
	}

	return verifyConsistentScale(da, db, edgeA, edgeB, "second")
}

// verifyParallel compares unit directions under the geometric tolerance:
// normalization discards magnitude, so the tight point tolerance would
// reject joints that differ only in floating noise amplified by short
// derivative vectors.
func verifyParallel(da, db []vec3.T, edgeA, edgeB SurfaceEdge, order string) error {
	for k := range da {
		na := safeNormalized(da[k])
		nb := safeNormalized(db[k])

		diff := vec3.Sub(&na, &nb)
		if diff.Length() > internal.Tolerance {
			return errors.Errorf("%s derivatives across edges %v and %v are not parallel at sample %d",
				order, edgeA, edgeB, k)
		}
	}

	return nil
}

// verifyConsistentScale collects the componentwise ratios of the two
// derivative sequences, skipping components where the divisor or the ratio
// vanishes, and requires every surviving ratio to agree with the first.
func verifyConsistentScale(da, db []vec3.T, edgeA, edgeB SurfaceEdge, order string) error {
	ref := math.NaN()
	for k := range da {
		for c := 0; c < 3; c++ {
			if db[k][c] == 0 {
				continue
			}

			r := da[k][c] / db[k][c]
			if r == 0 {
				continue
			}

			if math.IsNaN(ref) {
				ref = r
				continue
			}
			if !scalesClose(r, ref) {
				return errors.Errorf("%s derivative magnitudes across edges %v and %v drift from ratio %g to %g at sample %d",
					order, edgeA, edgeB, ref, r, k)
			}
		}
	}

	return nil
}

func safeNormalized(v vec3.T) vec3.T {
	if v.Length() == 0 {
		return vec3.T{}
	}

	return v.Normalized()
}

func scalesClose(a, b float64) bool {
	return math.Abs(a-b) <= 1e-8+1e-5*math.Abs(b)
}
