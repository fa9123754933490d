package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestHomogenized(t *testing.T) {
	pt := Homogenized(vec3.T{1, 2, 3}, 2)

	assert.Equal(t, vec3.T{2, 4, 6}, pt.Vec3)
	assert.Equal(t, 2.0, pt.W)

	assertVecInDelta(t, vec3.T{1, 2, 3}, pt.Dehomogenized(), 1e-12)
}

func TestHomogenize2d(t *testing.T) {
	pts := [][]vec3.T{
		{{1, 0, 0}, {0, 1, 0}},
		{{0, 0, 1}, {1, 1, 1}},
	}
	weights := [][]float64{
		{1, 2},
		{0.5, 4},
	}

	homo := Homogenize2d(pts, weights)

	require.Len(t, homo, 2)
	require.Len(t, homo[0], 2)

	assert.Equal(t, vec3.T{0, 2, 0}, homo[0][1].Vec3)
	assert.Equal(t, 2.0, homo[0][1].W)
	assert.Equal(t, vec3.T{0, 0, 0.5}, homo[1][0].Vec3)
	assert.Equal(t, 0.5, homo[1][0].W)
}

func TestHomoPointAddScale(t *testing.T) {
	a := Homogenized(vec3.T{1, 0, 0}, 1)
	b := Homogenized(vec3.T{0, 1, 0}, 3)

	a.Add(&b)
	assert.Equal(t, vec3.T{1, 3, 0}, a.Vec3)
	assert.Equal(t, 4.0, a.W)

	a.Scale(0.5)
	assert.Equal(t, vec3.T{0.5, 1.5, 0}, a.Vec3)
	assert.Equal(t, 2.0, a.W)
}
