package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleConversions(t *testing.T) {
	assert.Equal(t, math.Pi, Radians(math.Pi).Rad())
	assert.InDelta(t, math.Pi, Degrees(180).Rad(), 1e-12)
	assert.InDelta(t, 90, Radians(math.Pi/2).Deg(), 1e-12)
	assert.Equal(t, 0.0, Degrees(0).Rad())
}
