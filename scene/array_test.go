package scene

import (
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCircularArray(t *testing.T) {
	uut, err := NewCircularArray(4, 0.1)
	require.NoError(t, err)

	assertVecsNear(t, []pt.Vector{
		V(0.1, 0, 0),
		V(0, 0.1, 0),
		V(-0.1, 0, 0),
		V(0, -0.1, 0),
	}, uut.Positions())
	assertVecNear(t, V(0, 0, 0), uut.Center())
	assert.InDelta(t, 0.1, uut.Radius(), maxAbsTol)
}

func TestArrayBuildersInvalid(t *testing.T) {
	var verr ValidationError

	_, err := NewLinearArray(0, 0.05, AxisX)
	assert.ErrorAs(t, err, &verr)

	_, err = NewLinearArray(2, -0.05, AxisX)
	assert.ErrorAs(t, err, &verr)

	_, err = NewLinearArray(2, 0.05, Axis(7))
	assert.ErrorAs(t, err, &verr)

	_, err = NewCircularArray(3, -1)
	assert.ErrorAs(t, err, &verr)
}
