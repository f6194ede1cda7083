package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertPlacementToRange(t *testing.T) {
	tests := []struct {
		name         string
		placement    Placement
		roomDim      RoomDimensions
		objectRadius float64
		expect       [3][2]float64
	}{
		{
			"unconstrained",
			Placement{},
			RoomDimensions{3, 4, 5},
			0,
			[3][2]float64{{0, 3}, {0, 4}, {0, 5}},
		},
		{
			"object_radius",
			Placement{},
			RoomDimensions{3, 4, 5},
			0.1,
			[3][2]float64{{0.1, 2.9}, {0.1, 3.9}, {0.1, 4.9}},
		},
		{
			"wall_margin",
			Placement{MinToWall: 0.5},
			RoomDimensions{3, 4, 5},
			0.1,
			[3][2]float64{{0.6, 2.4}, {0.6, 3.4}, {0.6, 4.4}},
		},
		{
			"ranges_clipped_to_margin",
			Placement{
				X:         RangeAxis(1, 3),
				Y:         RangeAxis(0.3, 3.0),
				Height:    RangeAxis(1.5, 1.8),
				MinToWall: 0.5,
			},
			RoomDimensions{3, 4, 5},
			0.1,
			[3][2]float64{{1, 2.4}, {0.6, 3.0}, {1.5, 1.8}},
		},
		{
			"fixed_coordinates",
			Placement{
				X:         FixedAxis(2),
				Y:         FixedAxis(3),
				Height:    RangeAxis(1.5, 1.8),
				MinToWall: 0.5,
			},
			RoomDimensions{3, 4, 5},
			0.1,
			[3][2]float64{{2, 2}, {3, 3}, {1.5, 1.8}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ConvertPlacementToRange(test.placement, test.roomDim, test.objectRadius)
			assert.NoError(t, err)
			for axis := range got {
				assert.InDelta(t, test.expect[axis][0], got[axis][0], 1e-12, "axis %d min", axis)
				assert.InDelta(t, test.expect[axis][1], got[axis][1], 1e-12, "axis %d max", axis)
			}
		})
	}
}

func TestConvertPlacementToRangeInvalid(t *testing.T) {
	tests := []struct {
		name         string
		placement    Placement
		roomDim      RoomDimensions
		objectRadius float64
	}{
		{
			"negative_x",
			Placement{X: FixedAxis(-1)},
			RoomDimensions{3, 4, 5},
			0.1,
		},
		{
			"negative_min_to_wall",
			Placement{MinToWall: -1},
			RoomDimensions{3, 4, 5},
			0.1,
		},
		{
			"negative_object_radius",
			Placement{},
			RoomDimensions{3, 4, 5},
			-0.1,
		},
		{
			"room_too_small_for_constraint",
			Placement{MinToWall: 1},
			RoomDimensions{1, 2, 3},
			0.1,
		},
		{
			"inverted_explicit_range",
			Placement{X: RangeAxis(2, 1)},
			RoomDimensions{3, 4, 5},
			0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ConvertPlacementToRange(test.placement, test.roomDim, test.objectRadius)
			var verr ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}
