package scene

import (
	"fmt"
	"math"
)

// Angle conventions. All angles in this package are in degrees.
const (
	Azimuth   = "azimuth"
	Elevation = "elevation"
	Yaw       = "yaw"
	Pitch     = "pitch"
	Roll      = "roll"
)

var angleDomains = map[string][2]float64{
	Azimuth:   {-180, 180},
	Elevation: {-90, 90},
	Yaw:       {-180, 180},
	Pitch:     {-90, 90},
	Roll:      {-180, 180},
}

// CheckAngle verifies that every value lies within the closed domain of the
// given angle convention: [-180, 180] for azimuth/yaw/roll, [-90, 90] for
// elevation/pitch. Returns true when all values are in domain; otherwise
// returns false and a ValidationError. An unknown convention is also an
// error.
func CheckAngle(kind string, values []float64) (bool, error) {
	domain, ok := angleDomains[kind]
	if !ok {
		return false, ValidationError{
			Field:   kind,
			Message: "unknown angle convention",
		}
	}
	for _, v := range values {
		if v < domain[0] || v > domain[1] {
			return false, ValidationError{
				Field:   kind,
				Message: fmt.Sprintf("%v is outside [%v, %v]", v, domain[0], domain[1]),
			}
		}
	}
	return true, nil
}

// WrapTo180 maps an angle in degrees to the equivalent value in [-180, 180).
//
// Exact for integer-degree inputs, e.g. 360 -> 0, 270 -> -90, 180 -> -180.
func WrapTo180(angle float64) float64 {
	wrapped := math.Mod(angle+180, 360)
	if wrapped < 0 {
		wrapped += 360
	}
	return wrapped - 180
}
