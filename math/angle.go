package math

import (
	m "math"
)

// AngleLimit180 folds an angle in degrees into (-180, 180].
func AngleLimit180(deg float64) float64 {
	res := m.Mod(deg, 360)
	if res > 180 {
		res -= 360
	} else if res <= -180 {
		res += 360
	}
	return res
}

// AngleLimit360 folds an angle in degrees into [0, 360).
func AngleLimit360(deg float64) float64 {
	res := m.Mod(deg, 360)
	if res < 0 {
		res += 360
	}
	if res >= 360 {
		res = 0
	}
	return res
}
