package math

import (
	m "math"

	ms "pfeifer.dev/soard/settings"
)

// Vector is a local east (X) / north (Y) vector.
type Vector struct {
	X float64
	Y float64
}

func PolarVector(bearingDeg float64, length float64) Vector {
	rad := bearingDeg * ms.TO_RADIANS
	return Vector{X: length * m.Sin(rad), Y: length * m.Cos(rad)}
}

// Bearing is in radians clockwise from north.
func (v *Vector) Bearing() float64 {
	return m.Atan2(v.X, v.Y)
}

func (v *Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}
