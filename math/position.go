package math

import (
	m "math"

	ms "pfeifer.dev/soard/settings"
)

func NewPosition(latDeg, lonDeg float64) Position {
	return Position{latitudeDeg: latDeg, longitudeDeg: lonDeg}
}

type Position struct {
	latitudeDeg  float64
	longitudeDeg float64
}

func (p *Position) LatRad() float64 {
	return p.latitudeDeg * ms.TO_RADIANS
}

func (p *Position) LonRad() float64 {
	return p.longitudeDeg * ms.TO_RADIANS
}

func (p *Position) Lat() float64 {
	return p.latitudeDeg
}

func (p *Position) Lon() float64 {
	return p.longitudeDeg
}

func (p *Position) Equals(other Position) bool {
	return p.latitudeDeg == other.latitudeDeg && p.longitudeDeg == other.longitudeDeg
}

// DistanceTo is the great circle distance in meters.
func (p *Position) DistanceTo(end Position) float64 {
	latDiff := end.LatRad() - p.LatRad()
	lonDiff := end.LonRad() - p.LonRad()
	a := m.Pow(m.Sin(latDiff/2), 2) + m.Cos(p.LatRad())*m.Cos(end.LatRad())*m.Pow(m.Sin(lonDiff/2), 2)
	c := 2 * m.Atan2(m.Sqrt(a), m.Sqrt(1-a))

	return ms.R * c
}

func (p *Position) VectorTo(end Position) Vector {
	res := Vector{}
	dlon := end.LonRad() - p.LonRad()
	res.X = m.Sin(dlon) * m.Cos(end.LatRad())
	res.Y = m.Cos(p.LatRad())*m.Sin(end.LatRad()) - (m.Sin(p.LatRad()) * m.Cos(end.LatRad()) * m.Cos(dlon))
	return res
}

// BearingTo is the initial true bearing towards end in degrees, [0, 360).
func (p *Position) BearingTo(end Position) float64 {
	v := p.VectorTo(end)
	return AngleLimit360(v.Bearing() * ms.TO_DEGREES)
}

// DistanceBearing returns both legs of the fix to waypoint computation at once.
func (p *Position) DistanceBearing(end Position) (distance float64, bearing float64) {
	return p.DistanceTo(end), p.BearingTo(end)
}

// Offset moves the position along a great circle by distance meters on the given bearing.
func (p *Position) Offset(bearingDeg float64, distance float64) Position {
	d := distance / ms.R
	brg := bearingDeg * ms.TO_RADIANS
	lat1 := p.LatRad()
	lon1 := p.LonRad()
	lat2 := m.Asin(m.Sin(lat1)*m.Cos(d) + m.Cos(lat1)*m.Sin(d)*m.Cos(brg))
	lon2 := lon1 + m.Atan2(m.Sin(brg)*m.Sin(d)*m.Cos(lat1), m.Cos(d)-m.Sin(lat1)*m.Sin(lat2))
	return NewPosition(lat2*ms.TO_DEGREES, AngleLimit180(lon2*ms.TO_DEGREES))
}
