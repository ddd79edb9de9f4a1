package task

import (
	"strings"

	"github.com/pkg/errors"
	"pfeifer.dev/soard/flight"
	m "pfeifer.dev/soard/math"
)

type SectorKind int

const (
	Circle SectorKind = iota
	Line
	Fai90
)

func (k SectorKind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Line:
		return "line"
	case Fai90:
		return "fai90"
	}
	return "unknown"
}

func ParseSectorKind(s string) (SectorKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "circle", "cylinder":
		return Circle, nil
	case "line":
		return Line, nil
	case "fai90", "fai-90", "fai", "sector":
		return Fai90, nil
	}
	return Circle, errors.Errorf("unknown sector kind %q", s)
}

func (k SectorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SectorKind) UnmarshalText(b []byte) error {
	kind, err := ParseSectorKind(string(b))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Sector is one task point. Inbound is the course, in degrees, on which the
// aircraft is expected to approach a line or FAI sector.
type Sector struct {
	Name    string
	Center  m.Position
	Radius  float64 // meters
	Kind    SectorKind
	Inbound float64
}

// Geometry holds the half angles of the approach cones.
type Geometry struct {
	LineHalfAngle float64
	FaiHalfAngle  float64
}

func DefaultGeometry() Geometry {
	return Geometry{LineHalfAngle: 90, FaiHalfAngle: 135}
}

type Containment struct {
	Inside      bool
	Approaching bool
	Distance    float64
	Bearing     float64 // fix to sector center, degrees
}

// Contains tests fix against the sector. The radius boundary itself is outside.
func Contains(fix *flight.Fix, sector *Sector, geometry Geometry) Containment {
	pos := fix.Position()
	distance, bearing := pos.DistanceBearing(sector.Center)

	res := Containment{
		Inside:   distance < sector.Radius,
		Distance: distance,
		Bearing:  bearing,
	}

	offCourse := m.AngleLimit180(bearing - sector.Inbound)
	switch sector.Kind {
	case Line:
		res.Approaching = offCourse >= -geometry.LineHalfAngle && offCourse <= geometry.LineHalfAngle
	case Fai90:
		res.Approaching = offCourse >= -geometry.FaiHalfAngle && offCourse <= geometry.FaiHalfAngle
	}
	return res
}
