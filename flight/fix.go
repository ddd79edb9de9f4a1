package flight

import (
	"math"
	"time"

	m "pfeifer.dev/soard/math"
	ms "pfeifer.dev/soard/settings"
)

// Fix is one sample of the derived flight state stream. It is read only to the
// task tracker and the speed to fly calculator.
type Fix struct {
	Time                  time.Time
	Latitude              float64
	Longitude             float64
	GroundSpeed           float64 // m/s
	Track                 float64 // degrees true
	TurnRate              float64 // degrees/s, positive clockwise
	AccelerationAvailable bool
	AccelZ                float64 // measured load factor in g
	Gload                 float64 // derived load factor estimate in g
	NettoVario            float64 // m/s, positive is rising air
	HeadWind              float64 // m/s along the track, ms.HEADWIND_UNKNOWN when not estimated
	FinalGlide            bool
	WindAvailable         bool
	WindSpeed             float64 // m/s
	WindFrom              float64 // degrees true
}

func (f *Fix) Position() m.Position {
	return m.NewPosition(f.Latitude, f.Longitude)
}

// LoadFactor prefers the accelerometer and falls back to the derived estimate.
func (f *Fix) LoadFactor() float64 {
	if f.AccelerationAvailable {
		return f.AccelZ
	}
	return f.Gload
}

func (f *Fix) HeadWindKnown() bool {
	return f.HeadWind != ms.HEADWIND_UNKNOWN && !math.IsNaN(f.HeadWind) && !math.IsInf(f.HeadWind, 0)
}

// EstimateLoadFactor derives the load factor of a coordinated turn from the
// ground speed and the rate of turn.
func EstimateLoadFactor(groundSpeed float64, turnRate float64) float64 {
	omega := turnRate * ms.TO_RADIANS
	bank := math.Atan(groundSpeed * omega / ms.GRAVITY)
	c := math.Cos(bank)
	if c <= 0 {
		return 1
	}
	return 1 / c
}

// HeadWindComponent projects a wind blowing from windFrom onto the track. A wind
// from straight ahead gives the full wind speed, a tailwind gives a negative value.
func HeadWindComponent(windSpeed float64, windFrom float64, track float64) float64 {
	wind := m.PolarVector(windFrom, windSpeed)
	heading := m.PolarVector(track, 1)
	return wind.Dot(heading)
}
