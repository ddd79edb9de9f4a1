package stf

import (
	"log/slog"
	"math"

	"pfeifer.dev/soard/flight"
	m "pfeifer.dev/soard/math"
	ms "pfeifer.dev/soard/settings"
)

// Polar is the part of the glide polar the calculator consumes.
type Polar interface {
	MinimumSinkSpeed() float64
	BestSpeedToFly(macCready float64, netto float64, headwind float64) float64
}

type Params struct {
	MacCready        float64 // m/s
	CruiseEfficiency float64
	FilterAlpha      float64
}

func DefaultParams() Params {
	return Params{
		MacCready:        0,
		CruiseEfficiency: 1.0,
		FilterAlpha:      0.6,
	}
}

// Calculator carries the smoothed optimal speed from one fix to the next.
type Calculator struct {
	Polar       Polar
	Params      Params
	VOpt        float64
	initialized bool
}

func NewCalculator(polar Polar, params Params) *Calculator {
	c := &Calculator{Polar: polar, Params: params}
	c.Reset()
	return c
}

// Reset seeds the filter with the minimum sink speed.
func (c *Calculator) Reset() {
	c.VOpt = c.MinimumSinkSpeed()
	c.initialized = true
}

// MinimumSinkSpeed is the polar's minimum sink speed clamped to a positive floor.
func (c *Calculator) MinimumSinkSpeed() float64 {
	if c.Polar == nil {
		return ms.MIN_SINK_SPEED_FLOOR
	}
	vmin := c.Polar.MinimumSinkSpeed()
	if math.IsNaN(vmin) || math.IsInf(vmin, 0) || vmin < ms.MIN_SINK_SPEED_FLOOR {
		return ms.MIN_SINK_SPEED_FLOOR
	}
	return vmin
}

// EffectiveHeadWind ignores the wind unless the aircraft is on final glide to a
// valid active task point, following the MacCready variant in use.
func EffectiveHeadWind(fix *flight.Fix, validActive bool) float64 {
	if fix.FinalGlide && validActive && fix.HeadWindKnown() {
		return fix.HeadWind
	}
	return 0
}

// Floor is the slowest speed the calculator will ever suggest for the fix.
func (c *Calculator) Floor(fix *flight.Fix) float64 {
	vmin := c.MinimumSinkSpeed()
	if fix.NettoVario > c.Params.MacCready {
		n := math.Abs(fix.LoadFactor())
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return vmin
		}
		return vmin * math.Sqrt(n)
	}
	return vmin
}

// TargetSpeed is the unfiltered speed to fly for fix, with the efficiency
// factor and floors applied.
func (c *Calculator) TargetSpeed(fix *flight.Fix, validActive bool) float64 {
	headwind := EffectiveHeadWind(fix, validActive)

	vOpt := math.NaN()
	if c.Polar != nil {
		vOpt = c.Polar.BestSpeedToFly(c.Params.MacCready, fix.NettoVario, headwind)
	}
	vOpt *= c.Params.CruiseEfficiency

	floor := c.Floor(fix)
	if math.IsNaN(vOpt) || math.IsInf(vOpt, 0) || vOpt < floor {
		vOpt = floor
	}
	return vOpt
}

// ComputeOptimalSpeed filters the target speed for fix into previous.
func (c *Calculator) ComputeOptimalSpeed(previous float64, fix *flight.Fix, validActive bool) float64 {
	vOpt := c.TargetSpeed(fix, validActive)
	alpha := min(1, max(0, c.Params.FilterAlpha))
	if math.IsNaN(previous) || math.IsInf(previous, 0) {
		previous = vOpt
	}
	return m.LowPassFilter(previous, vOpt, alpha)
}

func (c *Calculator) Update(fix *flight.Fix, validActive bool) float64 {
	if !c.initialized {
		c.Reset()
	}
	c.VOpt = c.ComputeOptimalSpeed(c.VOpt, fix, validActive)
	slog.Debug("speed to fly",
		"vOpt", c.VOpt,
		"netto", fix.NettoVario,
		"macCready", c.Params.MacCready,
		"headwind", EffectiveHeadWind(fix, validActive),
	)
	return c.VOpt
}
