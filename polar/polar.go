package polar

import (
	"math"

	"github.com/pkg/errors"
)

// Point is one measured polar sample: airspeed and sink rate in m/s, sink
// positive downwards.
type Point struct {
	Speed float64 `json:"speed"`
	Sink  float64 `json:"sink"`
}

// Polar is a parabolic glide polar w(v) = a*v^2 + b*v + c.
type Polar struct {
	a, b, c float64
}

// New fits the parabola through three points. ballastRatio is the wing loading
// relative to the loading the points were measured at, bugs is the remaining
// performance fraction (1 is a clean wing).
func New(points [3]Point, ballastRatio float64, bugs float64) (Polar, error) {
	p1, p2, p3 := points[0], points[1], points[2]
	if p1.Speed == p2.Speed || p2.Speed == p3.Speed || p1.Speed == p3.Speed {
		return Polar{}, errors.New("polar points need distinct speeds")
	}
	if ballastRatio <= 0 || bugs <= 0 {
		return Polar{}, errors.Errorf("invalid polar scaling, ballast ratio %f bugs %f", ballastRatio, bugs)
	}

	s12 := (p1.Sink - p2.Sink) / (p1.Speed - p2.Speed)
	s23 := (p2.Sink - p3.Sink) / (p2.Speed - p3.Speed)
	a := (s12 - s23) / (p1.Speed - p3.Speed)
	b := s12 - a*(p1.Speed+p2.Speed)
	c := p1.Sink - a*p1.Speed*p1.Speed - b*p1.Speed

	// speeds scale with the square root of the wing loading
	scale := math.Sqrt(ballastRatio)
	res := Polar{
		a: a / scale / bugs,
		b: b / bugs,
		c: c * scale / bugs,
	}
	if !res.Valid() {
		return Polar{}, errors.Errorf("polar is not convex with a positive minimum sink, a=%f b=%f c=%f", res.a, res.b, res.c)
	}
	return res, nil
}

func (p Polar) Valid() bool {
	if p.a <= 0 || p.b >= 0 {
		return false
	}
	vmin := p.MinimumSinkSpeed()
	return vmin > 0 && p.MinimumSink() > 0 && !math.IsInf(vmin, 0)
}

// SinkRate at airspeed v, positive downwards.
func (p Polar) SinkRate(v float64) float64 {
	return p.a*v*v + p.b*v + p.c
}

func (p Polar) MinimumSinkSpeed() float64 {
	return -p.b / (2 * p.a)
}

func (p Polar) MinimumSink() float64 {
	return p.SinkRate(p.MinimumSinkSpeed())
}

// BestGlideSpeed is the speed to fly in still air with a zero MacCready setting.
func (p Polar) BestGlideSpeed() float64 {
	return p.BestSpeedToFly(0, 0, 0)
}

// BestSpeedToFly is the MacCready speed that maximizes the achieved ground
// speed (v - headwind) / (sink(v) + macCready - netto). When the air is good
// enough that no speed satisfies that, the minimum sink speed is returned.
func (p Polar) BestSpeedToFly(macCready float64, netto float64, headwind float64) float64 {
	vmin := p.MinimumSinkSpeed()
	cPrime := p.c + macCready - netto
	radicand := headwind*headwind + (cPrime+p.b*headwind)/p.a
	if radicand < 0 {
		return vmin
	}
	v := headwind + math.Sqrt(radicand)
	if math.IsNaN(v) || v < vmin {
		return vmin
	}
	return v
}

// GlideRatio is the still air lift to drag at airspeed v.
func (p Polar) GlideRatio(v float64) float64 {
	sink := p.SinkRate(v)
	if sink <= 0 {
		return math.Inf(1)
	}
	return v / sink
}
