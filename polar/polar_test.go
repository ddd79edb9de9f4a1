package polar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var standardClass = [3]Point{
	{Speed: 22.2, Sink: 0.58},
	{Speed: 27.8, Sink: 0.65},
	{Speed: 44.4, Sink: 1.45},
}

func TestNew(t *testing.T) {
	p, err := New(standardClass, 1, 1)
	require.NoError(t, err)

	for _, pt := range standardClass {
		assert.InDelta(t, pt.Sink, p.SinkRate(pt.Speed), 1e-9)
	}
	assert.True(t, p.Valid())
	assert.InDelta(t, 21.1127, p.MinimumSinkSpeed(), 1e-3)
	assert.InDelta(t, 0.5781, p.MinimumSink(), 1e-3)
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New([3]Point{{20, 0.6}, {20, 0.7}, {40, 1.5}}, 1, 1)
	assert.Error(t, err)

	// concave
	_, err = New([3]Point{{20, 0.5}, {30, 1.4}, {40, 0.5}}, 1, 1)
	assert.Error(t, err)

	_, err = New(standardClass, 0, 1)
	assert.Error(t, err)

	_, err = New(standardClass, 1, 0)
	assert.Error(t, err)
}

func TestBallastAndBugs(t *testing.T) {
	clean, err := New(standardClass, 1, 1)
	require.NoError(t, err)

	ballasted, err := New(standardClass, 1.5, 1)
	require.NoError(t, err)
	assert.InDelta(t, clean.MinimumSinkSpeed()*math.Sqrt(1.5), ballasted.MinimumSinkSpeed(), 1e-9)
	assert.InDelta(t, clean.GlideRatio(clean.BestGlideSpeed()), ballasted.GlideRatio(ballasted.BestGlideSpeed()), 1e-9)

	bugged, err := New(standardClass, 1, 0.9)
	require.NoError(t, err)
	assert.InDelta(t, clean.MinimumSinkSpeed(), bugged.MinimumSinkSpeed(), 1e-9)
	assert.InDelta(t, clean.MinimumSink()/0.9, bugged.MinimumSink(), 1e-9)
}

func TestBestSpeedToFly(t *testing.T) {
	p, err := New(standardClass, 1, 1)
	require.NoError(t, err)

	t.Run("still air best glide", func(t *testing.T) {
		assert.InDelta(t, 28.378, p.BestGlideSpeed(), 1e-3)
	})

	t.Run("maccready raises the speed", func(t *testing.T) {
		assert.InDelta(t, 45.269, p.BestSpeedToFly(2, 0, 0), 1e-3)
	})

	t.Run("rising air lowers the speed", func(t *testing.T) {
		assert.InDelta(t, 37.779, p.BestSpeedToFly(2, 1, 0), 1e-3)
	})

	t.Run("headwind raises the speed", func(t *testing.T) {
		assert.InDelta(t, 31.978, p.BestSpeedToFly(0, 0, 10), 1e-3)
		assert.InDelta(t, 51.557, p.BestSpeedToFly(2, 0, 10), 1e-3)
	})

	t.Run("strong lift falls back to minimum sink", func(t *testing.T) {
		assert.InDelta(t, p.MinimumSinkSpeed(), p.BestSpeedToFly(0, 5, 0), 1e-9)
	})

	t.Run("matches a brute force search", func(t *testing.T) {
		best, bestScore := 0.0, math.Inf(-1)
		for v := 15.0; v < 80; v += 0.001 {
			score := (v - 10) / (p.SinkRate(v) + 2)
			if score > bestScore {
				best, bestScore = v, score
			}
		}
		assert.InDelta(t, best, p.BestSpeedToFly(2, 0, 10), 0.01)
	})
}

func TestInvalidPolar(t *testing.T) {
	p := Polar{}
	assert.False(t, p.Valid())
	assert.True(t, math.IsNaN(p.MinimumSinkSpeed()))

	p = Polar{a: 0.0016, b: 0.05, c: 1}
	assert.False(t, p.Valid())
	assert.Negative(t, p.MinimumSinkSpeed())
}
