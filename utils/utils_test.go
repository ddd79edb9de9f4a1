package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackedState(t *testing.T) {
	s := TrackedState[int]{}
	assert.False(t, s.Update(0))
	assert.True(t, s.Update(2))
	assert.Equal(t, 0, s.LastValue)
	assert.Equal(t, 2, s.Value)
	assert.False(t, s.UpdatedTime.IsZero())
	assert.False(t, s.Update(2))
	assert.True(t, s.Update(3))
	assert.Equal(t, 2, s.LastValue)
}

func TestUpdateTracker(t *testing.T) {
	u := UpdateTracker{}
	u.Init(4)
	assert.Equal(t, 0.0, u.Rate())

	start := time.Unix(1000, 0)
	for i := range 5 {
		u.Update(start.Add(time.Duration(i) * 200 * time.Millisecond))
	}
	assert.InDelta(t, 5, u.Rate(), 1e-9)
}
