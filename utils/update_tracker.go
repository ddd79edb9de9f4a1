package utils

import (
	"time"

	m "pfeifer.dev/soard/math"
)

// UpdateTracker measures the interval between updates of a stream.
type UpdateTracker struct {
	LastTime time.Time
	Time     time.Time
	DiffMA   m.MovingAverage
}

func (u *UpdateTracker) Init(maLength int) {
	u.LastTime = time.Time{}
	u.Time = time.Time{}
	u.DiffMA.Init(maLength)
}

// Update records an update that happened at t.
func (u *UpdateTracker) Update(t time.Time) {
	u.LastTime = u.Time
	u.Time = t
	if u.LastTime.IsZero() {
		return
	}
	u.DiffMA.Update(u.Time.Sub(u.LastTime).Seconds())
}

// Rate is the average update frequency in Hz, 0 before two updates were seen.
func (u *UpdateTracker) Rate() float64 {
	interval := u.DiffMA.Estimate
	if interval <= 0 {
		return 0
	}
	return 1 / interval
}
