package utils

import (
	"time"
)

// TrackedState remembers the previous value of a field and when it changed.
type TrackedState[T comparable] struct {
	LastValue   T
	Value       T
	UpdatedTime time.Time
}

func (t *TrackedState[T]) Update(val T) (updated bool) {
	if t.Value == val {
		return false
	}
	t.LastValue = t.Value
	t.Value = val
	t.UpdatedTime = time.Now()
	return true
}
