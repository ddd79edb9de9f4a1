package settings

import (
	"math"
	"time"
)

const (
	DEFAULT_SEGMENT_SIZE = 10 * 1024 * 1024
	SMALL_SEGMENT_SIZE   = 2 * 1024 * 1024
	LOOP_DELAY           = 50 * time.Millisecond
	MS_TO_KPH            = 3.6
	KPH_TO_MS            = 1 / 3.6
	KNOTS_TO_MS          = 0.514444
	R                    = 6371000.0 // mean radius of earth in meters
	TO_RADIANS           = math.Pi / 180
	TO_DEGREES           = 180 / math.Pi
	GRAVITY              = 9.81
	HEADWIND_UNKNOWN     = -999  // sentinel for a headwind the derived stream could not estimate
	MIN_SINK_SPEED_FLOOR = 1.0   // m/s, lower clamp for a broken polar
	DEFAULT_POINT_RADIUS = 500.0 // m, cylinder radius of a task point inserted without one
)

