package cereal

import (
	"log/slog"
	"time"

	"pfeifer.dev/soard/cereal/soar"
	"pfeifer.dev/soard/flight"
	"pfeifer.dev/soard/settings"
)

// GetFixSub waits briefly for either fix queue to carry data and keeps the
// first one that does, preferring the derived state queue.
func GetFixSub() (fixSub Subscriber[soar.Fix]) {
	sub := NewSubscriber(SOAR_FIX, FixReader, false)
	subExt := NewSubscriber(SOAR_FIX_EXTERNAL, FixReader, false)

	for range 60 {
		time.Sleep(settings.LOOP_DELAY)

		if sub.Sub.Ready() {
			subExt.Close()
			slog.Info("Using " + SOAR_FIX)
			return sub
		}

		if subExt.Sub.Ready() {
			sub.Close()
			slog.Info("Using " + SOAR_FIX_EXTERNAL)
			return subExt
		}
	}
	subExt.Close()
	slog.Info("Using " + SOAR_FIX)
	return sub
}

// FixFromMessage converts a wire fix. A missing derived load factor is
// estimated from the turn, and a missing headwind is projected from the wind
// when the producer supplies one.
func FixFromMessage(f soar.Fix) flight.Fix {
	fix := flight.Fix{
		Time:                  time.UnixMilli(f.UnixTimeMillis()),
		Latitude:              f.Latitude(),
		Longitude:             f.Longitude(),
		GroundSpeed:           f.GroundSpeed(),
		Track:                 f.Track(),
		TurnRate:              f.TurnRate(),
		AccelerationAvailable: f.AccelerationAvailable(),
		AccelZ:                f.AccelZ(),
		Gload:                 f.Gload(),
		NettoVario:            f.NettoVario(),
		HeadWind:              f.HeadWind(),
		FinalGlide:            f.FinalGlide(),
		WindAvailable:         f.WindAvailable(),
		WindSpeed:             f.WindSpeed(),
		WindFrom:              f.WindFrom(),
	}
	if fix.Gload == 0 {
		fix.Gload = flight.EstimateLoadFactor(fix.GroundSpeed, fix.TurnRate)
	}
	if !fix.HeadWindKnown() && fix.WindAvailable {
		fix.HeadWind = flight.HeadWindComponent(fix.WindSpeed, fix.WindFrom, fix.Track)
	}
	return fix
}

func FillFix(f soar.Fix, fix *flight.Fix) {
	f.SetUnixTimeMillis(fix.Time.UnixMilli())
	f.SetLatitude(fix.Latitude)
	f.SetLongitude(fix.Longitude)
	f.SetGroundSpeed(fix.GroundSpeed)
	f.SetTrack(fix.Track)
	f.SetTurnRate(fix.TurnRate)
	f.SetAccelerationAvailable(fix.AccelerationAvailable)
	f.SetAccelZ(fix.AccelZ)
	f.SetGload(fix.Gload)
	f.SetNettoVario(fix.NettoVario)
	f.SetHeadWind(fix.HeadWind)
	f.SetFinalGlide(fix.FinalGlide)
	f.SetWindAvailable(fix.WindAvailable)
	f.SetWindSpeed(fix.WindSpeed)
	f.SetWindFrom(fix.WindFrom)
}
