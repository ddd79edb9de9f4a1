package main

import (
	"log/slog"
	"time"

	"capnproto.org/go/capnp/v3"
	"pfeifer.dev/soard/cereal"
	"pfeifer.dev/soard/cereal/soar"
	"pfeifer.dev/soard/task"
)

// ExtendedState publishes the slow moving part of the output: task progress and
// the active settings.
type ExtendedState struct {
	Pub      cereal.Publisher[soar.SoarExtendedOut]
	lastSend time.Time
	state    *State
}

func (s *ExtendedState) Send() error {
	if time.Since(s.lastSend) > 1*time.Second {
		s.lastSend = time.Now()
		return s.Pub.Send(s.ToMessage())
	}
	return nil
}

func (s *ExtendedState) ToMessage() *capnp.Message {
	msg, out := cereal.NewMessage(true, cereal.SoarExtendedOutCreator)
	s.setProgress(out)
	s.setGlide(out)
	s.setSettings(out)
	return msg
}

func unixMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func sectorKind(kind task.SectorKind) soar.SectorKind {
	switch kind {
	case task.Line:
		return soar.SectorKind_line
	case task.Fai90:
		return soar.SectorKind_fai90
	}
	return soar.SectorKind_circle
}

func (s *ExtendedState) setProgress(out soar.SoarExtendedOut) {
	progress := s.state.Tracker.Progress()
	out.SetActiveIndex(int32(progress.ActiveIndex))
	out.SetStarted(progress.Started)
	out.SetFinished(progress.Finished)
	out.SetStartUnixTimeMillis(unixMillis(progress.StartTime))
	out.SetFinishUnixTimeMillis(unixMillis(progress.FinishTime))
	if err := out.SetTaskName(progress.TaskName); err != nil {
		slog.Warn("failed to set task name in extended state", "error", err)
	}

	sectors, err := out.NewSectors(int32(len(progress.Sectors)))
	if err != nil {
		slog.Warn("failed to create sectors in extended state", "error", err)
		return
	}
	for i, sector := range progress.Sectors {
		status := sectors.At(i)
		status.SetLatitude(sector.Center.Lat())
		status.SetLongitude(sector.Center.Lon())
		status.SetRadius(sector.Radius)
		status.SetInbound(sector.Inbound)
		status.SetKind(sectorKind(sector.Kind))
		if i < len(progress.Achieved) {
			status.SetAchievedUnixTimeMillis(unixMillis(progress.Achieved[i]))
		}
		if err := status.SetName(sector.Name); err != nil {
			slog.Warn("failed to set sector name in extended state", "error", err)
		}
	}
}

func (s *ExtendedState) setGlide(out soar.SoarExtendedOut) {
	p := s.state.Polar
	if !p.Valid() {
		return
	}
	v := p.BestGlideSpeed()
	out.SetBestGlideSpeed(v)
	out.SetBestGlideRatio(p.GlideRatio(v))
}

func (s *ExtendedState) setSettings(out soar.SoarExtendedOut) {
	if err := out.SetSettings(s.state.Settings.JSON()); err != nil {
		slog.Warn("failed to set settings in extended state", "error", err)
	}
}
