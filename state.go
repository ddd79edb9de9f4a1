package main

import (
	"log/slog"

	"capnproto.org/go/capnp/v3"
	"github.com/pkg/errors"
	"pfeifer.dev/soard/cereal"
	"pfeifer.dev/soard/cereal/soar"
	"pfeifer.dev/soard/flight"
	"pfeifer.dev/soard/polar"
	ms "pfeifer.dev/soard/settings"
	"pfeifer.dev/soard/stf"
	"pfeifer.dev/soard/task"
	"pfeifer.dev/soard/utils"
	"pfeifer.dev/soard/waypoints"
)

type State struct {
	Settings     *ms.SoarSettings
	Store        *task.Store
	Tracker      *task.Tracker
	Calculator   *stf.Calculator
	Polar        polar.Polar
	Waypoints    *waypoints.Database
	Fix          flight.Fix
	Events       []task.Event
	OptimalSpeed float64
	ValidActive  bool
	ActiveIndex  utils.TrackedState[int]
	FixRate      utils.UpdateTracker
}

func geometry(s *ms.SoarSettings) task.Geometry {
	return task.Geometry{
		LineHalfAngle: s.LineHalfAngle,
		FaiHalfAngle:  s.FaiHalfAngle,
	}
}

func stfParams(s *ms.SoarSettings) stf.Params {
	return stf.Params{
		MacCready:        s.MacCready,
		CruiseEfficiency: s.CruiseEfficiency,
		FilterAlpha:      s.SpeedFilterAlpha,
	}
}

func NewState(settings *ms.SoarSettings) *State {
	store := task.NewStore("", nil)
	p := settings.BuildPolar()
	s := &State{
		Settings:   settings,
		Store:      store,
		Tracker:    task.NewTracker(store, geometry(settings)),
		Calculator: stf.NewCalculator(p, stfParams(settings)),
		Polar:      p,
	}
	s.FixRate.Init(10)
	return s
}

// ApplySettings pushes the current settings into the tracker and calculator.
func (s *State) ApplySettings(polarChanged bool) {
	s.Tracker.Geometry = geometry(s.Settings)
	s.Calculator.Params = stfParams(s.Settings)
	if polarChanged {
		s.Polar = s.Settings.BuildPolar()
		s.Calculator.Polar = s.Polar
	}
}

// LoadTask reads the waypoint database and the active task from params and
// starts the task over.
func (s *State) LoadTask() error {
	db, err := waypoints.Load(waypoints.DefaultPath())
	utils.Logie(err, "waypoints", "none loaded")
	s.Waypoints = db

	var resolver task.Resolver
	if db != nil {
		resolver = db
	}
	err = task.LoadInto(s.Store, resolver)
	s.Tracker.Reset()
	s.Calculator.Reset()
	if err != nil {
		return errors.Wrap(err, "could not load active task")
	}
	slog.Info("loaded task", "name", s.Store.Name(), "points", s.Store.Len())
	return nil
}

func (s *State) HandleInput(input soar.SoarIn) {
	switch input.Type() {
	case soar.InputType_reloadTask:
		utils.Loge(s.LoadTask())
	case soar.InputType_resetTask:
		s.Tracker.Reset()
		s.Calculator.Reset()
		slog.Info("task reset")
	case soar.InputType_insertTaskPoint, soar.InputType_removeTaskPoint, soar.InputType_moveTaskPoint, soar.InputType_setActiveTaskPoint:
		utils.Loge(s.EditTask(input), "input", input.Type().String())
	default:
		s.ApplySettings(s.Settings.Handle(input))
	}
}

// EditTask applies a task point edit to the running task. Edits are not
// written back to params, so a task reload discards them.
func (s *State) EditTask(input soar.SoarIn) error {
	index := int(input.Index())
	var err error
	switch input.Type() {
	case soar.InputType_insertTaskPoint:
		name, strErr := input.Str()
		if strErr != nil {
			return errors.Wrap(strErr, "could not read waypoint name")
		}
		wp, ok := s.Waypoints.Lookup(name)
		if !ok {
			return errors.Errorf("unknown waypoint %q", name)
		}
		radius := input.Float()
		if radius <= 0 {
			radius = ms.DEFAULT_POINT_RADIUS
		}
		err = s.Store.Insert(index, task.Sector{Name: wp.Name, Center: wp.Position, Radius: radius, Kind: task.Circle})
	case soar.InputType_removeTaskPoint:
		err = s.Store.Remove(index)
	case soar.InputType_moveTaskPoint:
		err = s.Store.Move(index, int(input.Float()))
	case soar.InputType_setActiveTaskPoint:
		err = s.Store.SetActive(index)
	default:
		return errors.Errorf("%s is not a task edit", input.Type())
	}
	if err != nil {
		return err
	}
	slog.Info("task edited", "input", input.Type().String(), "index", index, "points", s.Store.Len())
	return nil
}

// Update runs one evaluation tick for fix.
func (s *State) Update(fix *flight.Fix) {
	s.Fix = *fix
	s.FixRate.Update(fix.Time)

	s.Events = s.Tracker.Update(fix)
	s.ValidActive = s.Store.ValidActive()
	s.OptimalSpeed = s.Calculator.Update(fix, s.ValidActive)

	if s.ActiveIndex.Update(s.Store.ActiveIndex()) {
		slog.Debug("active task point changed", "from", s.ActiveIndex.LastValue, "to", s.ActiveIndex.Value)
	}
}

func eventType(kind task.EventKind) soar.EventType {
	switch kind {
	case task.EventStart:
		return soar.EventType_start
	case task.EventRestart:
		return soar.EventType_restart
	case task.EventTurnpoint:
		return soar.EventType_turnpoint
	case task.EventFinish:
		return soar.EventType_finish
	}
	return soar.EventType_none
}

func (s *State) ToMessage() *capnp.Message {
	msg, output := cereal.NewMessage(true, cereal.SoarOutCreator)

	progress := s.Tracker.Progress()
	last := s.Tracker.Last()

	output.SetOptimalSpeed(s.OptimalSpeed)
	output.SetActiveIndex(int32(progress.ActiveIndex))
	output.SetValidActive(s.ValidActive)
	output.SetTaskStarted(progress.Started)
	output.SetTaskFinished(progress.Finished)
	output.SetInside(last.Inside)
	output.SetApproaching(last.Approaching)
	output.SetDistance(last.Distance)
	output.SetBearing(last.Bearing)
	if len(s.Events) > 0 {
		e := s.Events[len(s.Events)-1]
		output.SetCrossed(true)
		output.SetEvent(eventType(e.Kind))
	}
	if s.ValidActive && progress.ActiveIndex < len(progress.Sectors) {
		utils.Logde(output.SetActiveName(progress.Sectors[progress.ActiveIndex].Name))
	}

	logOutput(output)

	return msg
}

func logOutput(out soar.SoarOut) {
	name, _ := out.ActiveName()
	slog.Debug("soarOut",
		"optimalSpeed", out.OptimalSpeed(),
		"activeIndex", out.ActiveIndex(),
		"activeName", name,
		"crossed", out.Crossed(),
		"event", out.Event().String(),
		"inside", out.Inside(),
		"approaching", out.Approaching(),
		"distance", out.Distance(),
	)
}
