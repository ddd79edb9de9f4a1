package task

import (
	"log/slog"
	"time"

	"pfeifer.dev/soard/flight"
)

type EventKind int

const (
	EventNone EventKind = iota
	EventStart
	EventRestart
	EventTurnpoint
	EventFinish
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventRestart:
		return "restart"
	case EventTurnpoint:
		return "turnpoint"
	case EventFinish:
		return "finish"
	}
	return "none"
}

type Event struct {
	Kind   EventKind
	Index  int
	Sector string
	Time   time.Time
}

// roleState is the hysteresis bit of one sector role, remembered together with
// the task point it was armed on.
type roleState struct {
	wasApproaching bool
	index          int
}

type Progress struct {
	TaskName    string
	ActiveIndex int
	Started     bool
	Finished    bool
	StartTime   time.Time
	FinishTime  time.Time
	Achieved    []time.Time
	Sectors     []Sector
}

// Tracker walks the task one fix at a time and reports validated sector
// crossings. Fixes must be fed in arrival order.
type Tracker struct {
	Geometry Geometry

	store      *Store
	roles      map[Role]*roleState
	version    uint64
	started    bool
	finished   bool
	startTime  time.Time
	finishTime time.Time
	achieved   []time.Time
	leftStart  bool
	last       Containment
}

func NewTracker(store *Store, geometry Geometry) *Tracker {
	t := &Tracker{
		Geometry: geometry,
		store:    store,
	}
	t.Reset()
	return t
}

func (t *Tracker) Store() *Store {
	return t.store
}

// Reset forgets all progress and reactivates the first task point.
func (t *Tracker) Reset() {
	t.store.Lock()
	defer t.store.Unlock()
	t.store.SetActiveFast(0)
	t.resetFast()
	t.started = false
	t.finished = false
	t.leftStart = false
	t.startTime = time.Time{}
	t.finishTime = time.Time{}
	t.achieved = make([]time.Time, t.store.LenFast())
}

func (t *Tracker) resetFast() {
	t.roles = map[Role]*roleState{
		RoleStart:     {index: -1},
		RoleTurnpoint: {index: -1},
		RoleFinish:    {index: -1},
	}
	t.version = t.store.VersionFast()
	t.last = Containment{}
}

// syncFast drops hysteresis armed against a task that has since been edited.
func (t *Tracker) syncFast() {
	if t.version == t.store.VersionFast() {
		return
	}
	t.resetFast()
	achieved := make([]time.Time, t.store.LenFast())
	copy(achieved, t.achieved)
	t.achieved = achieved
}

// preconditionFast is the task level requirement for evaluating a role.
func (t *Tracker) preconditionFast(role Role) bool {
	switch role {
	case RoleTurnpoint, RoleFinish:
		return t.started && !t.finished
	}
	return !t.finished
}

// evaluateFast is the crossing rule for task point index. ok is false when the
// point or the task state does not allow an evaluation, in which case no state
// is touched.
func (t *Tracker) evaluateFast(fix *flight.Fix, index int) (crossed bool, c Containment, ok bool) {
	if !t.store.ValidTaskPointFast(index) {
		return false, c, false
	}
	role := t.store.RoleFast(index)
	if !t.preconditionFast(role) {
		return false, c, false
	}
	sector := t.store.SectorFast(index)
	state := t.roles[role]
	if state.index != index {
		state.wasApproaching = false
		state.index = index
	}

	c = Contains(fix, sector, t.Geometry)
	if !c.Inside {
		state.wasApproaching = false
	}

	if sector.Kind == Circle {
		return c.Inside, c, true
	}

	if c.Inside {
		if state.wasApproaching {
			if !c.Approaching {
				state.wasApproaching = false
				return true, c, true
			}
		} else if c.Approaching {
			state.wasApproaching = true
		}
	}
	return false, c, true
}

// Evaluate applies the crossing rule to task point index for this fix.
func (t *Tracker) Evaluate(fix *flight.Fix, index int) bool {
	t.store.Lock()
	t.syncFast()
	crossed, _, _ := t.evaluateFast(fix, index)
	t.store.Unlock()
	return crossed
}

// EvaluateRole evaluates the task point currently holding role.
func (t *Tracker) EvaluateRole(fix *flight.Fix, role Role) bool {
	t.store.Lock()
	t.syncFast()
	index := -1
	switch role {
	case RoleStart:
		index = 0
	case RoleFinish:
		index = t.store.LenFast() - 1
	case RoleTurnpoint:
		active := t.store.ActiveIndexFast()
		if t.store.RoleFast(active) == RoleTurnpoint {
			index = active
		}
	}
	crossed, _, _ := t.evaluateFast(fix, index)
	t.store.Unlock()
	return crossed
}

// Update evaluates the active task point, advances the task on a crossing and
// returns what happened. While still on the first leg the start stays armed so
// a pilot can restart.
func (t *Tracker) Update(fix *flight.Fix) []Event {
	var events []Event

	t.store.Lock()
	t.syncFast()
	active := t.store.ActiveIndexFast()
	crossed, c, ok := t.evaluateFast(fix, active)
	if ok {
		t.last = c
	}
	if crossed {
		events = append(events, t.advanceFast(fix, active))
	} else if t.started && !t.finished && active == 1 && !t.achievedFast(1) {
		if t.restartFast(fix) {
			t.startTime = fix.Time
			t.achieved[0] = fix.Time
			events = append(events, Event{Kind: EventRestart, Index: 0, Sector: t.store.SectorFast(0).Name, Time: fix.Time})
		}
	}
	t.store.Unlock()

	for _, e := range events {
		slog.Info("task event", "event", e.Kind.String(), "index", e.Index, "sector", e.Sector, "time", e.Time)
	}
	return events
}

// restartFast re-evaluates the start. A cylinder start only counts again after
// the aircraft has been outside of it.
func (t *Tracker) restartFast(fix *flight.Fix) bool {
	crossed, c, ok := t.evaluateFast(fix, 0)
	if !ok {
		return false
	}
	if t.store.SectorFast(0).Kind != Circle {
		return crossed
	}
	if !c.Inside {
		t.leftStart = true
		return false
	}
	if !t.leftStart {
		return false
	}
	t.leftStart = false
	return true
}

func (t *Tracker) achievedFast(i int) bool {
	return i < len(t.achieved) && !t.achieved[i].IsZero()
}

func (t *Tracker) advanceFast(fix *flight.Fix, index int) Event {
	e := Event{Index: index, Sector: t.store.SectorFast(index).Name, Time: fix.Time}
	if index < len(t.achieved) {
		t.achieved[index] = fix.Time
	}
	switch t.store.RoleFast(index) {
	case RoleStart:
		e.Kind = EventStart
		t.started = true
		t.startTime = fix.Time
		t.leftStart = false
	case RoleTurnpoint:
		e.Kind = EventTurnpoint
	case RoleFinish:
		e.Kind = EventFinish
		t.finished = true
		t.finishTime = fix.Time
		return e
	}
	if t.store.ValidTaskPointFast(index + 1) {
		t.store.SetActiveFast(index + 1)
	}
	return e
}

// Last is the containment of the most recently evaluated active task point.
func (t *Tracker) Last() Containment {
	t.store.Lock()
	defer t.store.Unlock()
	return t.last
}

func (t *Tracker) Started() bool {
	t.store.Lock()
	defer t.store.Unlock()
	return t.started
}

func (t *Tracker) Finished() bool {
	t.store.Lock()
	defer t.store.Unlock()
	return t.finished
}

func (t *Tracker) Progress() Progress {
	t.store.Lock()
	defer t.store.Unlock()
	return Progress{
		TaskName:    t.store.name,
		ActiveIndex: t.store.ActiveIndexFast(),
		Started:     t.started,
		Finished:    t.finished,
		StartTime:   t.startTime,
		FinishTime:  t.finishTime,
		Achieved:    append([]time.Time(nil), t.achieved...),
		Sectors:     append([]Sector(nil), t.store.sectors...),
	}
}
