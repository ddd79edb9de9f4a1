package task

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pfeifer.dev/soard/flight"
	m "pfeifer.dev/soard/math"
)

var origin = m.NewPosition(45, 7)

func fixAt(p m.Position, bearing float64, distance float64) *flight.Fix {
	pos := p.Offset(bearing, distance)
	return &flight.Fix{Latitude: pos.Lat(), Longitude: pos.Lon(), Time: time.Unix(1700000000, 0)}
}

func lineSector(center m.Position) Sector {
	return Sector{Name: "line", Center: center, Radius: 1000, Kind: Line, Inbound: 90}
}

func TestContainsRadius(t *testing.T) {
	sector := Sector{Center: origin, Radius: 1000, Kind: Circle}

	t.Run("outside regardless of bearing", func(t *testing.T) {
		for brg := 0.0; brg < 360; brg += 10 {
			for _, kind := range []SectorKind{Circle, Line, Fai90} {
				sector.Kind = kind
				c := Contains(fixAt(origin, brg, 1500), &sector, DefaultGeometry())
				assert.False(t, c.Inside, "bearing %v kind %v", brg, kind)
			}
		}
	})

	t.Run("exactly on the radius is outside", func(t *testing.T) {
		fix := fixAt(origin, 33, 1000)
		pos := fix.Position()
		onEdge := Sector{Center: origin, Radius: pos.DistanceTo(origin), Kind: Circle}
		assert.False(t, Contains(fix, &onEdge, DefaultGeometry()).Inside)

		onEdge.Radius += 0.001
		assert.True(t, Contains(fix, &onEdge, DefaultGeometry()).Inside)
	})

	t.Run("circle never approaches", func(t *testing.T) {
		sector.Kind = Circle
		c := Contains(fixAt(origin, 270, 100), &sector, DefaultGeometry())
		assert.True(t, c.Inside)
		assert.False(t, c.Approaching)
		assert.InDelta(t, 100, c.Distance, 0.01)
		assert.InDelta(t, 90, c.Bearing, 0.01)
	})
}

func TestContainsApproach(t *testing.T) {
	line := lineSector(origin)
	fai := line
	fai.Kind = Fai90
	g := DefaultGeometry()

	cases := []struct {
		name         string
		fromCenter   float64 // bearing from the center to the fix
		line, fai90  bool
	}{
		{"on course", 270, true, true},
		{"past the point", 90, false, false},
		{"60 off course", 330, true, true},
		{"120 off course", 30, false, true},
		{"-120 off course", 150, false, true},
		{"150 off course", 60, false, false},
		{"-150 off course", 120, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fix := fixAt(origin, tc.fromCenter, 500)
			assert.Equal(t, tc.line, Contains(fix, &line, g).Approaching)
			assert.Equal(t, tc.fai90, Contains(fix, &fai, g).Approaching)
		})
	}

	t.Run("half angles are configurable", func(t *testing.T) {
		narrow := Geometry{LineHalfAngle: 45, FaiHalfAngle: 100}
		assert.False(t, Contains(fixAt(origin, 330, 500), &line, narrow).Approaching)
		assert.False(t, Contains(fixAt(origin, 30, 500), &fai, narrow).Approaching)
		assert.True(t, Contains(fixAt(origin, 270, 500), &fai, narrow).Approaching)
	})
}

func TestApproachConeBoundaries(t *testing.T) {
	// due south of the center, so the bearing to it is exactly north
	fix := &flight.Fix{Latitude: origin.Lat() - 0.005, Longitude: origin.Lon()}
	g := DefaultGeometry()

	cases := []struct {
		offCourse   float64
		line, fai90 bool
	}{
		{90, true, true},
		{-90, true, true},
		{90.001, false, true},
		{-90.001, false, true},
		{135, false, true},
		{-135, false, true},
		{135.001, false, false},
		{-135.001, false, false},
	}
	for _, tc := range cases {
		line := Sector{Center: origin, Radius: 1000, Kind: Line, Inbound: -tc.offCourse}
		fai := line
		fai.Kind = Fai90

		c := Contains(fix, &line, g)
		require.True(t, c.Inside)
		require.Equal(t, 0.0, c.Bearing)
		assert.Equal(t, tc.line, c.Approaching, "line at %v", tc.offCourse)
		assert.Equal(t, tc.fai90, Contains(fix, &fai, g).Approaching, "fai90 at %v", tc.offCourse)
	}
}

func newLineTask() (*Store, *Tracker) {
	a := origin
	b := a.Offset(90, 20000)
	c := b.Offset(90, 20000)
	store := NewStore("test", []Sector{
		{Name: "A", Center: a, Radius: 1000, Kind: Line, Inbound: 90},
		{Name: "B", Center: b, Radius: 500, Kind: Circle},
		{Name: "C", Center: c, Radius: 1000, Kind: Line, Inbound: 90},
	})
	return store, NewTracker(store, DefaultGeometry())
}

func TestLineHysteresis(t *testing.T) {
	_, tracker := newLineTask()
	west := fixAt(origin, 270, 300)
	east := fixAt(origin, 90, 300)

	t.Run("crossing needs an armed approach", func(t *testing.T) {
		assert.False(t, tracker.Evaluate(east, 0))
		assert.False(t, tracker.Evaluate(west, 0))
		assert.True(t, tracker.Evaluate(east, 0))
	})

	t.Run("same fix twice does not cross twice", func(t *testing.T) {
		assert.False(t, tracker.Evaluate(east, 0))
		assert.False(t, tracker.Evaluate(east, 0))
	})

	t.Run("re-approaching needs a new departure", func(t *testing.T) {
		assert.False(t, tracker.Evaluate(west, 0))
		assert.False(t, tracker.Evaluate(west, 0))
		assert.True(t, tracker.Evaluate(east, 0))
	})

	t.Run("leaving the radius disarms", func(t *testing.T) {
		assert.False(t, tracker.Evaluate(west, 0))
		assert.False(t, tracker.Evaluate(fixAt(origin, 270, 1000.5), 0))
		assert.False(t, tracker.Evaluate(east, 0))
	})

	t.Run("grazing the line sideways does not cross", func(t *testing.T) {
		tracker.Reset()
		north := fixAt(origin, 350, 600)
		assert.False(t, tracker.Evaluate(north, 0))
		assert.False(t, tracker.Evaluate(fixAt(origin, 340, 1200), 0))
		assert.False(t, tracker.Evaluate(fixAt(origin, 20, 1200), 0))
	})
}

func TestCircleIsStateless(t *testing.T) {
	store := NewStore("circle", []Sector{
		{Name: "S", Center: origin, Radius: 1000, Kind: Circle},
		{Name: "F", Center: origin.Offset(0, 30000), Radius: 1000, Kind: Circle},
	})
	tracker := NewTracker(store, DefaultGeometry())

	inside := fixAt(origin, 10, 900)
	outside := fixAt(origin, 10, 1100)
	assert.True(t, tracker.Evaluate(inside, 0))
	assert.True(t, tracker.Evaluate(inside, 0))
	assert.False(t, tracker.Evaluate(outside, 0))
	assert.True(t, tracker.Evaluate(inside, 0))
	assert.True(t, tracker.EvaluateRole(inside, RoleStart))
}

func TestPreconditions(t *testing.T) {
	_, tracker := newLineTask()
	c := tracker.Store().Sectors()[2].Center

	assert.False(t, tracker.Evaluate(fixAt(origin, 270, 300), -1))
	assert.False(t, tracker.Evaluate(fixAt(origin, 270, 300), 3))

	// finish is not evaluated before a valid start
	assert.False(t, tracker.Evaluate(fixAt(c, 270, 300), 2))
	assert.False(t, tracker.Evaluate(fixAt(c, 90, 300), 2))
	assert.False(t, tracker.EvaluateRole(fixAt(c, 90, 300), RoleFinish))
}

func TestRolesDoNotShareState(t *testing.T) {
	_, tracker := newLineTask()
	c := tracker.Store().Sectors()[2].Center

	require.Len(t, tracker.Update(fixAt(origin, 270, 300)), 0)
	require.Len(t, tracker.Update(fixAt(origin, 90, 300)), 1)
	require.True(t, tracker.Started())

	// arm the start role only
	assert.False(t, tracker.Evaluate(fixAt(origin, 270, 300), 0))

	// the finish role has never been armed
	assert.False(t, tracker.Evaluate(fixAt(c, 90, 300), 2))
	assert.False(t, tracker.Evaluate(fixAt(c, 270, 300), 2))
	assert.True(t, tracker.Evaluate(fixAt(c, 90, 300), 2))
}

func TestUpdateWalksTheTask(t *testing.T) {
	store, tracker := newLineTask()
	sectors := store.Sectors()
	b, c := sectors[1].Center, sectors[2].Center

	kinds := func(events []Event) []EventKind {
		res := []EventKind{}
		for _, e := range events {
			res = append(res, e.Kind)
		}
		return res
	}

	assert.Empty(t, tracker.Update(fixAt(origin, 270, 300)))
	assert.Equal(t, []EventKind{EventStart}, kinds(tracker.Update(fixAt(origin, 90, 300))))
	assert.Equal(t, 1, store.ActiveIndex())
	assert.Empty(t, tracker.Update(fixAt(origin, 90, 300)))

	assert.Empty(t, tracker.Update(fixAt(origin, 90, 10000)))
	events := tracker.Update(fixAt(b, 0, 100))
	require.Len(t, events, 1)
	assert.Equal(t, EventTurnpoint, events[0].Kind)
	assert.Equal(t, "B", events[0].Sector)
	assert.Equal(t, 2, store.ActiveIndex())

	assert.Empty(t, tracker.Update(fixAt(c, 270, 300)))
	assert.Equal(t, []EventKind{EventFinish}, kinds(tracker.Update(fixAt(c, 90, 300))))
	assert.True(t, tracker.Finished())
	assert.Equal(t, 2, store.ActiveIndex())
	assert.Empty(t, tracker.Update(fixAt(c, 270, 300)))
	assert.Empty(t, tracker.Update(fixAt(c, 90, 300)))

	progress := tracker.Progress()
	assert.True(t, progress.Started)
	assert.True(t, progress.Finished)
	assert.Len(t, progress.Achieved, 3)
	for _, a := range progress.Achieved {
		assert.False(t, a.IsZero())
	}

	tracker.Reset()
	assert.Equal(t, 0, store.ActiveIndex())
	assert.False(t, tracker.Started())
	assert.False(t, tracker.Finished())
}

func TestRestart(t *testing.T) {
	_, tracker := newLineTask()

	tracker.Update(fixAt(origin, 270, 300))
	require.Len(t, tracker.Update(fixAt(origin, 90, 300)), 1)

	later := fixAt(origin, 270, 300)
	later.Time = later.Time.Add(10 * time.Minute)
	assert.Empty(t, tracker.Update(later))

	again := fixAt(origin, 90, 300)
	again.Time = later.Time.Add(time.Minute)
	events := tracker.Update(again)
	require.Len(t, events, 1)
	assert.Equal(t, EventRestart, events[0].Kind)
	assert.Equal(t, again.Time, tracker.Progress().StartTime)
	assert.Equal(t, 1, tracker.Store().ActiveIndex())
}

func TestRestartOnTwoPointTask(t *testing.T) {
	store := NewStore("dash", []Sector{
		{Name: "A", Center: origin, Radius: 1000, Kind: Line, Inbound: 90},
		{Name: "F", Center: origin.Offset(90, 30000), Radius: 1000, Kind: Line, Inbound: 90},
	})
	tracker := NewTracker(store, DefaultGeometry())

	tracker.Update(fixAt(origin, 270, 300))
	require.Len(t, tracker.Update(fixAt(origin, 90, 300)), 1)
	assert.Equal(t, 1, store.ActiveIndex())

	back := fixAt(origin, 270, 300)
	back.Time = back.Time.Add(5 * time.Minute)
	assert.Empty(t, tracker.Update(back))

	again := fixAt(origin, 90, 300)
	again.Time = back.Time.Add(time.Minute)
	events := tracker.Update(again)
	require.Len(t, events, 1)
	assert.Equal(t, EventRestart, events[0].Kind)
	assert.Equal(t, again.Time, tracker.Progress().StartTime)

	f := store.Sectors()[1].Center
	tracker.Update(fixAt(f, 270, 300))
	events = tracker.Update(fixAt(f, 90, 300))
	require.Len(t, events, 1)
	assert.Equal(t, EventFinish, events[0].Kind)
	assert.Empty(t, tracker.Update(fixAt(origin, 270, 300)))
	assert.Empty(t, tracker.Update(fixAt(origin, 90, 300)))
}

func TestCylinderRestartNeedsExit(t *testing.T) {
	store := NewStore("cylinder", []Sector{
		{Name: "S", Center: origin, Radius: 1000, Kind: Circle},
		{Name: "T", Center: origin.Offset(0, 20000), Radius: 500, Kind: Circle},
		{Name: "F", Center: origin.Offset(0, 40000), Radius: 500, Kind: Circle},
	})
	tracker := NewTracker(store, DefaultGeometry())

	inside := fixAt(origin, 0, 500)
	require.Len(t, tracker.Update(inside), 1)
	assert.Empty(t, tracker.Update(inside))
	assert.Empty(t, tracker.Update(inside))
	assert.Empty(t, tracker.Update(fixAt(origin, 0, 2000)))

	events := tracker.Update(inside)
	require.Len(t, events, 1)
	assert.Equal(t, EventRestart, events[0].Kind)
}

func TestEditResetsHysteresis(t *testing.T) {
	store, tracker := newLineTask()

	assert.False(t, tracker.Evaluate(fixAt(origin, 270, 300), 0))
	require.NoError(t, store.Insert(3, Sector{Name: "D", Center: origin.Offset(180, 5000), Radius: 500}))
	assert.False(t, tracker.Evaluate(fixAt(origin, 90, 300), 0))
	assert.Len(t, tracker.Progress().Achieved, 4)
}

func TestStoreEdits(t *testing.T) {
	mk := func(names ...string) []Sector {
		res := []Sector{}
		for _, n := range names {
			res = append(res, Sector{Name: n, Radius: 1})
		}
		return res
	}
	names := func(s *Store) []string {
		res := []string{}
		for _, sector := range s.Sectors() {
			res = append(res, sector.Name)
		}
		return res
	}

	store := NewStore("edit", mk("A", "B", "C", "D"))
	require.NoError(t, store.SetActive(2))

	require.NoError(t, store.Move(0, 3))
	assert.Equal(t, []string{"B", "C", "D", "A"}, names(store))
	assert.Equal(t, 1, store.ActiveIndex())

	require.NoError(t, store.Move(3, 0))
	assert.Equal(t, []string{"A", "B", "C", "D"}, names(store))
	assert.Equal(t, 2, store.ActiveIndex())

	require.NoError(t, store.Insert(1, Sector{Name: "X"}))
	assert.Equal(t, []string{"A", "X", "B", "C", "D"}, names(store))
	assert.Equal(t, 3, store.ActiveIndex())

	require.NoError(t, store.Remove(0))
	assert.Equal(t, 2, store.ActiveIndex())
	require.NoError(t, store.Remove(4-1))
	assert.Equal(t, []string{"X", "B", "C"}, names(store))
	assert.Equal(t, 2, store.ActiveIndex())

	assert.Error(t, store.Remove(7))
	assert.Error(t, store.Insert(9, Sector{}))
	assert.Error(t, store.Move(0, 5))
	assert.Error(t, store.SetActive(-1))
	assert.True(t, store.ValidActive())

	store.Replace("new", mk("Q"))
	assert.Equal(t, "new", store.Name())
	assert.Equal(t, 0, store.ActiveIndex())
	assert.Equal(t, 1, store.Len())
}

func TestConcurrentEdits(t *testing.T) {
	store, tracker := newLineTask()
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			_ = store.Insert(store.Len(), Sector{Name: "extra", Center: origin, Radius: 10})
			_ = store.Remove(store.Len() - 1)
		}
	}()

	for i := range 2000 {
		brg := 270.0
		if i%2 == 1 {
			brg = 90
		}
		tracker.Update(fixAt(origin, brg, 300))
		tracker.Progress()
	}
	close(done)
	wg.Wait()
}

type fakeResolver map[string]m.Position

func (r fakeResolver) Find(name string) (m.Position, bool) {
	p, ok := r[name]
	return p, ok
}

func TestBuildDefinition(t *testing.T) {
	data := []byte(`{
		"name": "triangle",
		"sectors": [
			{"waypoint": "HOME", "radius": 1000, "kind": "line"},
			{"name": "TP1", "latitude": 45.2, "longitude": 7.0, "radius": 500},
			{"name": "F", "waypoint": "HOME", "radius": 1000, "kind": "fai90", "inbound": 370}
		]
	}`)
	def, err := ParseDefinition(data)
	require.NoError(t, err)
	assert.Equal(t, "triangle", def.Name)

	sectors, err := def.Build(fakeResolver{"HOME": origin})
	require.NoError(t, err)
	require.Len(t, sectors, 3)

	assert.Equal(t, "HOME", sectors[0].Name)
	assert.Equal(t, Line, sectors[0].Kind)
	assert.Equal(t, Circle, sectors[1].Kind)
	assert.Equal(t, Fai90, sectors[2].Kind)

	// start faces the first leg, turnpoints face the leg they end
	assert.InDelta(t, 0, m.AngleLimit180(sectors[0].Inbound), 0.01)
	assert.InDelta(t, 0, m.AngleLimit180(sectors[1].Inbound), 0.01)
	assert.InDelta(t, 10, sectors[2].Inbound, 1e-9)

	t.Run("errors", func(t *testing.T) {
		bad := []string{
			`{"sectors": []}`,
			`{"sectors": [{"radius": 100}]}`,
			`{"sectors": [{"waypoint": "NOPE", "radius": 100}]}`,
			`{"sectors": [{"latitude": 1, "longitude": 2, "radius": 0}]}`,
		}
		for _, b := range bad {
			def, err := ParseDefinition([]byte(b))
			require.NoError(t, err)
			_, err = def.Build(fakeResolver{})
			assert.Error(t, err, b)
		}

		_, err := ParseDefinition([]byte(`{"sectors": [{"kind": "triangle"}]}`))
		assert.Error(t, err)

		def, err := ParseDefinition([]byte(`{"sectors": [{"waypoint": "HOME", "radius": 100}]}`))
		require.NoError(t, err)
		_, err = def.Build(nil)
		assert.Error(t, err)
	})
}
