package waypoints

import (
	"math"
	"os"
	"strings"

	"capnproto.org/go/capnp/v3"
	"github.com/pkg/errors"
	"pfeifer.dev/soard/cereal/soar"
	m "pfeifer.dev/soard/math"
)

var nan = math.NaN()

type Waypoint struct {
	Name      string
	Icao      string
	Kind      soar.WaypointKind
	Position  m.Position
	Elevation float64 // meters, NaN when unknown
}

// Database is a read only set of named waypoints used to resolve task points.
type Database struct {
	waypoints []Waypoint
	index     map[string]int
}

func key(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func NewDatabase(wps []Waypoint) *Database {
	d := &Database{
		waypoints: wps,
		index:     make(map[string]int, 2*len(wps)),
	}
	for i, wp := range wps {
		if wp.Icao != "" {
			if _, ok := d.index[key(wp.Icao)]; !ok {
				d.index[key(wp.Icao)] = i
			}
		}
		if _, ok := d.index[key(wp.Name)]; !ok {
			d.index[key(wp.Name)] = i
		}
	}
	return d
}

func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read waypoint file")
	}
	msg, err := capnp.UnmarshalPacked(data)
	if err != nil {
		return nil, errors.Wrap(err, "could not unmarshal waypoint file")
	}
	root, err := soar.ReadRootWaypointFile(msg)
	if err != nil {
		return nil, errors.Wrap(err, "could not read waypoint root")
	}
	list, err := root.Waypoints()
	if err != nil {
		return nil, errors.Wrap(err, "could not read waypoint list")
	}

	wps := make([]Waypoint, list.Len())
	for i := range list.Len() {
		w := list.At(i)
		name, err := w.Name()
		if err != nil {
			return nil, errors.Wrap(err, "could not read waypoint name")
		}
		icao, err := w.Icao()
		if err != nil {
			return nil, errors.Wrap(err, "could not read waypoint icao")
		}
		wps[i] = Waypoint{
			Name:      name,
			Icao:      icao,
			Kind:      w.Kind(),
			Position:  m.NewPosition(w.Latitude(), w.Longitude()),
			Elevation: w.Elevation(),
		}
	}
	return NewDatabase(wps), nil
}

// Find looks a waypoint up by ICAO code or name, ignoring case.
func (d *Database) Find(name string) (m.Position, bool) {
	wp, ok := d.Lookup(name)
	return wp.Position, ok
}

func (d *Database) Lookup(name string) (Waypoint, bool) {
	if d == nil {
		return Waypoint{}, false
	}
	i, ok := d.index[key(name)]
	if !ok {
		return Waypoint{}, false
	}
	return d.waypoints[i], true
}

// Nearest returns the closest waypoint to p and its distance in meters.
func (d *Database) Nearest(p m.Position) (Waypoint, float64, bool) {
	if d == nil || len(d.waypoints) == 0 {
		return Waypoint{}, 0, false
	}
	best := 0
	bestDistance := math.Inf(1)
	for i := range d.waypoints {
		distance := p.DistanceTo(d.waypoints[i].Position)
		if distance < bestDistance {
			best = i
			bestDistance = distance
		}
	}
	return d.waypoints[best], bestDistance, true
}

func (d *Database) Len() int {
	if d == nil {
		return 0
	}
	return len(d.waypoints)
}
