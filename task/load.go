package task

import (
	"encoding/json"

	"github.com/pkg/errors"
	m "pfeifer.dev/soard/math"
	"pfeifer.dev/soard/params"
)

type SectorDefinition struct {
	Name      string     `json:"name"`
	Waypoint  string     `json:"waypoint,omitempty"`
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
	Radius    float64    `json:"radius"`
	Kind      SectorKind `json:"kind"`
	Inbound   *float64   `json:"inbound,omitempty"`
}

// Definition is the task document the task editor stores in params.
type Definition struct {
	Name    string             `json:"name"`
	Sectors []SectorDefinition `json:"sectors"`
}

// Resolver looks up a named waypoint.
type Resolver interface {
	Find(name string) (m.Position, bool)
}

func ParseDefinition(data []byte) (Definition, error) {
	def := Definition{}
	err := json.Unmarshal(data, &def)
	return def, errors.Wrap(err, "could not parse task definition")
}

// Build resolves every sector position and fills in missing inbound courses.
func (d *Definition) Build(resolver Resolver) ([]Sector, error) {
	if len(d.Sectors) == 0 {
		return nil, errors.New("task has no sectors")
	}
	sectors := make([]Sector, len(d.Sectors))
	explicit := make([]bool, len(d.Sectors))
	for i, def := range d.Sectors {
		s := Sector{Name: def.Name, Radius: def.Radius, Kind: def.Kind}
		switch {
		case def.Latitude != nil && def.Longitude != nil:
			s.Center = m.NewPosition(*def.Latitude, *def.Longitude)
		case def.Waypoint != "":
			if resolver == nil {
				return nil, errors.Errorf("sector %d references waypoint %q but no waypoint database is loaded", i, def.Waypoint)
			}
			pos, ok := resolver.Find(def.Waypoint)
			if !ok {
				return nil, errors.Errorf("sector %d references unknown waypoint %q", i, def.Waypoint)
			}
			s.Center = pos
			if s.Name == "" {
				s.Name = def.Waypoint
			}
		default:
			return nil, errors.Errorf("sector %d has no position", i)
		}
		if s.Radius <= 0 {
			return nil, errors.Errorf("sector %d has radius %f", i, s.Radius)
		}
		if def.Inbound != nil {
			s.Inbound = m.AngleLimit360(*def.Inbound)
			explicit[i] = true
		}
		sectors[i] = s
	}
	ComputeInbound(sectors, explicit)
	return sectors, nil
}

// ComputeInbound sets the approach course of every sector not marked explicit:
// the course from the previous point, or for the start the course out to the
// first turnpoint.
func ComputeInbound(sectors []Sector, explicit []bool) {
	for i := range sectors {
		if i < len(explicit) && explicit[i] {
			continue
		}
		switch {
		case i > 0:
			prev := sectors[i-1].Center
			sectors[i].Inbound = prev.BearingTo(sectors[i].Center)
		case len(sectors) > 1:
			sectors[i].Inbound = sectors[0].Center.BearingTo(sectors[1].Center)
		}
	}
}

func LoadDefinition() (Definition, error) {
	data, err := params.GetParam(params.ACTIVE_TASK)
	if err != nil {
		return Definition{}, err
	}
	return ParseDefinition(data)
}

func SaveDefinition(def Definition) error {
	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not marshal task definition")
	}
	return params.PutParam(params.ACTIVE_TASK, data)
}

func ClearDefinition() error {
	return params.RemoveParam(params.ACTIVE_TASK)
}

// LoadInto replaces the store's task with the one saved in params.
func LoadInto(store *Store, resolver Resolver) error {
	def, err := LoadDefinition()
	if err != nil {
		return err
	}
	sectors, err := def.Build(resolver)
	if err != nil {
		return err
	}
	store.Replace(def.Name, sectors)
	return nil
}
