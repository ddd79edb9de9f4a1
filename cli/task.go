package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	m "pfeifer.dev/soard/math"
	"pfeifer.dev/soard/params"
	"pfeifer.dev/soard/task"
	"pfeifer.dev/soard/waypoints"
)

// loadResolver opens the waypoint database if one was generated.
func loadResolver(path string) task.Resolver {
	db, err := waypoints.Load(path)
	if err != nil {
		return nil
	}
	return db
}

// loadTaskFile validates a task file and stores it as the active task.
func loadTaskFile(path string, resolver task.Resolver) (task.Definition, []task.Sector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return task.Definition{}, nil, errors.Wrap(err, "could not read task file")
	}
	def, err := task.ParseDefinition(data)
	if err != nil {
		return def, nil, err
	}
	sectors, err := def.Build(resolver)
	if err != nil {
		return def, nil, err
	}
	return def, sectors, task.SaveDefinition(def)
}

func printTask(w io.Writer, name string, sectors []task.Sector) {
	fmt.Fprintf(w, "task: %s\n", name)
	total := 0.0
	for i, s := range sectors {
		leg := 0.0
		if i > 0 {
			prev := sectors[i-1].Center
			leg = prev.DistanceTo(s.Center)
			total += leg
		}
		fmt.Fprintf(w, "%2d %-20s %-7s r=%.0fm inbound=%03.0f lat=%.5f lon=%.5f leg=%.1fkm\n",
			i, s.Name, s.Kind, s.Radius, m.AngleLimit360(s.Inbound), s.Center.Lat(), s.Center.Lon(), leg/1000)
	}
	fmt.Fprintf(w, "distance: %.1fkm\n", total/1000)
}

func showTask(w io.Writer, resolver task.Resolver) error {
	def, err := task.LoadDefinition()
	if err != nil {
		return err
	}
	sectors, err := def.Build(resolver)
	if err != nil {
		return err
	}
	printTask(w, def.Name, sectors)
	return nil
}

// printParams lists the stored params. Text values are shown inline.
func printParams(w io.Writer) error {
	names, err := params.GetParams()
	if err != nil {
		return err
	}
	for _, name := range names {
		data, err := params.GetParam(name)
		if err != nil {
			return err
		}
		if params.IsString(data) {
			fmt.Fprintf(w, "%s: %s\n", name, data)
		} else {
			fmt.Fprintf(w, "%s: <%d bytes>\n", name, len(data))
		}
	}
	return nil
}

func printNearest(w io.Writer, db *waypoints.Database, pos m.Position) error {
	wp, distance, ok := db.Nearest(pos)
	if !ok {
		return errors.New("waypoint database is empty")
	}
	fmt.Fprintf(w, "%s %s %s %.1fkm bearing %03.0f\n", wp.Name, wp.Icao, wp.Kind, distance/1000, pos.BearingTo(wp.Position))
	return nil
}
