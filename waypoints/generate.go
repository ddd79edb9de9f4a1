package waypoints

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"capnproto.org/go/capnp/v3"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"
	"pfeifer.dev/soard/cereal/soar"
	m "pfeifer.dev/soard/math"
	"pfeifer.dev/soard/params"
)

type GenerateSettings struct {
	Bounds     m.Box
	InputFile  string
	OutputFile string
}

func DefaultPath() string {
	return filepath.Join(params.BasePath, "waypoints")
}

func DefaultGenerateSettings() GenerateSettings {
	return GenerateSettings{
		Bounds:     m.WorldBox(),
		InputFile:  "./map.osm.pbf",
		OutputFile: DefaultPath(),
	}
}

// FromNode turns an aerodrome or airstrip node into a waypoint.
func FromNode(node *osm.Node) (Waypoint, bool) {
	wp := Waypoint{}
	switch node.Tags.Find("aeroway") {
	case "aerodrome":
		wp.Kind = soar.WaypointKind_aerodrome
	case "airstrip":
		wp.Kind = soar.WaypointKind_airstrip
	default:
		return wp, false
	}
	wp.Name = strings.TrimSpace(node.Tags.Find("name"))
	wp.Icao = strings.ToUpper(strings.TrimSpace(node.Tags.Find("icao")))
	if wp.Name == "" {
		wp.Name = wp.Icao
	}
	if wp.Name == "" {
		return wp, false
	}
	wp.Position = m.NewPosition(node.Lat, node.Lon)
	wp.Elevation = parseElevation(node.Tags.Find("ele"))
	return wp, true
}

// parseElevation reads an OSM ele tag in meters, NaN when missing.
func parseElevation(ele string) float64 {
	fields := strings.Fields(ele)
	if len(fields) == 0 {
		return nan
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nan
	}
	if len(fields) > 1 && (fields[1] == "ft" || fields[1] == "feet") {
		return v * 0.3048
	}
	return v
}

// Scan collects the waypoints within bounds from an OSM pbf stream.
func Scan(ctx context.Context, r io.Reader, bounds m.Box) ([]Waypoint, error) {
	// The third parameter is the number of parallel decoders to use.
	scanner := osmpbf.New(ctx, r, runtime.GOMAXPROCS(-1))
	scanner.SkipWays = true
	scanner.SkipRelations = true
	defer scanner.Close()

	res := []Waypoint{}
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		wp, ok := FromNode(node)
		if !ok || !bounds.PosInside(wp.Position) {
			continue
		}
		res = append(res, wp)
	}
	return res, errors.Wrap(scanner.Err(), "could not scan pbf file")
}

// Write stores the waypoints as a packed capnp file.
func Write(path string, wps []Waypoint) error {
	arena := capnp.SingleSegment(nil)
	msg, seg, err := capnp.NewMessage(arena)
	if err != nil {
		return errors.Wrap(err, "could not create capnp arena for waypoints")
	}
	root, err := soar.NewRootWaypointFile(seg)
	if err != nil {
		return errors.Wrap(err, "could not create capnp waypoint root")
	}

	positions := make([]m.Position, len(wps))
	for i, wp := range wps {
		positions[i] = wp.Position
	}
	bounds := m.BoundsAround(positions)
	root.SetMinLatitude(bounds.MinPos.Lat())
	root.SetMinLongitude(bounds.MinPos.Lon())
	root.SetMaxLatitude(bounds.MaxPos.Lat())
	root.SetMaxLongitude(bounds.MaxPos.Lon())

	list, err := root.NewWaypoints(int32(len(wps)))
	if err != nil {
		return errors.Wrap(err, "could not create waypoint list")
	}
	for i, wp := range wps {
		w := list.At(i)
		w.SetLatitude(wp.Position.Lat())
		w.SetLongitude(wp.Position.Lon())
		w.SetElevation(wp.Elevation)
		w.SetKind(wp.Kind)
		if err := w.SetName(wp.Name); err != nil {
			return errors.Wrap(err, "could not set waypoint name")
		}
		if err := w.SetIcao(wp.Icao); err != nil {
			return errors.Wrap(err, "could not set waypoint icao")
		}
	}

	data, err := msg.MarshalPacked()
	if err != nil {
		return errors.Wrap(err, "could not marshal waypoints")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o775); err != nil {
		return errors.Wrap(err, "could not create waypoint directory")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "could not write waypoint file")
}

func Generate(ctx context.Context, s GenerateSettings) (int, error) {
	slog.Info("Generating waypoints", "input", s.InputFile, "output", s.OutputFile)
	file, err := os.Open(s.InputFile)
	if err != nil {
		return 0, errors.Wrap(err, "could not open map pbf file")
	}
	defer file.Close()

	wps, err := Scan(ctx, file, s.Bounds)
	if err != nil {
		return 0, err
	}
	if err := Write(s.OutputFile, wps); err != nil {
		return 0, err
	}
	slog.Info("Done generating waypoints", "count", len(wps))
	return len(wps), nil
}
