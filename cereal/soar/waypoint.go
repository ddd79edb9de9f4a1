package soar

import (
	"math"

	"capnproto.org/go/capnp/v3"
)

type WaypointKind uint16

const (
	WaypointKind_aerodrome WaypointKind = 0
	WaypointKind_airstrip  WaypointKind = 1
)

func (c WaypointKind) String() string {
	switch c {
	case WaypointKind_aerodrome:
		return "aerodrome"
	case WaypointKind_airstrip:
		return "airstrip"
	}
	return ""
}

type Waypoint capnp.Struct

var waypointSize = capnp.ObjectSize{DataSize: 32, PointerCount: 2}

type Waypoint_List = capnp.StructList[Waypoint]

func NewWaypoint_List(s *capnp.Segment, sz int32) (Waypoint_List, error) {
	l, err := capnp.NewCompositeList(s, waypointSize, sz)
	return capnp.StructList[Waypoint](l), err
}

func (s Waypoint) Latitude() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(0))
}

func (s Waypoint) SetLatitude(v float64) {
	capnp.Struct(s).SetUint64(0, math.Float64bits(v))
}

func (s Waypoint) Longitude() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(8))
}

func (s Waypoint) SetLongitude(v float64) {
	capnp.Struct(s).SetUint64(8, math.Float64bits(v))
}

func (s Waypoint) Elevation() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(16))
}

func (s Waypoint) SetElevation(v float64) {
	capnp.Struct(s).SetUint64(16, math.Float64bits(v))
}

func (s Waypoint) Kind() WaypointKind {
	return WaypointKind(capnp.Struct(s).Uint16(24))
}

func (s Waypoint) SetKind(v WaypointKind) {
	capnp.Struct(s).SetUint16(24, uint16(v))
}

func (s Waypoint) Name() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s Waypoint) SetName(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

func (s Waypoint) Icao() (string, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return p.Text(), err
}

func (s Waypoint) SetIcao(v string) error {
	return capnp.Struct(s).SetText(1, v)
}

type WaypointFile capnp.Struct

var waypointFileSize = capnp.ObjectSize{DataSize: 32, PointerCount: 1}

func NewRootWaypointFile(s *capnp.Segment) (WaypointFile, error) {
	st, err := capnp.NewRootStruct(s, waypointFileSize)
	return WaypointFile(st), err
}

func ReadRootWaypointFile(msg *capnp.Message) (WaypointFile, error) {
	root, err := msg.Root()
	return WaypointFile(root.Struct()), err
}

func (s WaypointFile) MinLatitude() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(0))
}

func (s WaypointFile) SetMinLatitude(v float64) {
	capnp.Struct(s).SetUint64(0, math.Float64bits(v))
}

func (s WaypointFile) MinLongitude() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(8))
}

func (s WaypointFile) SetMinLongitude(v float64) {
	capnp.Struct(s).SetUint64(8, math.Float64bits(v))
}

func (s WaypointFile) MaxLatitude() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(16))
}

func (s WaypointFile) SetMaxLatitude(v float64) {
	capnp.Struct(s).SetUint64(16, math.Float64bits(v))
}

func (s WaypointFile) MaxLongitude() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(24))
}

func (s WaypointFile) SetMaxLongitude(v float64) {
	capnp.Struct(s).SetUint64(24, math.Float64bits(v))
}

func (s WaypointFile) Waypoints() (Waypoint_List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return Waypoint_List(p.List()), err
}

func (s WaypointFile) NewWaypoints(n int32) (Waypoint_List, error) {
	l, err := NewWaypoint_List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return Waypoint_List{}, err
	}
	err = capnp.Struct(s).SetPtr(0, l.ToPtr())
	return l, err
}
