// Package soar holds the capnp accessors for the structs described in
// soar.capnp.
package soar

import (
	"math"
	"strconv"

	"capnproto.org/go/capnp/v3"
	"github.com/pkg/errors"
)

type Event capnp.Struct

type Event_Which uint16

const (
	Event_Which_fix             Event_Which = 0
	Event_Which_soarIn          Event_Which = 1
	Event_Which_soarOut         Event_Which = 2
	Event_Which_soarExtendedOut Event_Which = 3
)

func (w Event_Which) String() string {
	switch w {
	case Event_Which_fix:
		return "fix"
	case Event_Which_soarIn:
		return "soarIn"
	case Event_Which_soarOut:
		return "soarOut"
	case Event_Which_soarExtendedOut:
		return "soarExtendedOut"
	}
	return "Event_Which(" + strconv.Itoa(int(w)) + ")"
}

var eventSize = capnp.ObjectSize{DataSize: 16, PointerCount: 1}

func NewEvent(s *capnp.Segment) (Event, error) {
	st, err := capnp.NewStruct(s, eventSize)
	return Event(st), err
}

func NewRootEvent(s *capnp.Segment) (Event, error) {
	st, err := capnp.NewRootStruct(s, eventSize)
	return Event(st), err
}

func ReadRootEvent(msg *capnp.Message) (Event, error) {
	root, err := msg.Root()
	return Event(root.Struct()), err
}

func (s Event) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s Event) Which() Event_Which {
	return Event_Which(capnp.Struct(s).Uint16(10))
}

func (s Event) LogMonoTime() uint64 {
	return capnp.Struct(s).Uint64(0)
}

func (s Event) SetLogMonoTime(v uint64) {
	capnp.Struct(s).SetUint64(0, v)
}

func (s Event) Valid() bool {
	return capnp.Struct(s).Bit(64)
}

func (s Event) SetValid(v bool) {
	capnp.Struct(s).SetBit(64, v)
}

func (s Event) union(which Event_Which) (capnp.Struct, error) {
	if s.Which() != which {
		return capnp.Struct{}, errors.Errorf("event holds %s, not %s", s.Which(), which)
	}
	p, err := capnp.Struct(s).Ptr(0)
	return p.Struct(), err
}

func (s Event) setUnion(which Event_Which, v capnp.Struct) error {
	capnp.Struct(s).SetUint16(10, uint16(which))
	return capnp.Struct(s).SetPtr(0, v.ToPtr())
}

func (s Event) Fix() (Fix, error) {
	st, err := s.union(Event_Which_fix)
	return Fix(st), err
}

func (s Event) NewFix() (Fix, error) {
	v, err := NewFix(s.Segment())
	if err != nil {
		return Fix{}, err
	}
	return v, s.setUnion(Event_Which_fix, capnp.Struct(v))
}

func (s Event) SoarIn() (SoarIn, error) {
	st, err := s.union(Event_Which_soarIn)
	return SoarIn(st), err
}

func (s Event) NewSoarIn() (SoarIn, error) {
	v, err := NewSoarIn(s.Segment())
	if err != nil {
		return SoarIn{}, err
	}
	return v, s.setUnion(Event_Which_soarIn, capnp.Struct(v))
}

func (s Event) SoarOut() (SoarOut, error) {
	st, err := s.union(Event_Which_soarOut)
	return SoarOut(st), err
}

func (s Event) NewSoarOut() (SoarOut, error) {
	v, err := NewSoarOut(s.Segment())
	if err != nil {
		return SoarOut{}, err
	}
	return v, s.setUnion(Event_Which_soarOut, capnp.Struct(v))
}

func (s Event) SoarExtendedOut() (SoarExtendedOut, error) {
	st, err := s.union(Event_Which_soarExtendedOut)
	return SoarExtendedOut(st), err
}

func (s Event) NewSoarExtendedOut() (SoarExtendedOut, error) {
	v, err := NewSoarExtendedOut(s.Segment())
	if err != nil {
		return SoarExtendedOut{}, err
	}
	return v, s.setUnion(Event_Which_soarExtendedOut, capnp.Struct(v))
}

type Fix capnp.Struct

var fixSize = capnp.ObjectSize{DataSize: 104, PointerCount: 0}

func NewFix(s *capnp.Segment) (Fix, error) {
	st, err := capnp.NewStruct(s, fixSize)
	return Fix(st), err
}

func (s Fix) Latitude() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(0))
}

func (s Fix) SetLatitude(v float64) {
	capnp.Struct(s).SetUint64(0, math.Float64bits(v))
}

func (s Fix) Longitude() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(8))
}

func (s Fix) SetLongitude(v float64) {
	capnp.Struct(s).SetUint64(8, math.Float64bits(v))
}

func (s Fix) GroundSpeed() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(16))
}

func (s Fix) SetGroundSpeed(v float64) {
	capnp.Struct(s).SetUint64(16, math.Float64bits(v))
}

func (s Fix) Track() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(24))
}

func (s Fix) SetTrack(v float64) {
	capnp.Struct(s).SetUint64(24, math.Float64bits(v))
}

func (s Fix) TurnRate() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(32))
}

func (s Fix) SetTurnRate(v float64) {
	capnp.Struct(s).SetUint64(32, math.Float64bits(v))
}

func (s Fix) AccelZ() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(40))
}

func (s Fix) SetAccelZ(v float64) {
	capnp.Struct(s).SetUint64(40, math.Float64bits(v))
}

func (s Fix) Gload() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(48))
}

func (s Fix) SetGload(v float64) {
	capnp.Struct(s).SetUint64(48, math.Float64bits(v))
}

func (s Fix) NettoVario() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(56))
}

func (s Fix) SetNettoVario(v float64) {
	capnp.Struct(s).SetUint64(56, math.Float64bits(v))
}

func (s Fix) HeadWind() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(64))
}

func (s Fix) SetHeadWind(v float64) {
	capnp.Struct(s).SetUint64(64, math.Float64bits(v))
}

func (s Fix) UnixTimeMillis() int64 {
	return int64(capnp.Struct(s).Uint64(72))
}

func (s Fix) SetUnixTimeMillis(v int64) {
	capnp.Struct(s).SetUint64(72, uint64(v))
}

func (s Fix) AccelerationAvailable() bool {
	return capnp.Struct(s).Bit(640)
}

func (s Fix) SetAccelerationAvailable(v bool) {
	capnp.Struct(s).SetBit(640, v)
}

func (s Fix) FinalGlide() bool {
	return capnp.Struct(s).Bit(641)
}

func (s Fix) SetFinalGlide(v bool) {
	capnp.Struct(s).SetBit(641, v)
}

func (s Fix) WindSpeed() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(88))
}

func (s Fix) SetWindSpeed(v float64) {
	capnp.Struct(s).SetUint64(88, math.Float64bits(v))
}

func (s Fix) WindFrom() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(96))
}

func (s Fix) SetWindFrom(v float64) {
	capnp.Struct(s).SetUint64(96, math.Float64bits(v))
}

func (s Fix) WindAvailable() bool {
	return capnp.Struct(s).Bit(642)
}

func (s Fix) SetWindAvailable(v bool) {
	capnp.Struct(s).SetBit(642, v)
}

type InputType uint16

const (
	InputType_setMacCready        InputType = 0
	InputType_setCruiseEfficiency InputType = 1
	InputType_setSpeedFilterAlpha InputType = 2
	InputType_setFaiHalfAngle     InputType = 3
	InputType_setLineHalfAngle    InputType = 4
	InputType_setLogLevel         InputType = 5
	InputType_reloadSettings      InputType = 6
	InputType_saveSettings        InputType = 7
	InputType_loadDefaultSettings InputType = 8
	InputType_reloadTask          InputType = 9
	InputType_resetTask           InputType = 10
	InputType_setBallastRatio     InputType = 11
	InputType_setBugs             InputType = 12
	InputType_insertTaskPoint     InputType = 13
	InputType_removeTaskPoint     InputType = 14
	InputType_moveTaskPoint       InputType = 15
	InputType_setActiveTaskPoint  InputType = 16
)

var inputTypeNames = []string{
	"setMacCready",
	"setCruiseEfficiency",
	"setSpeedFilterAlpha",
	"setFaiHalfAngle",
	"setLineHalfAngle",
	"setLogLevel",
	"reloadSettings",
	"saveSettings",
	"loadDefaultSettings",
	"reloadTask",
	"resetTask",
	"setBallastRatio",
	"setBugs",
	"insertTaskPoint",
	"removeTaskPoint",
	"moveTaskPoint",
	"setActiveTaskPoint",
}

func (c InputType) String() string {
	if int(c) < len(inputTypeNames) {
		return inputTypeNames[c]
	}
	return ""
}

func InputTypeFromString(c string) InputType {
	for i, name := range inputTypeNames {
		if name == c {
			return InputType(i)
		}
	}
	return 0
}

type SoarIn capnp.Struct

var soarInSize = capnp.ObjectSize{DataSize: 16, PointerCount: 1}

func NewSoarIn(s *capnp.Segment) (SoarIn, error) {
	st, err := capnp.NewStruct(s, soarInSize)
	return SoarIn(st), err
}

func (s SoarIn) Type() InputType {
	return InputType(capnp.Struct(s).Uint16(0))
}

func (s SoarIn) SetType(v InputType) {
	capnp.Struct(s).SetUint16(0, uint16(v))
}

func (s SoarIn) Bool() bool {
	return capnp.Struct(s).Bit(16)
}

func (s SoarIn) SetBool(v bool) {
	capnp.Struct(s).SetBit(16, v)
}

func (s SoarIn) Float() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(8))
}

func (s SoarIn) SetFloat(v float64) {
	capnp.Struct(s).SetUint64(8, math.Float64bits(v))
}

func (s SoarIn) Str() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s SoarIn) HasStr() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s SoarIn) SetStr(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

func (s SoarIn) Index() int32 {
	return int32(capnp.Struct(s).Uint32(4))
}

func (s SoarIn) SetIndex(v int32) {
	capnp.Struct(s).SetUint32(4, uint32(v))
}

type EventType uint16

const (
	EventType_none      EventType = 0
	EventType_start     EventType = 1
	EventType_restart   EventType = 2
	EventType_turnpoint EventType = 3
	EventType_finish    EventType = 4
)

func (c EventType) String() string {
	switch c {
	case EventType_none:
		return "none"
	case EventType_start:
		return "start"
	case EventType_restart:
		return "restart"
	case EventType_turnpoint:
		return "turnpoint"
	case EventType_finish:
		return "finish"
	}
	return ""
}

type SoarOut capnp.Struct

var soarOutSize = capnp.ObjectSize{DataSize: 32, PointerCount: 1}

func NewSoarOut(s *capnp.Segment) (SoarOut, error) {
	st, err := capnp.NewStruct(s, soarOutSize)
	return SoarOut(st), err
}

func (s SoarOut) OptimalSpeed() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(0))
}

func (s SoarOut) SetOptimalSpeed(v float64) {
	capnp.Struct(s).SetUint64(0, math.Float64bits(v))
}

func (s SoarOut) Distance() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(8))
}

func (s SoarOut) SetDistance(v float64) {
	capnp.Struct(s).SetUint64(8, math.Float64bits(v))
}

func (s SoarOut) Bearing() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(16))
}

func (s SoarOut) SetBearing(v float64) {
	capnp.Struct(s).SetUint64(16, math.Float64bits(v))
}

func (s SoarOut) ActiveIndex() int32 {
	return int32(capnp.Struct(s).Uint32(24))
}

func (s SoarOut) SetActiveIndex(v int32) {
	capnp.Struct(s).SetUint32(24, uint32(v))
}

func (s SoarOut) Event() EventType {
	return EventType(capnp.Struct(s).Uint16(28))
}

func (s SoarOut) SetEvent(v EventType) {
	capnp.Struct(s).SetUint16(28, uint16(v))
}

func (s SoarOut) Crossed() bool {
	return capnp.Struct(s).Bit(240)
}

func (s SoarOut) SetCrossed(v bool) {
	capnp.Struct(s).SetBit(240, v)
}

func (s SoarOut) TaskStarted() bool {
	return capnp.Struct(s).Bit(241)
}

func (s SoarOut) SetTaskStarted(v bool) {
	capnp.Struct(s).SetBit(241, v)
}

func (s SoarOut) TaskFinished() bool {
	return capnp.Struct(s).Bit(242)
}

func (s SoarOut) SetTaskFinished(v bool) {
	capnp.Struct(s).SetBit(242, v)
}

func (s SoarOut) Inside() bool {
	return capnp.Struct(s).Bit(243)
}

func (s SoarOut) SetInside(v bool) {
	capnp.Struct(s).SetBit(243, v)
}

func (s SoarOut) Approaching() bool {
	return capnp.Struct(s).Bit(244)
}

func (s SoarOut) SetApproaching(v bool) {
	capnp.Struct(s).SetBit(244, v)
}

func (s SoarOut) ValidActive() bool {
	return capnp.Struct(s).Bit(245)
}

func (s SoarOut) SetValidActive(v bool) {
	capnp.Struct(s).SetBit(245, v)
}

func (s SoarOut) ActiveName() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s SoarOut) SetActiveName(v string) error {
	return capnp.Struct(s).SetText(0, v)
}
