package soar

import (
	"math"

	"capnproto.org/go/capnp/v3"
)

type SectorKind uint16

const (
	SectorKind_circle SectorKind = 0
	SectorKind_line   SectorKind = 1
	SectorKind_fai90  SectorKind = 2
)

func (c SectorKind) String() string {
	switch c {
	case SectorKind_circle:
		return "circle"
	case SectorKind_line:
		return "line"
	case SectorKind_fai90:
		return "fai90"
	}
	return ""
}

type SectorStatus capnp.Struct

var sectorStatusSize = capnp.ObjectSize{DataSize: 48, PointerCount: 1}

type SectorStatus_List = capnp.StructList[SectorStatus]

func NewSectorStatus_List(s *capnp.Segment, sz int32) (SectorStatus_List, error) {
	l, err := capnp.NewCompositeList(s, sectorStatusSize, sz)
	return capnp.StructList[SectorStatus](l), err
}

func (s SectorStatus) Latitude() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(0))
}

func (s SectorStatus) SetLatitude(v float64) {
	capnp.Struct(s).SetUint64(0, math.Float64bits(v))
}

func (s SectorStatus) Longitude() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(8))
}

func (s SectorStatus) SetLongitude(v float64) {
	capnp.Struct(s).SetUint64(8, math.Float64bits(v))
}

func (s SectorStatus) Radius() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(16))
}

func (s SectorStatus) SetRadius(v float64) {
	capnp.Struct(s).SetUint64(16, math.Float64bits(v))
}

func (s SectorStatus) Inbound() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(24))
}

func (s SectorStatus) SetInbound(v float64) {
	capnp.Struct(s).SetUint64(24, math.Float64bits(v))
}

func (s SectorStatus) AchievedUnixTimeMillis() int64 {
	return int64(capnp.Struct(s).Uint64(32))
}

func (s SectorStatus) SetAchievedUnixTimeMillis(v int64) {
	capnp.Struct(s).SetUint64(32, uint64(v))
}

func (s SectorStatus) Kind() SectorKind {
	return SectorKind(capnp.Struct(s).Uint16(40))
}

func (s SectorStatus) SetKind(v SectorKind) {
	capnp.Struct(s).SetUint16(40, uint16(v))
}

func (s SectorStatus) Name() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s SectorStatus) SetName(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

type SoarExtendedOut capnp.Struct

var soarExtendedOutSize = capnp.ObjectSize{DataSize: 40, PointerCount: 3}

func NewSoarExtendedOut(s *capnp.Segment) (SoarExtendedOut, error) {
	st, err := capnp.NewStruct(s, soarExtendedOutSize)
	return SoarExtendedOut(st), err
}

func (s SoarExtendedOut) StartUnixTimeMillis() int64 {
	return int64(capnp.Struct(s).Uint64(0))
}

func (s SoarExtendedOut) SetStartUnixTimeMillis(v int64) {
	capnp.Struct(s).SetUint64(0, uint64(v))
}

func (s SoarExtendedOut) FinishUnixTimeMillis() int64 {
	return int64(capnp.Struct(s).Uint64(8))
}

func (s SoarExtendedOut) SetFinishUnixTimeMillis(v int64) {
	capnp.Struct(s).SetUint64(8, uint64(v))
}

func (s SoarExtendedOut) ActiveIndex() int32 {
	return int32(capnp.Struct(s).Uint32(16))
}

func (s SoarExtendedOut) SetActiveIndex(v int32) {
	capnp.Struct(s).SetUint32(16, uint32(v))
}

func (s SoarExtendedOut) Started() bool {
	return capnp.Struct(s).Bit(160)
}

func (s SoarExtendedOut) SetStarted(v bool) {
	capnp.Struct(s).SetBit(160, v)
}

func (s SoarExtendedOut) Finished() bool {
	return capnp.Struct(s).Bit(161)
}

func (s SoarExtendedOut) SetFinished(v bool) {
	capnp.Struct(s).SetBit(161, v)
}

func (s SoarExtendedOut) BestGlideSpeed() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(24))
}

func (s SoarExtendedOut) SetBestGlideSpeed(v float64) {
	capnp.Struct(s).SetUint64(24, math.Float64bits(v))
}

func (s SoarExtendedOut) BestGlideRatio() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(32))
}

func (s SoarExtendedOut) SetBestGlideRatio(v float64) {
	capnp.Struct(s).SetUint64(32, math.Float64bits(v))
}

func (s SoarExtendedOut) TaskName() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s SoarExtendedOut) SetTaskName(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

func (s SoarExtendedOut) Settings() (string, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return p.Text(), err
}

func (s SoarExtendedOut) SetSettings(v string) error {
	return capnp.Struct(s).SetText(1, v)
}

func (s SoarExtendedOut) Sectors() (SectorStatus_List, error) {
	p, err := capnp.Struct(s).Ptr(2)
	return SectorStatus_List(p.List()), err
}

func (s SoarExtendedOut) HasSectors() bool {
	return capnp.Struct(s).HasPtr(2)
}

func (s SoarExtendedOut) NewSectors(n int32) (SectorStatus_List, error) {
	l, err := NewSectorStatus_List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return SectorStatus_List{}, err
	}
	err = capnp.Struct(s).SetPtr(2, l.ToPtr())
	return l, err
}
