package soar

import (
	"testing"

	"capnproto.org/go/capnp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(t *testing.T) (*capnp.Message, Event) {
	msg, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	require.NoError(t, err)
	event, err := NewRootEvent(seg)
	require.NoError(t, err)
	return msg, event
}

func reread(t *testing.T, msg *capnp.Message) Event {
	b, err := msg.Marshal()
	require.NoError(t, err)
	decoded, err := capnp.Unmarshal(b)
	require.NoError(t, err)
	event, err := ReadRootEvent(decoded)
	require.NoError(t, err)
	return event
}

func TestFixEvent(t *testing.T) {
	msg, event := newEvent(t)
	event.SetLogMonoTime(42)
	event.SetValid(true)
	fix, err := event.NewFix()
	require.NoError(t, err)
	fix.SetLatitude(45.5)
	fix.SetLongitude(7.25)
	fix.SetGroundSpeed(30)
	fix.SetTrack(270)
	fix.SetTurnRate(-12)
	fix.SetAccelZ(1.4)
	fix.SetGload(1.2)
	fix.SetNettoVario(-0.5)
	fix.SetHeadWind(-999)
	fix.SetUnixTimeMillis(1700000000123)
	fix.SetFinalGlide(true)
	fix.SetWindAvailable(true)
	fix.SetWindSpeed(8)
	fix.SetWindFrom(250)

	event = reread(t, msg)
	assert.Equal(t, uint64(42), event.LogMonoTime())
	assert.True(t, event.Valid())
	assert.Equal(t, Event_Which_fix, event.Which())

	fix, err = event.Fix()
	require.NoError(t, err)
	assert.Equal(t, 45.5, fix.Latitude())
	assert.Equal(t, 7.25, fix.Longitude())
	assert.Equal(t, 30.0, fix.GroundSpeed())
	assert.Equal(t, 270.0, fix.Track())
	assert.Equal(t, -12.0, fix.TurnRate())
	assert.Equal(t, 1.4, fix.AccelZ())
	assert.Equal(t, 1.2, fix.Gload())
	assert.Equal(t, -0.5, fix.NettoVario())
	assert.Equal(t, -999.0, fix.HeadWind())
	assert.Equal(t, int64(1700000000123), fix.UnixTimeMillis())
	assert.False(t, fix.AccelerationAvailable())
	assert.True(t, fix.FinalGlide())
	assert.True(t, fix.WindAvailable())
	assert.Equal(t, 8.0, fix.WindSpeed())
	assert.Equal(t, 250.0, fix.WindFrom())

	_, err = event.SoarOut()
	assert.Error(t, err)
}

func TestSoarInEvent(t *testing.T) {
	msg, event := newEvent(t)
	in, err := event.NewSoarIn()
	require.NoError(t, err)
	in.SetType(InputType_setLogLevel)
	in.SetFloat(1.5)
	in.SetBool(true)
	require.NoError(t, in.SetStr("debug"))
	in.SetIndex(-3)

	event = reread(t, msg)
	in, err = event.SoarIn()
	require.NoError(t, err)
	assert.Equal(t, InputType_setLogLevel, in.Type())
	assert.Equal(t, 1.5, in.Float())
	assert.True(t, in.Bool())
	str, err := in.Str()
	require.NoError(t, err)
	assert.Equal(t, "debug", str)
	assert.Equal(t, int32(-3), in.Index())

	assert.Equal(t, "setBugs", InputType_setBugs.String())
	assert.Equal(t, InputType_resetTask, InputTypeFromString("resetTask"))
	assert.Equal(t, InputType_moveTaskPoint, InputTypeFromString("moveTaskPoint"))
}

func TestSoarOutEvent(t *testing.T) {
	msg, event := newEvent(t)
	out, err := event.NewSoarOut()
	require.NoError(t, err)
	out.SetOptimalSpeed(38.5)
	out.SetActiveIndex(2)
	out.SetEvent(EventType_turnpoint)
	out.SetCrossed(true)
	out.SetTaskStarted(true)
	out.SetApproaching(true)
	out.SetDistance(1234.5)
	out.SetBearing(181)
	require.NoError(t, out.SetActiveName("TP2"))

	event = reread(t, msg)
	out, err = event.SoarOut()
	require.NoError(t, err)
	assert.Equal(t, 38.5, out.OptimalSpeed())
	assert.Equal(t, int32(2), out.ActiveIndex())
	assert.Equal(t, EventType_turnpoint, out.Event())
	assert.True(t, out.Crossed())
	assert.True(t, out.TaskStarted())
	assert.False(t, out.TaskFinished())
	assert.False(t, out.Inside())
	assert.True(t, out.Approaching())
	assert.Equal(t, 1234.5, out.Distance())
	assert.Equal(t, 181.0, out.Bearing())
	name, err := out.ActiveName()
	require.NoError(t, err)
	assert.Equal(t, "TP2", name)
}

func TestExtendedOutEvent(t *testing.T) {
	msg, event := newEvent(t)
	ext, err := event.NewSoarExtendedOut()
	require.NoError(t, err)
	ext.SetStarted(true)
	ext.SetActiveIndex(1)
	ext.SetStartUnixTimeMillis(1000)
	ext.SetBestGlideSpeed(27.5)
	ext.SetBestGlideRatio(41.2)
	require.NoError(t, ext.SetTaskName("triangle"))
	require.NoError(t, ext.SetSettings(`{"mac_cready":1}`))
	sectors, err := ext.NewSectors(2)
	require.NoError(t, err)
	sectors.At(0).SetKind(SectorKind_line)
	require.NoError(t, sectors.At(0).SetName("START"))
	sectors.At(0).SetAchievedUnixTimeMillis(1000)
	sectors.At(1).SetRadius(500)
	require.NoError(t, sectors.At(1).SetName("TP1"))

	event = reread(t, msg)
	ext, err = event.SoarExtendedOut()
	require.NoError(t, err)
	assert.True(t, ext.Started())
	assert.False(t, ext.Finished())
	assert.Equal(t, int32(1), ext.ActiveIndex())
	assert.Equal(t, int64(1000), ext.StartUnixTimeMillis())
	assert.Equal(t, 27.5, ext.BestGlideSpeed())
	assert.Equal(t, 41.2, ext.BestGlideRatio())
	name, _ := ext.TaskName()
	assert.Equal(t, "triangle", name)
	settings, _ := ext.Settings()
	assert.Equal(t, `{"mac_cready":1}`, settings)

	sectors, err = ext.Sectors()
	require.NoError(t, err)
	require.Equal(t, 2, sectors.Len())
	assert.Equal(t, SectorKind_line, sectors.At(0).Kind())
	assert.Equal(t, int64(1000), sectors.At(0).AchievedUnixTimeMillis())
	assert.Equal(t, 500.0, sectors.At(1).Radius())
	tp, _ := sectors.At(1).Name()
	assert.Equal(t, "TP1", tp)
}

func TestWaypointFilePacked(t *testing.T) {
	msg, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	require.NoError(t, err)
	file, err := NewRootWaypointFile(seg)
	require.NoError(t, err)
	file.SetMinLatitude(45)
	file.SetMaxLatitude(46)
	wps, err := file.NewWaypoints(1)
	require.NoError(t, err)
	wps.At(0).SetLatitude(45.1)
	wps.At(0).SetKind(WaypointKind_airstrip)
	require.NoError(t, wps.At(0).SetName("Field"))
	require.NoError(t, wps.At(0).SetIcao("LIXX"))

	b, err := msg.MarshalPacked()
	require.NoError(t, err)
	decoded, err := capnp.UnmarshalPacked(b)
	require.NoError(t, err)
	file, err = ReadRootWaypointFile(decoded)
	require.NoError(t, err)
	assert.Equal(t, 45.0, file.MinLatitude())
	assert.Equal(t, 46.0, file.MaxLatitude())
	wps, err = file.Waypoints()
	require.NoError(t, err)
	require.Equal(t, 1, wps.Len())
	assert.Equal(t, 45.1, wps.At(0).Latitude())
	assert.Equal(t, WaypointKind_airstrip, wps.At(0).Kind())
	icao, _ := wps.At(0).Icao()
	assert.Equal(t, "LIXX", icao)
}
