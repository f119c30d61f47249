package edge

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viamaps/graphtile/endian"
	"github.com/viamaps/graphtile/errs"
	"github.com/viamaps/graphtile/format"
)

func TestNewDirectedEdge(t *testing.T) {
	e := NewDirectedEdge()

	// The only non-zero default is the flat weighted grade code.
	require.Equal(t, uint32(DefaultGradeFactor), e.WeightedGrade())
	require.InDelta(t, 0.0, e.WeightedGradeRatio(), 1e-9)

	require.Equal(t, uint64(0), e.EndNode())
	require.Equal(t, uint32(0), e.Length())
	require.Equal(t, uint32(0), e.Speed())
	require.Equal(t, uint32(0), e.ForwardAccess())
	require.Equal(t, uint32(0), e.Shortcut())
	require.False(t, e.IsShortcut())
	require.False(t, e.Toll())
	require.False(t, e.LeavesTile())
	require.Equal(t, 0, e.MaxUpSlope())
	require.Equal(t, 0, e.MaxDownSlope())
}

func TestSetEdgeInfoOffset(t *testing.T) {
	t.Run("Within range", func(t *testing.T) {
		e := NewDirectedEdge()
		require.NoError(t, e.SetEdgeInfoOffset(MaxEdgeInfoOffset))
		require.Equal(t, uint32(MaxEdgeInfoOffset), e.EdgeInfoOffset())
	})

	t.Run("Overflow is fatal and leaves state untouched", func(t *testing.T) {
		e := NewDirectedEdge()
		require.NoError(t, e.SetEdgeInfoOffset(1234))

		err := e.SetEdgeInfoOffset(MaxEdgeInfoOffset + 1)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrEdgeInfoOffsetTooLarge)
		require.Equal(t, uint32(1234), e.EdgeInfoOffset())
	})
}

func TestAccessRestriction(t *testing.T) {
	e := NewDirectedEdge()
	require.False(t, e.HasAccessRestriction())

	e.SetAccessRestriction(format.AccessTruck | format.AccessHOV)
	require.True(t, e.HasAccessRestriction())
	require.Equal(t, format.AccessTruck|format.AccessHOV, e.AccessRestriction())
}

// populate fills a record with one distinct legal value per field so
// round-trip and isolation tests can detect any cross-field interference.
func populate(t *testing.T) DirectedEdge {
	t.Helper()

	e := NewDirectedEdge()
	e.SetEndNode(0x123456789abcdef0)
	require.NoError(t, e.SetEdgeInfoOffset(987654))
	e.SetAccessRestriction(format.AccessTruck)
	e.SetExitSign(true)
	require.Nil(t, e.SetLength(123456))
	require.Nil(t, e.SetWeightedGrade(9))
	require.Nil(t, e.SetCurvature(5))
	e.SetMaxUpSlope(12.0)
	e.SetMaxDownSlope(-33.0)
	require.Nil(t, e.SetDensity(11))
	require.Nil(t, e.SetLaneCount(3))
	require.Nil(t, e.SetSpeed(87))
	require.Nil(t, e.SetSpeedLimit(100))
	require.Nil(t, e.SetTruckSpeed(70))
	require.Nil(t, e.SetForwardAccess(format.AccessAuto|format.AccessBicycle))
	require.Nil(t, e.SetReverseAccess(format.AccessPedestrian))
	e.SetStartRestriction(format.AccessAuto)
	e.SetEndRestriction(format.AccessBus)
	require.Nil(t, e.SetRestrictions(0xa5))
	e.SetToll(true)
	e.SetTunnel(true)
	e.SetRoundabout(true)
	e.SetTrafficSignal(true)
	e.SetNotThru(true)
	e.SetNamed(true)
	e.SetSidewalkRight(true)
	e.SetDriveOnRight(true)
	e.SetForward(true)
	e.SetLeavesTile(true)
	e.SetClassification(format.ClassSecondary)
	e.SetSurface(format.SurfaceGravel)
	e.SetUse(format.UseRamp)
	e.SetSpeedType(format.SpeedClassified)
	e.SetCycleLane(format.CycleLaneDedicated)
	require.Nil(t, e.SetBikeNetwork(format.NetworkRegional))
	require.Nil(t, e.SetLocalEdgeIndex(42))
	require.Nil(t, e.SetOppLocalIndex(99))
	e.SetOppIndex(17)
	require.Nil(t, e.SetShortcut(3))
	require.Nil(t, e.SetSuperseded(7))
	require.Nil(t, e.SetTurnType(2, format.TurnSharpLeft))
	require.Nil(t, e.SetEdgeToLeft(1, true))
	require.Nil(t, e.SetEdgeToRight(4, true))
	require.Nil(t, e.SetStopImpact(6, 5))

	return e
}

func verify(t *testing.T, e DirectedEdge) {
	t.Helper()

	require.Equal(t, uint64(0x123456789abcdef0), e.EndNode())
	require.Equal(t, uint32(987654), e.EdgeInfoOffset())
	require.Equal(t, format.AccessTruck, e.AccessRestriction())
	require.True(t, e.HasExitSign())
	require.Equal(t, uint32(123456), e.Length())
	require.Equal(t, uint32(9), e.WeightedGrade())
	require.Equal(t, uint32(5), e.Curvature())
	require.Equal(t, 12, e.MaxUpSlope())
	require.Equal(t, -36, e.MaxDownSlope()) // -33 quantizes to the next 4-degree step
	require.Equal(t, uint32(11), e.Density())
	require.Equal(t, uint32(3), e.LaneCount())
	require.Equal(t, uint32(87), e.Speed())
	require.Equal(t, uint32(100), e.SpeedLimit())
	require.Equal(t, uint32(70), e.TruckSpeed())
	require.Equal(t, format.AccessAuto|format.AccessBicycle, e.ForwardAccess())
	require.Equal(t, format.AccessPedestrian, e.ReverseAccess())
	require.Equal(t, format.AccessAuto, e.StartRestriction())
	require.Equal(t, format.AccessBus, e.EndRestriction())
	require.Equal(t, uint32(0xa5), e.Restrictions())
	require.True(t, e.Toll())
	require.True(t, e.Tunnel())
	require.False(t, e.Bridge())
	require.True(t, e.Roundabout())
	require.True(t, e.TrafficSignal())
	require.True(t, e.NotThru())
	require.True(t, e.Named())
	require.False(t, e.SidewalkLeft())
	require.True(t, e.SidewalkRight())
	require.True(t, e.DriveOnRight())
	require.True(t, e.Forward())
	require.True(t, e.LeavesTile())
	require.Equal(t, format.ClassSecondary, e.Classification())
	require.Equal(t, format.SurfaceGravel, e.Surface())
	require.Equal(t, format.UseRamp, e.Use())
	require.Equal(t, format.SpeedClassified, e.SpeedType())
	require.Equal(t, format.CycleLaneDedicated, e.CycleLane())
	require.Equal(t, format.NetworkRegional, e.BikeNetwork())
	require.Equal(t, uint32(42), e.LocalEdgeIndex())
	require.Equal(t, uint32(99), e.OppLocalIndex())
	require.Equal(t, uint32(17), e.OppIndex())
	require.Equal(t, uint32(1<<2), e.Shortcut())
	require.True(t, e.IsShortcut())
	require.Equal(t, uint32(1<<6), e.Superseded())
	require.Equal(t, format.TurnSharpLeft, e.TurnType(2))
	require.True(t, e.EdgeToLeft(1))
	require.True(t, e.EdgeToRight(4))
	require.Equal(t, uint32(5), e.StopImpact(6))
}

func TestDirectedEdge_RoundTrip(t *testing.T) {
	engines := map[string]endian.EndianEngine{
		"little-endian": endian.GetLittleEndianEngine(),
		"big-endian":    endian.GetBigEndianEngine(),
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			e := populate(t)
			verify(t, e)

			data := e.Bytes(engine)
			require.Len(t, data, RecordSize)

			parsed, err := ParseDirectedEdge(data, engine)
			require.NoError(t, err)
			verify(t, parsed)
			require.Equal(t, e, parsed)
		})
	}
}

func TestDirectedEdge_WriteToSlice(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	e := populate(t)

	buf := make([]byte, 3*RecordSize)
	next := e.WriteToSlice(buf, RecordSize, engine)
	require.Equal(t, 2*RecordSize, next)

	parsed, err := ParseDirectedEdge(buf[RecordSize:], engine)
	require.NoError(t, err)
	require.Equal(t, e, parsed)

	// Bytes outside the target stride stay zero.
	for _, i := range []int{0, RecordSize - 1, 2 * RecordSize, 3*RecordSize - 1} {
		require.Zero(t, buf[i])
	}
}

func TestParseDirectedEdge_InvalidSize(t *testing.T) {
	_, err := ParseDirectedEdge(make([]byte, RecordSize-1), endian.GetLittleEndianEngine())
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidRecordSize)
}

func TestClampDoesNotTouchNeighbors(t *testing.T) {
	// Overflowing one field must never disturb another field sharing the
	// same storage word.
	base := populate(t)

	e := base
	d := e.SetLength(MaxEdgeLength + 500)
	require.NotNil(t, d)
	require.Equal(t, ActionClamped, d.Action)
	require.Equal(t, uint32(MaxEdgeLength), e.Length())
	require.Equal(t, base.WeightedGrade(), e.WeightedGrade())
	require.Equal(t, base.Curvature(), e.Curvature())
	require.Equal(t, base.Speed(), e.Speed())
	require.Equal(t, base.MaxUpSlope(), e.MaxUpSlope())

	e = base
	require.NotNil(t, e.SetForwardAccess(0xFFFFFFFF))
	require.Equal(t, format.AccessAll, e.ForwardAccess())
	require.Equal(t, base.ReverseAccess(), e.ReverseAccess())
	require.Equal(t, base.StartRestriction(), e.StartRestriction())
	require.Equal(t, base.EndRestriction(), e.EndRestriction())

	e = base
	require.NotNil(t, e.SetLocalEdgeIndex(4000))
	require.Equal(t, uint32(MaxEdgesPerNode), e.LocalEdgeIndex())
	require.Equal(t, base.OppLocalIndex(), e.OppLocalIndex())
	require.Equal(t, base.Shortcut(), e.Shortcut())
	require.Equal(t, base.Superseded(), e.Superseded())
	require.Equal(t, base.TruckSpeed(), e.TruckSpeed())
}

func TestGettersTotalOverArbitraryBytes(t *testing.T) {
	// Any byte pattern written into the layout must decode through every
	// getter without panicking, and packed fields must stay within their
	// declared domains.
	engine := endian.GetLittleEndianEngine()
	rng := rand.New(rand.NewSource(42))

	data := make([]byte, RecordSize)
	for i := 0; i < 1000; i++ {
		_, _ = rng.Read(data)

		e, err := ParseDirectedEdge(data, engine)
		require.NoError(t, err)

		require.LessOrEqual(t, e.EdgeInfoOffset(), uint32(MaxEdgeInfoOffset))
		require.LessOrEqual(t, e.Length(), uint32(MaxEdgeLength))
		require.LessOrEqual(t, e.WeightedGrade(), uint32(MaxGradeFactor))
		require.LessOrEqual(t, e.Curvature(), uint32(MaxCurvatureFactor))
		require.LessOrEqual(t, e.Speed(), uint32(MaxSpeed))
		require.LessOrEqual(t, e.SpeedLimit(), uint32(MaxSpeed))
		require.LessOrEqual(t, e.TruckSpeed(), uint32(MaxSpeed))
		require.LessOrEqual(t, e.LaneCount(), uint32(MaxLaneCount))
		require.LessOrEqual(t, e.Density(), uint32(MaxDensity))
		require.LessOrEqual(t, e.LocalEdgeIndex(), uint32(MaxEdgesPerNode))
		require.LessOrEqual(t, e.OppLocalIndex(), uint32(MaxEdgesPerNode))
		require.LessOrEqual(t, e.MaxUpSlope(), 76)
		require.GreaterOrEqual(t, e.MaxDownSlope(), -76)
		require.NotEmpty(t, e.Use().String())
		require.NotEmpty(t, e.Classification().String())
		require.NotEmpty(t, e.Surface().String())
		require.NotEmpty(t, e.CycleLane().String())
		require.NotEmpty(t, e.SpeedType().String())
		for idx := uint32(0); idx <= MaxLocalEdgeIndex; idx++ {
			require.LessOrEqual(t, e.StopImpact(idx), uint32(MaxStopImpact))
			require.NotEmpty(t, e.TurnType(idx).String())
		}
		require.NotNil(t, e.DebugMap())
	}
}
