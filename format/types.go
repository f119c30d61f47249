package format

type (
	// RoadClass is the relative importance of a road for routing hierarchy.
	RoadClass uint8
	// Surface is a general indication of road smoothness.
	Surface uint8
	// Use is the specialized use of a directed edge.
	Use uint8
	// CycleLane is the type of cycle lane (if any) along an edge.
	CycleLane uint8
	// SpeedType describes where the average speed of an edge came from.
	SpeedType uint8
	// TurnType classifies the turn from an inbound edge onto this edge.
	TurnType uint8
	// CompressionType is an enum indicating the compression used for an edge block payload.
	CompressionType uint8
)

const (
	ClassMotorway     RoadClass = 0 // ClassMotorway is the highest importance class.
	ClassTrunk        RoadClass = 1
	ClassPrimary      RoadClass = 2
	ClassSecondary    RoadClass = 3
	ClassTertiary     RoadClass = 4
	ClassUnclassified RoadClass = 5
	ClassResidential  RoadClass = 6
	ClassServiceOther RoadClass = 7 // ClassServiceOther is the lowest importance class.
)

const (
	SurfacePavedSmooth Surface = 0
	SurfacePaved       Surface = 1
	SurfacePavedRough  Surface = 2
	SurfaceCompacted   Surface = 3
	SurfaceDirt        Surface = 4
	SurfaceGravel      Surface = 5
	SurfacePath        Surface = 6
	SurfaceImpassable  Surface = 7
)

// Use values. Road uses start at 0, transition uses and transit uses occupy
// reserved ranges so new road uses can be added without renumbering.
const (
	UseRoad            Use = 0 // UseRoad is a regular road segment.
	UseRamp            Use = 1 // UseRamp connects roads of different classes (a link edge).
	UseTurnChannel     Use = 2 // UseTurnChannel is a short lane guiding a turn at an intersection.
	UseTrack           Use = 3
	UseDriveway        Use = 4
	UseAlley           Use = 5
	UseParkingAisle    Use = 6
	UseEmergencyAccess Use = 7
	UseDriveThru       Use = 8
	UseCuldesac        Use = 9
	UseCycleway        Use = 20
	UseMountainBike    Use = 21
	UseFootway         Use = 25
	UseSteps           Use = 26
	UseOther           Use = 40

	// Hierarchy transition uses. Edges with these uses connect the same
	// physical location across hierarchy levels.
	UseTransitionUp   Use = 41 // UseTransitionUp transitions up one hierarchy level.
	UseTransitionDown Use = 42 // UseTransitionDown transitions down one hierarchy level.

	// Transit uses. Edges with these uses store a transit line ID in place of
	// the packed stop impact word.
	UseFerry         Use = 50
	UseRailFerry     Use = 51
	UseRail          Use = 52
	UseBus           Use = 53
	UseTransitlink   Use = 54 // UseTransitlink connects a road to a transit stop.
	UseTransitAccess Use = 55
)

const (
	CycleLaneNone      CycleLane = 0
	CycleLaneShared    CycleLane = 1 // CycleLaneShared is a lane shared with motor traffic.
	CycleLaneDedicated CycleLane = 2 // CycleLaneDedicated is a marked lane on the roadway.
	CycleLaneSeparated CycleLane = 3 // CycleLaneSeparated is physically separated from traffic.
)

const (
	SpeedTagged     SpeedType = 0 // SpeedTagged means the speed came from source data tags.
	SpeedClassified SpeedType = 1 // SpeedClassified means the speed was derived from the road class.
)

const (
	TurnStraight    TurnType = 0
	TurnSlightRight TurnType = 1
	TurnRight       TurnType = 2
	TurnSharpRight  TurnType = 3
	TurnReverse     TurnType = 4
	TurnSharpLeft   TurnType = 5
	TurnLeft        TurnType = 6
	TurnSlightLeft  TurnType = 7
)

// Access mode bits. One bit per travel mode, shared by the per-direction
// access masks, the access-restriction mask and the complex turn restriction
// masks at the start/end of an edge.
const (
	AccessAuto       uint32 = 1 << 0
	AccessPedestrian uint32 = 1 << 1
	AccessBicycle    uint32 = 1 << 2
	AccessTruck      uint32 = 1 << 3
	AccessEmergency  uint32 = 1 << 4
	AccessTaxi       uint32 = 1 << 5
	AccessBus        uint32 = 1 << 6
	AccessHOV        uint32 = 1 << 7
	AccessWheelchair uint32 = 1 << 8

	// AccessAll is the union of every legal access mode bit.
	AccessAll uint32 = AccessAuto | AccessPedestrian | AccessBicycle |
		AccessTruck | AccessEmergency | AccessTaxi | AccessBus |
		AccessHOV | AccessWheelchair
)

// Bicycle network membership bits.
const (
	NetworkNational uint32 = 1 << 0
	NetworkRegional uint32 = 1 << 1
	NetworkLocal    uint32 = 1 << 2
	NetworkMountain uint32 = 1 << 3
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c RoadClass) String() string {
	switch c {
	case ClassMotorway:
		return "motorway"
	case ClassTrunk:
		return "trunk"
	case ClassPrimary:
		return "primary"
	case ClassSecondary:
		return "secondary"
	case ClassTertiary:
		return "tertiary"
	case ClassUnclassified:
		return "unclassified"
	case ClassResidential:
		return "residential"
	case ClassServiceOther:
		return "service_other"
	default:
		return "unknown"
	}
}

func (s Surface) String() string {
	switch s {
	case SurfacePavedSmooth:
		return "paved_smooth"
	case SurfacePaved:
		return "paved"
	case SurfacePavedRough:
		return "paved_rough"
	case SurfaceCompacted:
		return "compacted"
	case SurfaceDirt:
		return "dirt"
	case SurfaceGravel:
		return "gravel"
	case SurfacePath:
		return "path"
	case SurfaceImpassable:
		return "impassable"
	default:
		return "unknown"
	}
}

func (u Use) String() string {
	switch u {
	case UseRoad:
		return "road"
	case UseRamp:
		return "ramp"
	case UseTurnChannel:
		return "turn_channel"
	case UseTrack:
		return "track"
	case UseDriveway:
		return "driveway"
	case UseAlley:
		return "alley"
	case UseParkingAisle:
		return "parking_aisle"
	case UseEmergencyAccess:
		return "emergency_access"
	case UseDriveThru:
		return "drive_through"
	case UseCuldesac:
		return "culdesac"
	case UseCycleway:
		return "cycleway"
	case UseMountainBike:
		return "mountain_bike"
	case UseFootway:
		return "footway"
	case UseSteps:
		return "steps"
	case UseOther:
		return "other"
	case UseTransitionUp:
		return "transition_up"
	case UseTransitionDown:
		return "transition_down"
	case UseFerry:
		return "ferry"
	case UseRailFerry:
		return "rail_ferry"
	case UseRail:
		return "rail"
	case UseBus:
		return "bus"
	case UseTransitlink:
		return "transit_link"
	case UseTransitAccess:
		return "transit_access"
	default:
		return "unknown"
	}
}

// IsTransit reports whether the use stores a transit line ID in the shared
// stop impact word.
func (u Use) IsTransit() bool {
	return u == UseFerry || u == UseRailFerry || u == UseRail ||
		u == UseBus || u == UseTransitlink || u == UseTransitAccess
}

func (c CycleLane) String() string {
	switch c {
	case CycleLaneNone:
		return "none"
	case CycleLaneShared:
		return "shared"
	case CycleLaneDedicated:
		return "dedicated"
	case CycleLaneSeparated:
		return "separated"
	default:
		return "unknown"
	}
}

func (s SpeedType) String() string {
	switch s {
	case SpeedTagged:
		return "tagged"
	case SpeedClassified:
		return "classified"
	default:
		return "unknown"
	}
}

func (t TurnType) String() string {
	switch t {
	case TurnStraight:
		return "straight"
	case TurnSlightRight:
		return "slight_right"
	case TurnRight:
		return "right"
	case TurnSharpRight:
		return "sharp_right"
	case TurnReverse:
		return "reverse"
	case TurnSharpLeft:
		return "sharp_left"
	case TurnLeft:
		return "left"
	case TurnSlightLeft:
		return "slight_left"
	default:
		return "unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
