package edge

// Field domain limits. These are part of the record contract: a setter either
// clamps, masks, ignores or fails when its input exceeds the limit (see the
// per-setter doc comments), and the stored value never escapes the field's
// allotted bit width.
const (
	// MaxEdgeLength is the maximum edge length in meters (24 bits).
	MaxEdgeLength = (1 << 24) - 1

	// MaxEdgeInfoOffset is the maximum offset into the shared edge info blob
	// (25 bits). Exceeding it is a fatal construction error.
	MaxEdgeInfoOffset = (1 << 25) - 1

	// MaxSpeed is the maximum speed in KPH, shared by average speed, posted
	// speed limit and truck speed (8 bits each).
	MaxSpeed = 255

	// MaxGradeFactor is the maximum weighted grade code (4 bits).
	MaxGradeFactor = 15

	// DefaultGradeFactor is the weighted grade code of a flat edge. A freshly
	// constructed record carries this code: the all-zero bit pattern is itself
	// a valid steep-downhill code in the grade's encoding domain, so "no data"
	// must be set explicitly.
	DefaultGradeFactor = 6

	// MaxCurvatureFactor is the maximum curvature code (4 bits).
	MaxCurvatureFactor = 15

	// MaxLaneCount is the maximum stored lane count (4 bits).
	MaxLaneCount = 15

	// MaxDensity is the maximum relative density code along an edge (4 bits).
	MaxDensity = 15

	// MaxEdgesPerNode is the maximum local edge index at a node (7 bits).
	MaxEdgesPerNode = 127

	// MaxLocalEdgeIndex is the maximum inbound local edge index addressable by
	// the packed per-index sub-fields (turn type, edge to left/right, stop
	// impact). Eight slots, indices 0-7.
	MaxLocalEdgeIndex = 7

	// MaxTurnRestrictionEdges is the number of local edges covered by the
	// simple turn restriction mask (one bit per inbound local edge index).
	MaxTurnRestrictionEdges = 8

	// MaxShortcutsFromNode is the number of shortcut slots from a node covered
	// by the one-hot shortcut and superseded masks. Slot numbering is 1-based
	// in the API; slot k is stored as bit k-1.
	MaxShortcutsFromNode = 10

	// MaxStopImpact is the maximum stop impact cost code (3 bits per slot).
	MaxStopImpact = 7

	// MaxSlopeCode is the saturated 5-bit slope code, decoding to 76 degrees.
	MaxSlopeCode = 0x1f

	// RecordSize is the serialized size of a DirectedEdge in bytes.
	RecordSize = 56
)

// slopeBandFlag selects the slope precision band: clear means the low four
// bits are degrees directly (0-15, 1-degree steps), set means degrees are
// 16 + low-four-bits*4 (16-76, 4-degree steps).
const slopeBandFlag = 0x10

// Bit positions within the extended data word.
const (
	edgeInfoOffsetShift   = 0
	edgeInfoOffsetWidth   = 25
	accessRestrictionBits = 25 // 12 bits, one per travel mode
	exitSignBit           = 37
)

// Bit positions within the geometry word.
const (
	lengthShift     = 0
	lengthWidth     = 24
	gradeShift      = 24
	gradeWidth      = 4
	curvatureShift  = 28
	curvatureWidth  = 4
	upSlopeShift    = 32
	downSlopeShift  = 37
	slopeWidth      = 5
	speedShift      = 42
	speedLimitShift = 50
	speedWidth      = 8
)

// Flag bit positions within the route attribute word.
const (
	tollBit = iota
	tunnelBit
	bridgeBit
	roundaboutBit
	unreachableBit
	trafficSignalBit
	destOnlyBit
	seasonalBit
	notThruBit
	countryCrossingBit
	namedBit
	sidewalkLeftBit
	sidewalkRightBit
	truckRouteBit
	internalBit
	linkBit
	complexRestrictionBit
	driveOnRightBit
	forwardBit
	deadEndBit
	leavesTileBit
	isShortcutBit
)

// Enum and mask positions within the route attribute word, above the flag bits.
const (
	cycleLaneShift      = 22
	cycleLaneWidth      = 2
	bikeNetworkShift    = 24
	bikeNetworkWidth    = 4
	useShift            = 28
	useWidth            = 6
	speedTypeShift      = 34
	speedTypeWidth      = 2
	classificationShift = 36
	classificationWidth = 3
	surfaceShift        = 39
	surfaceWidth        = 3
	restrictionsShift   = 42
	restrictionsWidth   = 8
)

// Bit positions within the access word.
const (
	forwardAccessShift    = 0
	reverseAccessShift    = 12
	startRestrictionShift = 24
	endRestrictionShift   = 36
	accessWidth           = 12
)

// Bit positions within the hierarchy word.
const (
	localEdgeIdxShift = 0
	localEdgeIdxWidth = 7
	oppLocalIdxShift  = 7
	oppLocalIdxWidth  = 7
	oppIndexShift     = 14
	oppIndexWidth     = 7
	shortcutShift     = 21
	shortcutWidth     = 10
	supersededShift   = 31
	supersededWidth   = 10
	laneCountShift    = 41
	laneCountWidth    = 4
	densityShift      = 45
	densityWidth      = 4
	truckSpeedShift   = 49
)

// Sub-field widths within the turn word and the stop impact union word.
const (
	turnTypeFieldWidth   = 3
	edgeFlagFieldWidth   = 1
	edgeToLeftShift      = 24
	stopImpactFieldWidth = 3
	edgeToRightShift     = 24
)
