package edge

import "math"

// SetLength sets the length of the edge in meters, clamped to MaxEdgeLength.
func (e *DirectedEdge) SetLength(meters uint32) *Diagnostic {
	if meters > MaxEdgeLength {
		setBits(&e.geo, lengthShift, lengthWidth, MaxEdgeLength)

		return clamped("length", uint64(meters), MaxEdgeLength)
	}
	setBits(&e.geo, lengthShift, lengthWidth, meters)

	return nil
}

// Length returns the length of the edge in meters.
func (e *DirectedEdge) Length() uint32 {
	return getBits(e.geo, lengthShift, lengthWidth)
}

// SetWeightedGrade sets the weighted grade code (0-MaxGradeFactor) for the
// edge. An out-of-range factor falls back to DefaultGradeFactor (flat).
func (e *DirectedEdge) SetWeightedGrade(factor uint32) *Diagnostic {
	if factor > MaxGradeFactor {
		setBits(&e.geo, gradeShift, gradeWidth, DefaultGradeFactor)

		return clamped("weighted_grade", uint64(factor), DefaultGradeFactor)
	}
	setBits(&e.geo, gradeShift, gradeWidth, factor)

	return nil
}

// WeightedGrade returns the weighted grade code (0-MaxGradeFactor).
func (e *DirectedEdge) WeightedGrade() uint32 {
	return getBits(e.geo, gradeShift, gradeWidth)
}

// WeightedGradeRatio returns the weighted grade decoded to a signed
// percentage-like scale centered at DefaultGradeFactor: (code - 6) / 0.6.
// A freshly constructed record decodes to 0 (flat).
func (e *DirectedEdge) WeightedGradeRatio() float64 {
	return (float64(e.WeightedGrade()) - DefaultGradeFactor) / 0.6
}

// SetCurvature sets the curvature code (0-MaxCurvatureFactor) for the edge.
// An out-of-range factor falls back to 0.
func (e *DirectedEdge) SetCurvature(factor uint32) *Diagnostic {
	if factor > MaxCurvatureFactor {
		setBits(&e.geo, curvatureShift, curvatureWidth, 0)

		return clamped("curvature", uint64(factor), 0)
	}
	setBits(&e.geo, curvatureShift, curvatureWidth, factor)

	return nil
}

// Curvature returns the curvature code (0-MaxCurvatureFactor).
func (e *DirectedEdge) Curvature() uint32 {
	return getBits(e.geo, curvatureShift, curvatureWidth)
}

// encodeSlope quantizes a non-negative slope magnitude in degrees into the
// 5-bit precision-band code: 1-degree steps up to 16 degrees, then 4-degree
// steps up to 76 degrees, saturating at MaxSlopeCode. Negative input encodes
// as 0 (no slope or wrong-sign input for the direction).
func encodeSlope(degrees float64) uint32 {
	switch {
	case degrees < 0:
		return 0
	case degrees < 16:
		return uint32(math.Ceil(degrees))
	case degrees < 76:
		return slopeBandFlag | uint32(math.Ceil((degrees-16)*0.25))
	default:
		return MaxSlopeCode
	}
}

// decodeSlope expands a 5-bit slope code back to whole degrees.
func decodeSlope(code uint32) int {
	if code&slopeBandFlag == 0 {
		return int(code)
	}

	return 16 + int(code&0xf)*4
}

// SetMaxUpSlope sets the maximum upward slope in degrees. Values quantize to
// 1-degree precision up to 16 degrees and 4-degree precision up to a maximum
// of 76 degrees; negative input stores zero.
func (e *DirectedEdge) SetMaxUpSlope(slope float64) {
	setBits(&e.geo, upSlopeShift, slopeWidth, encodeSlope(slope))
}

// MaxUpSlope returns the maximum upward slope in degrees.
func (e *DirectedEdge) MaxUpSlope() int {
	return decodeSlope(getBits(e.geo, upSlopeShift, slopeWidth))
}

// SetMaxDownSlope sets the maximum downward slope in degrees (a negative
// value). The magnitude quantizes like SetMaxUpSlope; positive input stores
// zero.
func (e *DirectedEdge) SetMaxDownSlope(slope float64) {
	setBits(&e.geo, downSlopeShift, slopeWidth, encodeSlope(-slope))
}

// MaxDownSlope returns the maximum downward slope as a negative degree value.
func (e *DirectedEdge) MaxDownSlope() int {
	return -decodeSlope(getBits(e.geo, downSlopeShift, slopeWidth))
}

// SetDensity sets the relative density code (0-MaxDensity) along the edge,
// clamped to MaxDensity.
func (e *DirectedEdge) SetDensity(density uint32) *Diagnostic {
	if density > MaxDensity {
		setBits(&e.hierarchy, densityShift, densityWidth, MaxDensity)

		return clamped("density", uint64(density), MaxDensity)
	}
	setBits(&e.hierarchy, densityShift, densityWidth, density)

	return nil
}

// Density returns the relative density code along the edge.
func (e *DirectedEdge) Density() uint32 {
	return getBits(e.hierarchy, densityShift, densityWidth)
}

// SetLaneCount sets the number of lanes, clamped to MaxLaneCount.
func (e *DirectedEdge) SetLaneCount(lanes uint32) *Diagnostic {
	if lanes > MaxLaneCount {
		setBits(&e.hierarchy, laneCountShift, laneCountWidth, MaxLaneCount)

		return clamped("lane_count", uint64(lanes), MaxLaneCount)
	}
	setBits(&e.hierarchy, laneCountShift, laneCountWidth, lanes)

	return nil
}

// LaneCount returns the number of lanes.
func (e *DirectedEdge) LaneCount() uint32 {
	return getBits(e.hierarchy, laneCountShift, laneCountWidth)
}
