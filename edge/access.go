package edge

import "github.com/viamaps/graphtile/format"

// SetForwardAccess sets the travel mode access mask in the forward direction.
// Bits outside format.AccessAll are masked off.
func (e *DirectedEdge) SetForwardAccess(modes uint32) *Diagnostic {
	if modes > format.AccessAll {
		applied := modes & format.AccessAll
		setBits(&e.access, forwardAccessShift, accessWidth, applied)

		return masked("forward_access", uint64(modes), uint64(applied))
	}
	setBits(&e.access, forwardAccessShift, accessWidth, modes)

	return nil
}

// ForwardAccess returns the travel mode access mask in the forward direction.
func (e *DirectedEdge) ForwardAccess() uint32 {
	return getBits(e.access, forwardAccessShift, accessWidth)
}

// SetReverseAccess sets the travel mode access mask in the reverse direction.
// Bits outside format.AccessAll are masked off.
func (e *DirectedEdge) SetReverseAccess(modes uint32) *Diagnostic {
	if modes > format.AccessAll {
		applied := modes & format.AccessAll
		setBits(&e.access, reverseAccessShift, accessWidth, applied)

		return masked("reverse_access", uint64(modes), uint64(applied))
	}
	setBits(&e.access, reverseAccessShift, accessWidth, modes)

	return nil
}

// ReverseAccess returns the travel mode access mask in the reverse direction.
func (e *DirectedEdge) ReverseAccess() uint32 {
	return getBits(e.access, reverseAccessShift, accessWidth)
}

// SetAllForwardAccess grants every travel mode in both directions. Used for
// transition edges connecting adjacent hierarchy levels, which must be
// universally traversable; forward and reverse masks stay identical by
// construction for that edge category.
func (e *DirectedEdge) SetAllForwardAccess() {
	setBits(&e.access, forwardAccessShift, accessWidth, format.AccessAll)
	setBits(&e.access, reverseAccessShift, accessWidth, format.AccessAll)
}

// SetStartRestriction sets the travel modes with a complex restriction
// starting at this edge. Bits above the field width are masked off.
func (e *DirectedEdge) SetStartRestriction(modes uint32) {
	setBits(&e.access, startRestrictionShift, accessWidth, modes)
}

// StartRestriction returns the travel modes with a complex restriction
// starting at this edge.
func (e *DirectedEdge) StartRestriction() uint32 {
	return getBits(e.access, startRestrictionShift, accessWidth)
}

// SetEndRestriction sets the travel modes with a complex restriction ending
// at this edge. Bits above the field width are masked off.
func (e *DirectedEdge) SetEndRestriction(modes uint32) {
	setBits(&e.access, endRestrictionShift, accessWidth, modes)
}

// EndRestriction returns the travel modes with a complex restriction ending
// at this edge.
func (e *DirectedEdge) EndRestriction() uint32 {
	return getBits(e.access, endRestrictionShift, accessWidth)
}

// SetRestrictions sets the simple turn restriction mask from the end of this
// edge: bit n restricts the turn onto the edge with inbound local index n,
// for all modes at all times. Bits beyond MaxTurnRestrictionEdges are masked
// off.
func (e *DirectedEdge) SetRestrictions(mask uint32) *Diagnostic {
	limit := uint32(1<<MaxTurnRestrictionEdges) - 1
	if mask > limit {
		applied := mask & limit
		setBits(&e.route, restrictionsShift, restrictionsWidth, applied)

		return masked("restrictions", uint64(mask), uint64(applied))
	}
	setBits(&e.route, restrictionsShift, restrictionsWidth, mask)

	return nil
}

// Restrictions returns the simple turn restriction mask.
func (e *DirectedEdge) Restrictions() uint32 {
	return getBits(e.route, restrictionsShift, restrictionsWidth)
}

// SetSpeed sets the average speed in KPH, clamped to MaxSpeed.
func (e *DirectedEdge) SetSpeed(kph uint32) *Diagnostic {
	if kph > MaxSpeed {
		setBits(&e.geo, speedShift, speedWidth, MaxSpeed)

		return clamped("speed", uint64(kph), MaxSpeed)
	}
	setBits(&e.geo, speedShift, speedWidth, kph)

	return nil
}

// Speed returns the average speed in KPH.
func (e *DirectedEdge) Speed() uint32 {
	return getBits(e.geo, speedShift, speedWidth)
}

// SetSpeedLimit sets the posted speed limit in KPH, clamped to MaxSpeed.
func (e *DirectedEdge) SetSpeedLimit(kph uint32) *Diagnostic {
	if kph > MaxSpeed {
		setBits(&e.geo, speedLimitShift, speedWidth, MaxSpeed)

		return clamped("speed_limit", uint64(kph), MaxSpeed)
	}
	setBits(&e.geo, speedLimitShift, speedWidth, kph)

	return nil
}

// SpeedLimit returns the posted speed limit in KPH.
func (e *DirectedEdge) SpeedLimit() uint32 {
	return getBits(e.geo, speedLimitShift, speedWidth)
}

// SetTruckSpeed sets the truck speed in KPH, clamped to MaxSpeed.
func (e *DirectedEdge) SetTruckSpeed(kph uint32) *Diagnostic {
	if kph > MaxSpeed {
		setBits(&e.hierarchy, truckSpeedShift, speedWidth, MaxSpeed)

		return clamped("truck_speed", uint64(kph), MaxSpeed)
	}
	setBits(&e.hierarchy, truckSpeedShift, speedWidth, kph)

	return nil
}

// TruckSpeed returns the truck speed in KPH.
func (e *DirectedEdge) TruckSpeed() uint32 {
	return getBits(e.hierarchy, truckSpeedShift, speedWidth)
}
