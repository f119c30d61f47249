package edge

import "github.com/viamaps/graphtile/format"

// Boolean road attributes. Each occupies a single independently settable bit
// in the route attribute word.

// SetToll sets whether this edge has a toll or is part of a toll road.
func (e *DirectedEdge) SetToll(toll bool) { setFlag(&e.route, tollBit, toll) }

// Toll returns whether this edge has a toll or is part of a toll road.
func (e *DirectedEdge) Toll() bool { return getFlag(e.route, tollBit) }

// SetTunnel sets whether this edge is part of a tunnel.
func (e *DirectedEdge) SetTunnel(tunnel bool) { setFlag(&e.route, tunnelBit, tunnel) }

// Tunnel returns whether this edge is part of a tunnel.
func (e *DirectedEdge) Tunnel() bool { return getFlag(e.route, tunnelBit) }

// SetBridge sets whether this edge is part of a bridge.
func (e *DirectedEdge) SetBridge(bridge bool) { setFlag(&e.route, bridgeBit, bridge) }

// Bridge returns whether this edge is part of a bridge.
func (e *DirectedEdge) Bridge() bool { return getFlag(e.route, bridgeBit) }

// SetRoundabout sets whether this edge is part of a roundabout.
func (e *DirectedEdge) SetRoundabout(rb bool) { setFlag(&e.route, roundaboutBit, rb) }

// Roundabout returns whether this edge is part of a roundabout.
func (e *DirectedEdge) Roundabout() bool { return getFlag(e.route, roundaboutBit) }

// SetUnreachable sets whether this edge is unreachable by driving, for
// example a driveable edge surrounded by pedestrian-only edges.
func (e *DirectedEdge) SetUnreachable(u bool) { setFlag(&e.route, unreachableBit, u) }

// Unreachable returns whether this edge is unreachable by driving.
func (e *DirectedEdge) Unreachable() bool { return getFlag(e.route, unreachableBit) }

// SetTrafficSignal sets whether a traffic signal is present at the end of
// this edge.
func (e *DirectedEdge) SetTrafficSignal(sig bool) { setFlag(&e.route, trafficSignalBit, sig) }

// TrafficSignal returns whether a traffic signal is present at the end of
// this edge.
func (e *DirectedEdge) TrafficSignal() bool { return getFlag(e.route, trafficSignalBit) }

// SetDestOnly sets the destination-only (private) flag: the edge allows
// access only to destinations, not through traffic.
func (e *DirectedEdge) SetDestOnly(d bool) { setFlag(&e.route, destOnlyBit, d) }

// DestOnly returns the destination-only flag.
func (e *DirectedEdge) DestOnly() bool { return getFlag(e.route, destOnlyBit) }

// SetSeasonal sets whether this edge has seasonal access.
func (e *DirectedEdge) SetSeasonal(s bool) { setFlag(&e.route, seasonalBit, s) }

// Seasonal returns whether this edge has seasonal access.
func (e *DirectedEdge) Seasonal() bool { return getFlag(e.route, seasonalBit) }

// SetNotThru sets whether this edge leads into a region with no through paths.
func (e *DirectedEdge) SetNotThru(nt bool) { setFlag(&e.route, notThruBit, nt) }

// NotThru returns whether this edge leads into a region with no through paths.
func (e *DirectedEdge) NotThru() bool { return getFlag(e.route, notThruBit) }

// SetCountryCrossing sets whether this edge crosses a country boundary.
func (e *DirectedEdge) SetCountryCrossing(c bool) { setFlag(&e.route, countryCrossingBit, c) }

// CountryCrossing returns whether this edge crosses a country boundary.
func (e *DirectedEdge) CountryCrossing() bool { return getFlag(e.route, countryCrossingBit) }

// SetNamed sets whether this edge has a name.
func (e *DirectedEdge) SetNamed(named bool) { setFlag(&e.route, namedBit, named) }

// Named returns whether this edge has a name.
func (e *DirectedEdge) Named() bool { return getFlag(e.route, namedBit) }

// SetSidewalkLeft sets whether a sidewalk runs to the left of this edge.
func (e *DirectedEdge) SetSidewalkLeft(sw bool) { setFlag(&e.route, sidewalkLeftBit, sw) }

// SidewalkLeft returns whether a sidewalk runs to the left of this edge.
func (e *DirectedEdge) SidewalkLeft() bool { return getFlag(e.route, sidewalkLeftBit) }

// SetSidewalkRight sets whether a sidewalk runs to the right of this edge.
func (e *DirectedEdge) SetSidewalkRight(sw bool) { setFlag(&e.route, sidewalkRightBit, sw) }

// SidewalkRight returns whether a sidewalk runs to the right of this edge.
func (e *DirectedEdge) SidewalkRight() bool { return getFlag(e.route, sidewalkRightBit) }

// SetTruckRoute sets whether this edge is part of a designated truck route.
func (e *DirectedEdge) SetTruckRoute(tr bool) { setFlag(&e.route, truckRouteBit, tr) }

// TruckRoute returns whether this edge is part of a designated truck route.
func (e *DirectedEdge) TruckRoute() bool { return getFlag(e.route, truckRouteBit) }

// SetInternal sets whether this edge is internal to an intersection.
func (e *DirectedEdge) SetInternal(in bool) { setFlag(&e.route, internalBit, in) }

// Internal returns whether this edge is internal to an intersection.
func (e *DirectedEdge) Internal() bool { return getFlag(e.route, internalBit) }

// SetLink sets whether this edge is a link (ramp or turn channel) connecting
// roads of different classes.
func (e *DirectedEdge) SetLink(link bool) { setFlag(&e.route, linkBit, link) }

// Link returns whether this edge is a link.
func (e *DirectedEdge) Link() bool { return getFlag(e.route, linkBit) }

// SetPartOfComplexRestriction sets whether this edge lies along a complex
// (multi-edge) turn restriction.
func (e *DirectedEdge) SetPartOfComplexRestriction(p bool) {
	setFlag(&e.route, complexRestrictionBit, p)
}

// PartOfComplexRestriction returns whether this edge lies along a complex
// turn restriction.
func (e *DirectedEdge) PartOfComplexRestriction() bool {
	return getFlag(e.route, complexRestrictionBit)
}

// SetDriveOnRight sets whether driving is on the right hand side of the road
// along this edge.
func (e *DirectedEdge) SetDriveOnRight(r bool) { setFlag(&e.route, driveOnRightBit, r) }

// DriveOnRight returns whether driving is on the right hand side of the road.
func (e *DirectedEdge) DriveOnRight() bool { return getFlag(e.route, driveOnRightBit) }

// SetForward sets whether this directed edge is stored forward in the shared
// edge info (true) or reverse (false).
func (e *DirectedEdge) SetForward(fwd bool) { setFlag(&e.route, forwardBit, fwd) }

// Forward returns whether this directed edge is stored forward in the shared
// edge info.
func (e *DirectedEdge) Forward() bool { return getFlag(e.route, forwardBit) }

// SetDeadEnd sets whether this edge is a dead end: no other driveable roads
// at its end node.
func (e *DirectedEdge) SetDeadEnd(d bool) { setFlag(&e.route, deadEndBit, d) }

// DeadEnd returns whether this edge is a dead end.
func (e *DirectedEdge) DeadEnd() bool { return getFlag(e.route, deadEndBit) }

// ---------------------------- Classification ----------------------------

// SetClassification sets the road class (importance) of this edge.
func (e *DirectedEdge) SetClassification(class format.RoadClass) {
	setBits(&e.route, classificationShift, classificationWidth, uint32(class))
}

// Classification returns the road class (importance) of this edge.
func (e *DirectedEdge) Classification() format.RoadClass {
	return format.RoadClass(getBits(e.route, classificationShift, classificationWidth))
}

// SetSurface sets the surface smoothness type of this edge.
func (e *DirectedEdge) SetSurface(surface format.Surface) {
	setBits(&e.route, surfaceShift, surfaceWidth, uint32(surface))
}

// Surface returns the surface smoothness type of this edge.
func (e *DirectedEdge) Surface() format.Surface {
	return format.Surface(getBits(e.route, surfaceShift, surfaceWidth))
}

// SetUse sets the specialized use of this edge. The use selects the valid
// interpretation of the shared stop impact word: transit uses store a line ID
// there, all others store the packed stop impact array.
func (e *DirectedEdge) SetUse(use format.Use) {
	setBits(&e.route, useShift, useWidth, uint32(use))
}

// Use returns the specialized use of this edge.
func (e *DirectedEdge) Use() format.Use {
	return format.Use(getBits(e.route, useShift, useWidth))
}

// SetSpeedType sets where the average speed of this edge came from.
func (e *DirectedEdge) SetSpeedType(st format.SpeedType) {
	setBits(&e.route, speedTypeShift, speedTypeWidth, uint32(st))
}

// SpeedType returns where the average speed of this edge came from.
func (e *DirectedEdge) SpeedType() format.SpeedType {
	return format.SpeedType(getBits(e.route, speedTypeShift, speedTypeWidth))
}

// SetCycleLane sets the type of cycle lane along this edge.
func (e *DirectedEdge) SetCycleLane(cl format.CycleLane) {
	setBits(&e.route, cycleLaneShift, cycleLaneWidth, uint32(cl))
}

// CycleLane returns the type of cycle lane along this edge.
func (e *DirectedEdge) CycleLane() format.CycleLane {
	return format.CycleLane(getBits(e.route, cycleLaneShift, cycleLaneWidth))
}

// SetBikeNetwork sets the bicycle network membership mask. A mask beyond the
// legal network bits falls back to 0.
func (e *DirectedEdge) SetBikeNetwork(mask uint32) *Diagnostic {
	maxMask := format.NetworkNational | format.NetworkRegional |
		format.NetworkLocal | format.NetworkMountain
	if mask > maxMask {
		setBits(&e.route, bikeNetworkShift, bikeNetworkWidth, 0)

		return clamped("bike_network", uint64(mask), 0)
	}
	setBits(&e.route, bikeNetworkShift, bikeNetworkWidth, mask)

	return nil
}

// BikeNetwork returns the bicycle network membership mask.
func (e *DirectedEdge) BikeNetwork() uint32 {
	return getBits(e.route, bikeNetworkShift, bikeNetworkWidth)
}
