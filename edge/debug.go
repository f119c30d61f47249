package edge

import (
	"github.com/sugawarayuuta/sonnet"

	"github.com/viamaps/graphtile/format"
)

// accessMap decodes an access mode mask into named booleans. It is the single
// decode point for every access-shaped mask in the debug view, so the
// human-readable output can never drift from the binary truth.
func accessMap(mask uint32) map[string]any {
	return map[string]any{
		"bicycle":    mask&format.AccessBicycle != 0,
		"bus":        mask&format.AccessBus != 0,
		"car":        mask&format.AccessAuto != 0,
		"emergency":  mask&format.AccessEmergency != 0,
		"HOV":        mask&format.AccessHOV != 0,
		"pedestrian": mask&format.AccessPedestrian != 0,
		"taxi":       mask&format.AccessTaxi != 0,
		"truck":      mask&format.AccessTruck != 0,
		"wheelchair": mask&format.AccessWheelchair != 0,
	}
}

func bikeNetworkMap(mask uint32) map[string]any {
	return map[string]any{
		"national": mask&format.NetworkNational != 0,
		"regional": mask&format.NetworkRegional != 0,
		"local":    mask&format.NetworkLocal != 0,
		"mountain": mask&format.NetworkMountain != 0,
	}
}

// DebugMap returns a nested key-value representation of every field for
// tooling and debugging. It is not a wire format: consumers must not depend
// on key order or on the presence of experimental fields. All values come
// from the same getters the routing path uses.
func (e *DirectedEdge) DebugMap() map[string]any {
	m := map[string]any{
		"end_node":                    e.EndNode(),
		"leaves_tile":                 e.LeavesTile(),
		"speed":                       e.Speed(),
		"speed_limit":                 e.SpeedLimit(),
		"truck_speed":                 e.TruckSpeed(),
		"access_restriction":          e.HasAccessRestriction(),
		"start_restriction":           accessMap(e.StartRestriction()),
		"end_restriction":             accessMap(e.EndRestriction()),
		"part_of_complex_restriction": e.PartOfComplexRestriction(),
		"has_exit_sign":               e.HasExitSign(),
		"drive_on_right":              e.DriveOnRight(),
		"toll":                        e.Toll(),
		"seasonal":                    e.Seasonal(),
		"destination_only":            e.DestOnly(),
		"tunnel":                      e.Tunnel(),
		"bridge":                      e.Bridge(),
		"round_about":                 e.Roundabout(),
		"unreachable":                 e.Unreachable(),
		"traffic_signal":              e.TrafficSignal(),
		"forward":                     e.Forward(),
		"not_thru":                    e.NotThru(),
		"dead_end":                    e.DeadEnd(),
		"named":                       e.Named(),
		"sidewalk_left":               e.SidewalkLeft(),
		"sidewalk_right":              e.SidewalkRight(),
		"cycle_lane":                  e.CycleLane().String(),
		"bike_network":                bikeNetworkMap(e.BikeNetwork()),
		"truck_route":                 e.TruckRoute(),
		"lane_count":                  e.LaneCount(),
		"use":                         e.Use().String(),
		"speed_type":                  e.SpeedType().String(),
		"country_crossing":            e.CountryCrossing(),
		"geo_attributes": map[string]any{
			"length":         e.Length(),
			"weighted_grade": e.WeightedGradeRatio(),
			"max_up_slope":   e.MaxUpSlope(),
			"max_down_slope": e.MaxDownSlope(),
		},
		"access": accessMap(e.ForwardAccess()),
		"classification": map[string]any{
			"classification": e.Classification().String(),
			"surface":        e.Surface().String(),
			"link":           e.Link(),
			"internal":       e.Internal(),
		},
		"hierarchy": map[string]any{
			"local_edge_index": e.LocalEdgeIndex(),
			"opp_local_index":  e.OppLocalIndex(),
			"shortcut_mask":    e.Shortcut(),
			"superseded_mask":  e.Superseded(),
			"is_shortcut":      e.IsShortcut(),
			"transition_up":    e.TransitionUp(),
			"transition_down":  e.TransitionDown(),
		},
	}
	if e.Use().IsTransit() {
		m["line_id"] = e.LineID()
	}

	return m
}

// DebugJSON returns the DebugMap serialized as JSON.
func (e *DirectedEdge) DebugJSON() ([]byte, error) {
	return sonnet.Marshal(e.DebugMap())
}
