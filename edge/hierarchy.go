package edge

import (
	"github.com/viamaps/graphtile/format"
	"github.com/viamaps/graphtile/internal/bitfield"
)

// SetLocalEdgeIndex sets the index of this edge on the local hierarchy level,
// clamped to MaxEdgesPerNode. Turn restrictions identify edges across levels
// through this index.
func (e *DirectedEdge) SetLocalEdgeIndex(idx uint32) *Diagnostic {
	if idx > MaxEdgesPerNode {
		setBits(&e.hierarchy, localEdgeIdxShift, localEdgeIdxWidth, MaxEdgesPerNode)

		return clamped("local_edge_index", uint64(idx), MaxEdgesPerNode)
	}
	setBits(&e.hierarchy, localEdgeIdxShift, localEdgeIdxWidth, idx)

	return nil
}

// LocalEdgeIndex returns the index of this edge on the local hierarchy level.
func (e *DirectedEdge) LocalEdgeIndex() uint32 {
	return getBits(e.hierarchy, localEdgeIdxShift, localEdgeIdxWidth)
}

// SetOppLocalIndex sets the index of the opposing edge on the local hierarchy
// level at the end node, clamped to MaxEdgesPerNode.
func (e *DirectedEdge) SetOppLocalIndex(idx uint32) *Diagnostic {
	if idx > MaxEdgesPerNode {
		setBits(&e.hierarchy, oppLocalIdxShift, oppLocalIdxWidth, MaxEdgesPerNode)

		return clamped("opp_local_index", uint64(idx), MaxEdgesPerNode)
	}
	setBits(&e.hierarchy, oppLocalIdxShift, oppLocalIdxWidth, idx)

	return nil
}

// OppLocalIndex returns the index of the opposing edge on the local hierarchy
// level at the end node.
func (e *DirectedEdge) OppLocalIndex() uint32 {
	return getBits(e.hierarchy, oppLocalIdxShift, oppLocalIdxWidth)
}

// SetShortcut marks this edge as shortcut k (1-based) from its start node:
// bit k-1 of the shortcut mask is set, and the is-shortcut flag is set.
// k = 0 is not a valid shortcut slot; the call is ignored and the prior state
// preserved. For k beyond MaxShortcutsFromNode the mask cannot represent the
// slot, so only the is-shortcut flag is set.
func (e *DirectedEdge) SetShortcut(k uint32) *Diagnostic {
	if k == 0 {
		return ignored("shortcut", 0)
	}

	var diag *Diagnostic
	if k <= MaxShortcutsFromNode {
		setBits(&e.hierarchy, shortcutShift, shortcutWidth, 1<<(k-1))
	} else {
		diag = ignored("shortcut", uint64(k))
	}
	setFlag(&e.route, isShortcutBit, true)

	return diag
}

// Shortcut returns the one-hot shortcut mask: bit k-1 set means this edge is
// shortcut k from its start node.
func (e *DirectedEdge) Shortcut() uint32 {
	return getBits(e.hierarchy, shortcutShift, shortcutWidth)
}

// IsShortcut returns whether this edge is a shortcut.
func (e *DirectedEdge) IsShortcut() bool {
	return getFlag(e.route, isShortcutBit)
}

// SetSuperseded marks this edge as superseded by shortcut k (1-based): bit
// k-1 of the superseded mask is set. k = 0 is rejected and the prior state
// preserved, symmetric with SetShortcut; k beyond MaxShortcutsFromNode is
// likewise ignored.
func (e *DirectedEdge) SetSuperseded(k uint32) *Diagnostic {
	if k == 0 || k > MaxShortcutsFromNode {
		return ignored("superseded", uint64(k))
	}
	setBits(&e.hierarchy, supersededShift, supersededWidth, 1<<(k-1))

	return nil
}

// Superseded returns the one-hot superseded mask: bit k-1 set means this edge
// is made redundant by shortcut k.
func (e *DirectedEdge) Superseded() uint32 {
	return getBits(e.hierarchy, supersededShift, supersededWidth)
}

// SetTransitionUp marks this edge as a transition up one hierarchy level.
func (e *DirectedEdge) SetTransitionUp() {
	e.SetUse(format.UseTransitionUp)
}

// TransitionUp returns whether this edge transitions up one hierarchy level.
func (e *DirectedEdge) TransitionUp() bool {
	return e.Use() == format.UseTransitionUp
}

// SetTransitionDown marks this edge as a transition down one hierarchy level.
func (e *DirectedEdge) SetTransitionDown() {
	e.SetUse(format.UseTransitionDown)
}

// TransitionDown returns whether this edge transitions down one hierarchy
// level.
func (e *DirectedEdge) TransitionDown() bool {
	return e.Use() == format.UseTransitionDown
}

// ------------------- Per-inbound-index sub-fields -------------------
//
// The following attributes are small arrays packed into shared 32-bit words,
// addressed by the local index of the inbound edge at the start node. An
// index above MaxLocalEdgeIndex leaves the stored word untouched: writing
// through it would corrupt a neighboring sub-field.

// SetTurnType sets the turn type for the transition from the inbound edge
// with the given local index.
func (e *DirectedEdge) SetTurnType(localidx uint32, turn format.TurnType) *Diagnostic {
	if localidx > MaxLocalEdgeIndex {
		return ignored("turn_type", uint64(localidx))
	}
	e.turn = bitfield.Overwrite(e.turn, uint32(turn), localidx, turnTypeFieldWidth)

	return nil
}

// TurnType returns the turn type for the transition from the inbound edge
// with the given local index. Out-of-range indices read as TurnStraight.
func (e *DirectedEdge) TurnType(localidx uint32) format.TurnType {
	if localidx > MaxLocalEdgeIndex {
		return format.TurnStraight
	}

	return format.TurnType(bitfield.Extract(e.turn, localidx, turnTypeFieldWidth))
}

// SetEdgeToLeft sets whether another edge lies to the left, in between the
// inbound edge with the given local index and this edge.
func (e *DirectedEdge) SetEdgeToLeft(localidx uint32, left bool) *Diagnostic {
	if localidx > MaxLocalEdgeIndex {
		return ignored("edge_to_left", uint64(localidx))
	}
	var v uint32
	if left {
		v = 1
	}
	flags := bitfield.Overwrite(e.turn>>edgeToLeftShift, v, localidx, edgeFlagFieldWidth)
	e.turn = (e.turn & ((1 << edgeToLeftShift) - 1)) | (flags << edgeToLeftShift)

	return nil
}

// EdgeToLeft returns whether another edge lies to the left, in between the
// inbound edge with the given local index and this edge.
func (e *DirectedEdge) EdgeToLeft(localidx uint32) bool {
	if localidx > MaxLocalEdgeIndex {
		return false
	}

	return bitfield.Extract(e.turn>>edgeToLeftShift, localidx, edgeFlagFieldWidth) != 0
}

// ----------------------- Stop impact / transit union -----------------------
//
// One 32-bit word is shared between two interpretations. For road edges it
// packs the per-inbound-index stop impact array with the edge-to-right flag
// array. For transit edges (Use().IsTransit()) the whole word is the transit
// line ID. The caller selects the interpretation from the edge's use; the
// word is never both at once.

// SetStopImpact sets the stop impact cost for the transition from the inbound
// edge with the given local index, clamping the cost to MaxStopImpact. Must
// not be used on transit edges.
func (e *DirectedEdge) SetStopImpact(localidx, impact uint32) *Diagnostic {
	if localidx > MaxLocalEdgeIndex {
		return ignored("stop_impact", uint64(localidx))
	}

	var diag *Diagnostic
	if impact > MaxStopImpact {
		diag = clamped("stop_impact", uint64(impact), MaxStopImpact)
		impact = MaxStopImpact
	}
	e.impact = bitfield.Overwrite(e.impact, impact, localidx, stopImpactFieldWidth)

	return diag
}

// StopImpact returns the stop impact cost for the transition from the inbound
// edge with the given local index.
func (e *DirectedEdge) StopImpact(localidx uint32) uint32 {
	if localidx > MaxLocalEdgeIndex {
		return 0
	}

	return bitfield.Extract(e.impact, localidx, stopImpactFieldWidth)
}

// SetEdgeToRight sets whether another edge lies to the right, in between the
// inbound edge with the given local index and this edge. Must not be used on
// transit edges.
func (e *DirectedEdge) SetEdgeToRight(localidx uint32, right bool) *Diagnostic {
	if localidx > MaxLocalEdgeIndex {
		return ignored("edge_to_right", uint64(localidx))
	}
	var v uint32
	if right {
		v = 1
	}
	flags := bitfield.Overwrite(e.impact>>edgeToRightShift, v, localidx, edgeFlagFieldWidth)
	e.impact = (e.impact & ((1 << edgeToRightShift) - 1)) | (flags << edgeToRightShift)

	return nil
}

// EdgeToRight returns whether another edge lies to the right, in between the
// inbound edge with the given local index and this edge.
func (e *DirectedEdge) EdgeToRight(localidx uint32) bool {
	if localidx > MaxLocalEdgeIndex {
		return false
	}

	return bitfield.Extract(e.impact>>edgeToRightShift, localidx, edgeFlagFieldWidth) != 0
}

// SetLineID sets the unique transit line ID, overwriting the stop impact
// interpretation of the shared word. Only valid for transit edges.
func (e *DirectedEdge) SetLineID(lineid uint32) {
	e.impact = lineid
}

// LineID returns the unique transit line ID. Only valid for transit edges.
func (e *DirectedEdge) LineID() uint32 {
	return e.impact
}
