package edge

import (
	"fmt"

	"github.com/viamaps/graphtile/endian"
	"github.com/viamaps/graphtile/errs"
)

// DirectedEdge is one directed edge of the routable graph, packed into a
// fixed 56-byte record so a country-scale tile set can be memory-mapped and
// traversed with minimal cache pressure.
//
// The record is built from six 64-bit words plus two 32-bit words. Bit
// positions within each word are fixed (see const.go) and append-only across
// format versions: reserved bits may gain meaning, existing bits never move.
//
//	Word       Offset  Contents
//	endNode    0-7     end node graph identifier (opaque)
//	extended   8-15    edge info offset (25), access restriction modes (12), exit sign (1)
//	geo        16-23   length (24), grade (4), curvature (4), up/down slope (5+5),
//	                   speed (8), speed limit (8)
//	route      24-31   22 attribute flags, cycle lane (2), bike network (4), use (6),
//	                   speed type (2), classification (3), surface (3), restrictions (8)
//	access     32-39   forward/reverse access (12+12), start/end complex restriction (12+12)
//	hierarchy  40-47   local idx (7), opp local idx (7), opp idx (7), shortcut (10),
//	                   superseded (10), lanes (4), density (4), truck speed (8)
//	turn       48-51   turn type per inbound index (8x3), edge-to-left flags (8x1)
//	impact     52-55   union: stop impact (8x3) + edge-to-right flags (8x1), or
//	                   transit line ID (32) when Use().IsTransit()
//
// A DirectedEdge is a plain value: no pointers, no allocation in any getter.
// Records are mutated single-threaded during tile assembly and are read-only
// once serialized, so any number of concurrent readers may share one record.
type DirectedEdge struct {
	endNode   uint64
	extended  uint64
	geo       uint64
	route     uint64
	access    uint64
	hierarchy uint64
	turn      uint32
	impact    uint32
}

// NewDirectedEdge creates a zeroed directed edge record. The weighted grade
// is initialized to DefaultGradeFactor ("flat"); every other field is zero.
func NewDirectedEdge() DirectedEdge {
	return DirectedEdge{
		geo: uint64(DefaultGradeFactor) << gradeShift,
	}
}

// getBits returns the width-bit field at the given shift within w.
func getBits(w uint64, shift, width uint) uint32 {
	return uint32((w >> shift) & ((1 << width) - 1))
}

// setBits replaces the width-bit field at the given shift within *w. Value
// bits above width are masked off so neighbors can never be disturbed.
func setBits(w *uint64, shift, width uint, v uint32) {
	mask := uint64((1<<width)-1) << shift
	*w = (*w &^ mask) | ((uint64(v) << shift) & mask)
}

func getFlag(w uint64, bit uint) bool {
	return (w>>bit)&1 != 0
}

func setFlag(w *uint64, bit uint, v bool) {
	if v {
		*w |= 1 << bit
	} else {
		*w &^= 1 << bit
	}
}

// ---------------------------- Topology ----------------------------

// SetEndNode sets the graph identifier of the node at the end of this edge.
// The identifier is opaque to this layer; it is resolved by the tile index.
func (e *DirectedEdge) SetEndNode(id uint64) {
	e.endNode = id
}

// EndNode returns the graph identifier of the end node.
func (e *DirectedEdge) EndNode() uint64 {
	return e.endNode
}

// SetOppIndex sets the index of the opposing directed edge at the end node.
// The index is masked to the field width.
func (e *DirectedEdge) SetOppIndex(idx uint32) {
	setBits(&e.hierarchy, oppIndexShift, oppIndexWidth, idx)
}

// OppIndex returns the index of the opposing directed edge at the end node.
func (e *DirectedEdge) OppIndex() uint32 {
	return getBits(e.hierarchy, oppIndexShift, oppIndexWidth)
}

// SetLeavesTile sets whether the end node of this edge is in a different tile.
func (e *DirectedEdge) SetLeavesTile(leaves bool) {
	setFlag(&e.route, leavesTileBit, leaves)
}

// LeavesTile returns whether the end node of this edge is in a different tile.
func (e *DirectedEdge) LeavesTile() bool {
	return getFlag(e.route, leavesTileBit)
}

// ---------------------- Extended data offsets ----------------------

// SetEdgeInfoOffset sets the offset to the common edge data within the shared
// edge info blob. An offset above MaxEdgeInfoOffset is unrecoverable (the edge
// could never be located in the companion data) and returns
// errs.ErrEdgeInfoOffsetTooLarge; tile construction must abort for this edge.
func (e *DirectedEdge) SetEdgeInfoOffset(offset uint32) error {
	if offset > MaxEdgeInfoOffset {
		return fmt.Errorf("%w: %d", errs.ErrEdgeInfoOffsetTooLarge, offset)
	}
	setBits(&e.extended, edgeInfoOffsetShift, edgeInfoOffsetWidth, offset)

	return nil
}

// EdgeInfoOffset returns the offset into the shared edge info blob.
func (e *DirectedEdge) EdgeInfoOffset() uint32 {
	return getBits(e.extended, edgeInfoOffsetShift, edgeInfoOffsetWidth)
}

// SetAccessRestriction sets the travel modes which have access restrictions
// on this edge. Bits above the field width are masked off.
func (e *DirectedEdge) SetAccessRestriction(modes uint32) {
	setBits(&e.extended, accessRestrictionBits, accessWidth, modes)
}

// AccessRestriction returns the travel modes with access restrictions.
func (e *DirectedEdge) AccessRestriction() uint32 {
	return getBits(e.extended, accessRestrictionBits, accessWidth)
}

// HasAccessRestriction returns whether any travel mode has an access
// restriction on this edge.
func (e *DirectedEdge) HasAccessRestriction() bool {
	return e.AccessRestriction() != 0
}

// SetExitSign sets whether an exit sign exists along this edge.
func (e *DirectedEdge) SetExitSign(exit bool) {
	setFlag(&e.extended, exitSignBit, exit)
}

// HasExitSign returns whether an exit sign exists along this edge.
func (e *DirectedEdge) HasExitSign() bool {
	return getFlag(e.extended, exitSignBit)
}

// ---------------------------- Serialization ----------------------------

// Bytes returns the record as a byte slice using the specified endian engine.
func (e *DirectedEdge) Bytes(engine endian.EndianEngine) []byte {
	var b [RecordSize]byte // stack allocation, it's faster than heap allocation
	e.put(b[:], engine)

	return b[:]
}

// WriteToSlice writes the record to a pre-allocated slice at the given offset
// and returns the next write position. The slice must have RecordSize bytes
// of space at offset.
func (e *DirectedEdge) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	e.put(data[offset:offset+RecordSize], engine)

	return offset + RecordSize
}

func (e *DirectedEdge) put(b []byte, engine endian.EndianEngine) {
	engine.PutUint64(b[0:8], e.endNode)
	engine.PutUint64(b[8:16], e.extended)
	engine.PutUint64(b[16:24], e.geo)
	engine.PutUint64(b[24:32], e.route)
	engine.PutUint64(b[32:40], e.access)
	engine.PutUint64(b[40:48], e.hierarchy)
	engine.PutUint32(b[48:52], e.turn)
	engine.PutUint32(b[52:56], e.impact)
}

// ParseDirectedEdge parses a DirectedEdge from a byte slice. Every bit
// pattern is accepted: decoding is total, getters never panic over mapped
// bytes regardless of content.
func ParseDirectedEdge(data []byte, engine endian.EndianEngine) (DirectedEdge, error) {
	if len(data) < RecordSize {
		return DirectedEdge{}, errs.ErrInvalidRecordSize
	}

	return DirectedEdge{
		endNode:   engine.Uint64(data[0:8]),
		extended:  engine.Uint64(data[8:16]),
		geo:       engine.Uint64(data[16:24]),
		route:     engine.Uint64(data[24:32]),
		access:    engine.Uint64(data[32:40]),
		hierarchy: engine.Uint64(data[40:48]),
		turn:      engine.Uint32(data[48:52]),
		impact:    engine.Uint32(data[52:56]),
	}, nil
}
