// Package graphtile provides the packed binary records of a routable
// road-network graph tile.
//
// The core type is edge.DirectedEdge: a fixed 56-byte record packing roughly
// forty attributes of one directed edge (geometry, speeds, access masks,
// turn semantics, hierarchy links) so a country-scale graph can be
// memory-mapped and traversed with minimal I/O and cache pressure. The
// section package serializes finished records into checksummed, optionally
// compressed edge blocks for the build-to-map hand-off.
//
// # Basic Usage
//
// Building and serializing edges:
//
//	e := edge.NewDirectedEdge()
//	e.SetEndNode(nodeID)
//	if err := e.SetEdgeInfoOffset(offset); err != nil {
//	    return err // unrecoverable, abort this edge
//	}
//	if d := e.SetSpeed(kph); d != nil {
//	    log.Println(d) // clamped, the stored value is the contract
//	}
//
//	block, err := graphtile.EncodeEdgeBlock(edges,
//	    section.WithCompression(format.CompressionLZ4))
//
// Reading them back:
//
//	edges, err := graphtile.DecodeEdgeBlock(block)
package graphtile

import (
	"github.com/viamaps/graphtile/edge"
	"github.com/viamaps/graphtile/section"
)

// EncodeEdgeBlock serializes directed edge records into an edge block.
func EncodeEdgeBlock(edges []edge.DirectedEdge, opts ...section.Option) ([]byte, error) {
	return section.Encode(edges, opts...)
}

// DecodeEdgeBlock parses an edge block back into directed edge records.
func DecodeEdgeBlock(data []byte) ([]edge.DirectedEdge, error) {
	return section.Decode(data)
}
