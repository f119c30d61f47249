// Package bitfield provides the shared sub-field packing primitive used by
// the directed-edge record.
//
// Several edge attributes are small fixed-width arrays packed into one storage
// word and addressed by a local edge index (turn type, edge-to-left,
// edge-to-right, stop impact). All of them must go through Overwrite: a
// bit-offset bug in hand-rolled shift/mask logic corrupts unrelated sub-fields
// sharing the same word.
package bitfield

// Overwrite replaces the width-bit element at element index pos within dst
// and returns the updated word. Elements are packed contiguously starting at
// bit 0, so element pos occupies bits [pos*width, (pos+1)*width).
//
// src bits above width are masked off before insertion so an oversized value
// can never spill into a neighboring element.
func Overwrite(dst, src, pos, width uint32) uint32 {
	shift := pos * width
	mask := ((uint32(1) << width) - 1) << shift

	return (dst &^ mask) | ((src << shift) & mask)
}

// Extract returns the width-bit element at element index pos within src.
func Extract(src, pos, width uint32) uint32 {
	shift := pos * width

	return (src >> shift) & ((uint32(1) << width) - 1)
}
