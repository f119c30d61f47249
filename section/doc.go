// Package section implements the edge block: the serialized form of a tile's
// directed-edge array as it passes from the tile builder to the tile mapper.
//
// A block is a fixed 24-byte header followed by the edge records at a fixed
// 56-byte stride, optionally compressed as a whole. The header records the
// byte order, the compression codec, the edge count and an xxHash64 checksum
// of the uncompressed payload, so a decoder can reject a corrupt or
// truncated block before parsing a single record.
//
// The surrounding tile container (index structures, node arrays, the shared
// edge info blob) is out of scope here; this package only covers the edge
// array payload itself.
package section
