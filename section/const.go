package section

const (
	// Bit masks for the EdgeBlockFlag options word.
	EndiannessMask  = 0x0001 // Mask for endianness bit (bit 0), 0 means little-endian.
	ReservedMask    = 0x000E // Mask for reserved bits (bits 1-3), must be set to 0.
	CompressionMask = 0x00F0 // Mask for payload compression type (bits 4-7).
	MagicNumberMask = 0xFF00 // Mask for magic number (bits 8-15).

	// MagicEdgeBlockV1 is the version 1 magic number for the edge block format.
	MagicEdgeBlockV1 = 0xED00

	compressionShift = 4
)

// Offsets and sizes in the edge block.
const (
	// HeaderSize is the fixed edge block header size in bytes.
	HeaderSize = 24
	// PayloadOffset is the byte offset where the (possibly compressed) edge
	// payload starts.
	PayloadOffset = HeaderSize
)
