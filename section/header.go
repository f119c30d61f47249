package section

import (
	"github.com/viamaps/graphtile/errs"
)

// EdgeBlockHeader is the fixed-size header at the start of an edge block.
// It is 24 bytes; the (possibly compressed) edge payload follows immediately.
type EdgeBlockHeader struct {
	// EdgeCount is the number of directed edge records in the payload.
	EdgeCount uint32 // byte offset 4-7

	// PayloadLength is the byte length of the uncompressed edge payload,
	// always EdgeCount * edge.RecordSize. With compression enabled the bytes
	// following the header are shorter than this.
	PayloadLength uint32 // byte offset 8-11

	// Checksum is the xxHash64 of the uncompressed edge payload. It is
	// verified on decode before any record is parsed.
	Checksum uint64 // byte offset 16-23

	// Flag is the packed options word with magic number, endianness and
	// compression type.
	Flag EdgeBlockFlag // byte offset 0-1, bytes 2-3 and 12-15 are reserved
}

// NewEdgeBlockHeader creates a header with default flags. The count, length
// and checksum are set when the encoder finishes.
func NewEdgeBlockHeader() EdgeBlockHeader {
	return EdgeBlockHeader{
		Flag: NewEdgeBlockFlag(),
	}
}

// Bytes returns the header as a byte slice. The flag word is always stored
// little-endian so a reader can learn the payload byte order from it; the
// remaining fields use the byte order the flag declares.
func (h *EdgeBlockHeader) Bytes() []byte {
	var b [HeaderSize]byte
	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)

	engine := h.Flag.GetEndianEngine()
	engine.PutUint32(b[4:8], h.EdgeCount)
	engine.PutUint32(b[8:12], h.PayloadLength)
	engine.PutUint64(b[16:24], h.Checksum)

	return b[:]
}

// Parse parses the header from a byte slice and validates the flag word.
func (h *EdgeBlockHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The flag word is always little-endian; it determines the byte order of
	// everything else.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.EdgeCount = engine.Uint32(data[4:8])
	h.PayloadLength = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint64(data[16:24])

	return nil
}
