package section

import (
	"github.com/viamaps/graphtile/endian"
	"github.com/viamaps/graphtile/errs"
	"github.com/viamaps/graphtile/format"
)

// EdgeBlockFlag is the packed options word of an edge block header.
//
// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
// Bits 1-3 are reserved for future use, must be set to 0.
// Bits 4-7 hold the payload compression type.
// Bits 8-15 are the magic number identifying the edge block format:
//   - 0xED00: edge block format v1
type EdgeBlockFlag struct {
	Options uint16
}

var validCompressions = map[format.CompressionType]struct{}{
	format.CompressionNone: {},
	format.CompressionZstd: {},
	format.CompressionS2:   {},
	format.CompressionLZ4:  {},
}

// NewEdgeBlockFlag creates a flag with default settings: little-endian,
// no compression.
func NewEdgeBlockFlag() EdgeBlockFlag {
	flag := EdgeBlockFlag{Options: MagicEdgeBlockV1}
	flag.SetCompression(format.CompressionNone)
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the block payload is little-endian.
func (f EdgeBlockFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// WithLittleEndian sets little-endian byte order.
func (f *EdgeBlockFlag) WithLittleEndian() {
	f.Options &^= uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *EdgeBlockFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// Compression returns the payload compression type from bits 4-7.
func (f EdgeBlockFlag) Compression() format.CompressionType {
	return format.CompressionType((f.Options & CompressionMask) >> compressionShift)
}

// SetCompression sets the payload compression type in bits 4-7.
func (f *EdgeBlockFlag) SetCompression(compression format.CompressionType) {
	f.Options &^= uint16(CompressionMask)
	f.Options |= (uint16(compression) << compressionShift) & CompressionMask
}

// GetMagicNumber returns the magic number from the options word.
func (f EdgeBlockFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f EdgeBlockFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicEdgeBlockV1
}

// IsValidCompression checks if the compression type is valid.
func (f EdgeBlockFlag) IsValidCompression() bool {
	_, ok := validCompressions[f.Compression()]

	return ok
}

// Validate checks if the flag word contains valid values.
func (f EdgeBlockFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.IsValidCompression() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the endian engine matching the flag.
func (f EdgeBlockFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
