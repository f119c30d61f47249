// Package errs defines the sentinel errors shared across graphtile packages.
//
// Callers should match these with errors.Is; decode paths wrap them with
// additional context via fmt.Errorf("...: %w", ...).
package errs

import "errors"

var (
	// ErrEdgeInfoOffsetTooLarge indicates an edge-info offset beyond the
	// representable range. The edge cannot be located in the companion
	// variable-length data, so tile construction must abort for this edge.
	ErrEdgeInfoOffsetTooLarge = errors.New("edge info offset exceeds maximum")

	// ErrInvalidRecordSize indicates a byte slice that is too short to hold a
	// complete directed-edge record.
	ErrInvalidRecordSize = errors.New("invalid directed edge record size")

	// ErrInvalidHeaderSize indicates an edge block header that is not exactly
	// HeaderSize bytes.
	ErrInvalidHeaderSize = errors.New("invalid edge block header size")

	// ErrInvalidHeaderFlags indicates an edge block header with a bad magic
	// number or an unsupported compression type.
	ErrInvalidHeaderFlags = errors.New("invalid edge block header flags")

	// ErrInvalidBlockSize indicates an edge block whose payload length does not
	// match the edge count recorded in the header.
	ErrInvalidBlockSize = errors.New("invalid edge block payload size")

	// ErrChecksumMismatch indicates that the edge payload checksum does not
	// match the checksum recorded in the block header.
	ErrChecksumMismatch = errors.New("edge block checksum mismatch")
)
