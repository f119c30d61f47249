package section

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/viamaps/graphtile/compress"
	"github.com/viamaps/graphtile/edge"
	"github.com/viamaps/graphtile/errs"
	"github.com/viamaps/graphtile/format"
	"github.com/viamaps/graphtile/internal/pool"
)

// Option configures edge block encoding.
type Option func(*EdgeBlockFlag)

// WithCompression selects the payload compression codec.
func WithCompression(compression format.CompressionType) Option {
	return func(f *EdgeBlockFlag) {
		f.SetCompression(compression)
	}
}

// WithBigEndian stores the payload big-endian. The default is little-endian.
func WithBigEndian() Option {
	return func(f *EdgeBlockFlag) {
		f.WithBigEndian()
	}
}

// Encode serializes a finished run of directed edge records into an edge
// block: a fixed header followed by the records at edge.RecordSize stride,
// optionally compressed. The records are copied; the tile builder may reuse
// its slice afterwards.
func Encode(edges []edge.DirectedEdge, opts ...Option) ([]byte, error) {
	flag := NewEdgeBlockFlag()
	for _, opt := range opts {
		opt(&flag)
	}
	if err := flag.Validate(); err != nil {
		return nil, err
	}

	engine := flag.GetEndianEngine()

	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	payload := buf.ExtendOrGrow(len(edges) * edge.RecordSize)
	offset := 0
	for i := range edges {
		offset = edges[i].WriteToSlice(payload, offset, engine)
	}

	header := NewEdgeBlockHeader()
	header.Flag = flag
	header.EdgeCount = uint32(len(edges))       //nolint: gosec
	header.PayloadLength = uint32(len(payload)) //nolint: gosec
	header.Checksum = xxhash.Sum64(payload)

	codec, err := compress.GetCodec(flag.Compression())
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress edge payload: %w", err)
	}

	out := make([]byte, 0, HeaderSize+len(compressed))
	out = append(out, header.Bytes()...)
	out = append(out, compressed...)

	return out, nil
}

// Decode parses an edge block produced by Encode. The header flag word is
// validated, the payload is decompressed, its length is checked against the
// recorded edge count and its checksum is verified before any record is
// parsed.
func Decode(data []byte) ([]edge.DirectedEdge, error) {
	var header EdgeBlockHeader
	if err := header.Parse(data); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(data[PayloadOffset:])
	if err != nil {
		return nil, fmt.Errorf("decompress edge payload: %w", err)
	}

	if len(payload) != int(header.PayloadLength) ||
		len(payload) != int(header.EdgeCount)*edge.RecordSize {
		return nil, errs.ErrInvalidBlockSize
	}

	if xxhash.Sum64(payload) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	engine := header.Flag.GetEndianEngine()
	edges := make([]edge.DirectedEdge, header.EdgeCount)
	for i := range edges {
		edges[i], err = edge.ParseDirectedEdge(payload[i*edge.RecordSize:], engine)
		if err != nil {
			return nil, err
		}
	}

	return edges, nil
}
