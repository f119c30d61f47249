package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viamaps/graphtile/edge"
	"github.com/viamaps/graphtile/errs"
	"github.com/viamaps/graphtile/format"
)

func sampleEdges(t *testing.T, n int) []edge.DirectedEdge {
	t.Helper()

	edges := make([]edge.DirectedEdge, n)
	for i := range edges {
		e := edge.NewDirectedEdge()
		e.SetEndNode(uint64(i) * 31)
		require.NoError(t, e.SetEdgeInfoOffset(uint32(i)*8))
		require.Nil(t, e.SetLength(uint32(100+i)))
		require.Nil(t, e.SetSpeed(uint32(i%edge.MaxSpeed)))
		require.Nil(t, e.SetForwardAccess(format.AccessAuto|format.AccessBicycle))
		e.SetClassification(format.RoadClass(i % 8))
		e.SetToll(i%2 == 0)
		require.Nil(t, e.SetLocalEdgeIndex(uint32(i%127)))
		edges[i] = e
	}

	return edges
}

func TestEncodeDecode(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	edges := sampleEdges(t, 500)
	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			block, err := Encode(edges, WithCompression(ct))
			require.NoError(t, err)

			decoded, err := Decode(block)
			require.NoError(t, err)
			require.Equal(t, edges, decoded)
		})
	}
}

func TestEncodeDecode_BigEndian(t *testing.T) {
	edges := sampleEdges(t, 16)

	block, err := Encode(edges, WithBigEndian(), WithCompression(format.CompressionS2))
	require.NoError(t, err)

	decoded, err := Decode(block)
	require.NoError(t, err)
	require.Equal(t, edges, decoded)
}

func TestEncodeDecode_Empty(t *testing.T) {
	block, err := Encode(nil)
	require.NoError(t, err)
	require.Len(t, block, HeaderSize)

	decoded, err := Decode(block)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestDecode_CorruptPayload(t *testing.T) {
	edges := sampleEdges(t, 10)
	block, err := Encode(edges)
	require.NoError(t, err)

	// Flip one bit in the payload; the checksum must catch it.
	block[HeaderSize+17] ^= 0x40
	_, err = Decode(block)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestDecode_TruncatedPayload(t *testing.T) {
	edges := sampleEdges(t, 10)
	block, err := Encode(edges)
	require.NoError(t, err)

	_, err = Decode(block[:len(block)-edge.RecordSize])
	require.ErrorIs(t, err, errs.ErrInvalidBlockSize)
}

func TestDecode_BadHeader(t *testing.T) {
	_, err := Decode(make([]byte, 4))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestEncode_InvalidCompression(t *testing.T) {
	_, err := Encode(sampleEdges(t, 1), WithCompression(format.CompressionType(0xE)))
	require.Error(t, err)
}
