package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viamaps/graphtile/endian"
	"github.com/viamaps/graphtile/errs"
	"github.com/viamaps/graphtile/format"
)

func TestNewEdgeBlockFlag(t *testing.T) {
	flag := NewEdgeBlockFlag()

	require.True(t, flag.IsValidMagicNumber())
	require.True(t, flag.IsLittleEndian())
	require.Equal(t, format.CompressionNone, flag.Compression())
	require.NoError(t, flag.Validate())
}

func TestEdgeBlockFlag_Endianness(t *testing.T) {
	flag := NewEdgeBlockFlag()

	flag.WithBigEndian()
	require.False(t, flag.IsLittleEndian())
	require.Equal(t, endian.GetBigEndianEngine(), flag.GetEndianEngine())

	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())
	require.Equal(t, endian.GetLittleEndianEngine(), flag.GetEndianEngine())
}

func TestEdgeBlockFlag_Compression(t *testing.T) {
	flag := NewEdgeBlockFlag()

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		flag.SetCompression(ct)
		require.Equal(t, ct, flag.Compression())
		require.True(t, flag.IsValidCompression())
		// Compression bits never disturb the magic number.
		require.True(t, flag.IsValidMagicNumber())
	}
}

func TestEdgeBlockFlag_Validate(t *testing.T) {
	t.Run("Bad magic number", func(t *testing.T) {
		flag := EdgeBlockFlag{Options: 0x0000}
		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidHeaderFlags)
	})

	t.Run("Bad compression", func(t *testing.T) {
		flag := NewEdgeBlockFlag()
		flag.SetCompression(format.CompressionType(0xF))
		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidHeaderFlags)
	})
}
