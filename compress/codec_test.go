package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viamaps/graphtile/format"
)

// samplePayload imitates a serialized edge array: repetitive fixed-stride
// content with long zero runs.
func samplePayload() []byte {
	record := make([]byte, 56)
	for i := 0; i < 20; i++ {
		record[i] = byte(i * 7)
	}

	return bytes.Repeat(record, 200)
}

func TestCodecsRoundTrip(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	payload := samplePayload()
	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)

			if ct != format.CompressionNone {
				require.Less(t, len(compressed), len(payload))
			}
		})
	}
}

func TestCodecsEmptyInput(t *testing.T) {
	for ct := range builtinCodecs {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xF))
	require.Error(t, err)
}
