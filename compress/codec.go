package compress

import (
	"fmt"

	"github.com/viamaps/graphtile/format"
)

// Compressor compresses an edge block payload.
//
// The input is a fully serialized run of fixed-size directed-edge records;
// the returned slice is newly allocated and owned by the caller (except for
// the no-op codec, which passes the input through).
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores an edge block payload previously compressed with the
// matching algorithm. It validates the data format and returns an error if
// the data is corrupted or uses an incompatible format.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities. All
// built-in codecs are stateless values safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
