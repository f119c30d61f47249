package compress

// ZstdCompressor compresses edge block payloads with Zstandard. It has the
// best compression ratio of the built-in codecs and is the right choice for
// cold tile storage and network distribution.
//
// Two implementations exist behind build tags: the cgo build uses
// valyala/gozstd (libzstd bindings), the pure-Go build falls back to
// klauspost/compress/zstd. Both produce interchangeable zstd frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
