// Package compress provides the compression codecs used for edge block
// payloads.
//
// Compression applies to a whole serialized edge array at once: fixed-stride
// records with many zero reserved bits compress extremely well with
// general-purpose algorithms. Four codecs are built in:
//
//   - None: no compression (fastest, largest)
//   - Zstd: best ratio, for cold storage and distribution
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, for frequently remapped tiles
//
// Codecs are selected by format.CompressionType and recorded in the edge
// block header, so a decoder always knows which codec produced a payload.
// All built-in codecs are stateless and safe for concurrent use.
package compress
