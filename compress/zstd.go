package compress

// ZstdCompressor provides Zstandard compression for block file archives.
//
// Zstd favors compression ratio over speed, which fits the archival path:
// archives are written once and decompressed rarely. Delta-encoded
// posting payloads compress well under it.
//
// Two implementations exist behind build tags: the default pure-Go
// klauspost/compress encoder, and a cgo gozstd variant enabled with the
// "zstd_cgo" build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
