// Package compress provides the compression codecs used for block file
// archival.
//
// Varint delta encoding already keeps live block files small, so the
// block file format itself carries no compression. These codecs serve the
// cold-storage path: blockfile.Archive compresses a whole block file into
// an archive artifact and blockfile.Restore recovers the original bytes.
//
// Supported algorithms:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// The Zstd codec has two implementations selected at build time: the
// default pure-Go implementation (klauspost/compress/zstd) and a cgo
// implementation (valyala/gozstd) enabled with the "zstd_cgo" build tag
// for workloads where the native library's throughput matters.
//
// All codecs are safe for concurrent use; implementations pool their
// internal encoder and decoder state where the underlying library
// benefits from reuse.
package compress
