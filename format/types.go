// Package format defines the shared value types of the termblock module:
// the posting triple, the per-term document frequencies, and the
// compression type used by block file archival.
package format

// Posting is one document's contribution to a term's index entry.
//
// DocID identifies a document within the index's numbering space.
// ContentFreq and TitleFreq are the term's occurrence counts in the
// document body and title respectively.
type Posting struct {
	DocID       uint32
	ContentFreq uint32
	TitleFreq   uint32
}

// DocFreq holds the per-term document frequencies stored in a term
// dictionary entry: the number of documents containing the term in the
// content and in the title.
type DocFreq struct {
	Content uint64
	Title   uint64
}

// CompressionType identifies the compression codec applied to an archived
// block file.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
