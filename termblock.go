// Package termblock implements the storage and codec core of an
// inverted-index segment: compressed posting lists and the binary block
// file that lays out many terms' posting lists in one file with both
// sequential and offset-based random access.
//
// # Core Features
//
//   - Delta + varint posting list compression (doc id, content frequency,
//     title frequency triples)
//   - Single-file term dictionary with inline posting lists
//   - O(1) header stats, offset-chained random access, restartable
//     sequential iteration
//   - Multi-segment posting list merging with configurable relevance
//     weighting
//   - Hash-based term lookup (64-bit xxHash64) via the lookup package
//   - Cold-storage archival with optional compression (Zstd, S2, LZ4)
//
// # Basic Usage
//
// Writing a block file:
//
//	terms := []string{"apple", "banana"}
//	docFreqs := []termblock.DocFreq{{Content: 2, Title: 1}, {Content: 5, Title: 0}}
//	postings := [][]termblock.Posting{
//	    {{DocID: 1, ContentFreq: 1}, {DocID: 4, TitleFreq: 1}},
//	    {{DocID: 2, ContentFreq: 2, TitleFreq: 2}},
//	}
//	err := termblock.WriteBlockFile("segment-000.blk", terms, docFreqs, postings)
//
// Reading it back:
//
//	numTerms, size, _ := termblock.GetStats("segment-000.blk")
//
//	for entry, err := range termblock.IterEntries("segment-000.blk") {
//	    if err != nil {
//	        return err
//	    }
//	    postings, _ := entry.Postings()
//	    fmt.Println(entry.Term, postings)
//	}
//
// Random access resumes from any previously returned NextOffset:
//
//	entry, ok, err := termblock.ReadEntryAt("segment-000.blk", termblock.HeaderLen)
//	entry, ok, err = termblock.ReadEntryAt("segment-000.blk", entry.NextOffset)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the
// encoding, blockfile and merge packages, simplifying the most common use
// cases. For fine-grained control (reusable encoders, pooled buffers,
// term lookup indexes) use those packages directly.
package termblock

import (
	"iter"

	"github.com/idxlab/termblock/blockfile"
	"github.com/idxlab/termblock/encoding"
	"github.com/idxlab/termblock/errs"
	"github.com/idxlab/termblock/format"
	"github.com/idxlab/termblock/internal/hash"
	"github.com/idxlab/termblock/merge"
	"github.com/idxlab/termblock/section"
)

// Posting is one document's contribution to a term's index entry.
// See format.Posting.
type Posting = format.Posting

// DocFreq holds a term's per-field document frequencies.
// See format.DocFreq.
type DocFreq = format.DocFreq

// TermEntry is one decoded term dictionary entry.
// See section.TermEntry.
type TermEntry = section.TermEntry

// HeaderLen is the file offset of the first term dictionary entry.
const HeaderLen = uint64(blockfile.HeaderLen)

// TermID computes the 64-bit xxHash64 identifier of a term, as used by
// the lookup package.
func TermID(term string) uint64 {
	return hash.TermID(term)
}

// EncodeVarint encodes a non-negative integer as an unsigned varint.
//
// Negative values fail with errs.ErrInvalidInput; the underlying codec is
// unsigned-only.
func EncodeVarint(n int64) ([]byte, error) {
	if n < 0 {
		return nil, errs.ErrInvalidInput
	}

	return encoding.AppendUvarint(nil, uint64(n)), nil
}

// DecodeVarint decodes an unsigned varint from the start of data,
// returning the value and the number of bytes consumed.
func DecodeVarint(data []byte) (value uint64, consumed int, err error) {
	return encoding.Uvarint(data)
}

// EncodePostingList encodes a posting list as delta-compressed varint
// triples. If assumeSorted is false the postings are sorted ascending by
// doc id first; the input slice is not modified.
func EncodePostingList(postings []Posting, assumeSorted bool) ([]byte, error) {
	encoder := encoding.NewPostingEncoder()
	defer encoder.Finish()

	if err := encoder.WriteSlice(postings, assumeSorted); err != nil {
		return nil, err
	}

	out := make([]byte, encoder.Size())
	copy(out, encoder.Bytes())

	return out, nil
}

// DecodePostingList decodes a complete posting list.
func DecodePostingList(data []byte) ([]Posting, error) {
	return encoding.NewPostingDecoder().Decode(data)
}

// WriteBlockFile serializes parallel slices of terms, document
// frequencies and posting lists into a block file at path, in input
// order. See blockfile.Writer.
func WriteBlockFile(path string, terms []string, docFreqs []DocFreq, postingLists [][]Posting) error {
	return blockfile.NewWriter(path).Write(terms, docFreqs, postingLists)
}

// GetStats returns the term count recorded in the block file header and
// the file's total size in bytes.
func GetStats(path string) (numTerms uint64, fileSize int64, err error) {
	return blockfile.NewReader(path).Stats()
}

// ReadEntryAt reads the term dictionary entry at the given offset of the
// block file. ok is false at a clean end of file. See
// blockfile.Reader.ReadEntryAt.
func ReadEntryAt(path string, offset uint64) (entry *TermEntry, ok bool, err error) {
	return blockfile.NewReader(path).ReadEntryAt(offset)
}

// IterEntries returns a restartable iterator over all entries of the
// block file at path, in file order. See blockfile.Reader.All.
func IterEntries(path string) iter.Seq2[*TermEntry, error] {
	return blockfile.NewReader(path).All()
}

// MergePostingLists merges several encoded posting lists into one,
// ranking with the given options (equal content/title weights by
// default). The result is encoded ascending by doc id.
func MergePostingLists(encodedLists [][]byte, opts ...merge.Option) ([]byte, error) {
	return merge.New(opts...).Merge(encodedLists)
}
