package blockfile

import (
	"bufio"
	"fmt"
	"os"

	"github.com/idxlab/termblock/encoding"
	"github.com/idxlab/termblock/endian"
	"github.com/idxlab/termblock/errs"
	"github.com/idxlab/termblock/format"
	"github.com/idxlab/termblock/internal/pool"
	"github.com/idxlab/termblock/section"
)

// Writer serializes an ordered set of (term, doc freqs, posting list)
// entries into one block file.
//
// The zero value is not usable; create writers with NewWriter. A Writer
// holds no open file between calls and is safe to reuse for multiple
// Write calls, each of which recreates the destination from scratch.
type Writer struct {
	path   string
	engine endian.EndianEngine
}

// NewWriter creates a Writer for the given destination path.
func NewWriter(path string) *Writer {
	return &Writer{
		path:   path,
		engine: endian.GetLittleEndianEngine(),
	}
}

// Write creates (or overwrites) the destination block file from parallel
// slices of terms, document frequencies and raw posting lists.
//
// The three slices must have equal lengths; Write fails with
// errs.ErrLengthMismatch before touching the file system otherwise. Each
// posting list is delta-encoded in canonical ascending doc id order
// regardless of its input order. Terms are written in input order; the
// caller decides the final term ordering.
//
// On an I/O failure partway through, the destination is left truncated.
func (w *Writer) Write(terms []string, docFreqs []format.DocFreq, postingLists [][]format.Posting) error {
	if len(terms) != len(docFreqs) || len(terms) != len(postingLists) {
		return errs.ErrLengthMismatch
	}

	encoder := encoding.NewPostingEncoder()
	defer encoder.Finish()

	encoded := make([][]byte, len(postingLists))
	sizes := make([]int, len(postingLists))
	prevSize := 0
	for i, postings := range postingLists {
		encoder.Reset()
		if err := encoder.WriteSlice(postings, false); err != nil {
			return err
		}
		sizes[i] = encoder.Size() - prevSize
		prevSize = encoder.Size()
	}

	// The encoder accumulated all lists back to back; slice them out.
	all := encoder.Bytes()
	start := 0
	for i, size := range sizes {
		encoded[i] = all[start : start+size]
		start += size
	}

	return w.writeEncoded(terms, docFreqs, encoded)
}

// WriteEncoded is like Write but takes posting lists that are already
// encoded with encoding.PostingEncoder, e.g. lists produced by the merger
// or copied verbatim from another block file. The bytes are stored as
// given; callers are responsible for the ascending doc id invariant.
func (w *Writer) WriteEncoded(terms []string, docFreqs []format.DocFreq, postingLists [][]byte) error {
	if len(terms) != len(docFreqs) || len(terms) != len(postingLists) {
		return errs.ErrLengthMismatch
	}

	return w.writeEncoded(terms, docFreqs, postingLists)
}

func (w *Writer) writeEncoded(terms []string, docFreqs []format.DocFreq, postingLists [][]byte) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("creating block file: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)

	header := section.Header{NumTerms: uint64(len(terms))}
	if _, err := bw.Write(header.Bytes(w.engine)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	for i, term := range terms {
		entry := section.TermEntry{
			Term:           term,
			DocFreqContent: docFreqs[i].Content,
			DocFreqTitle:   docFreqs[i].Title,
			PostingBytes:   postingLists[i],
		}

		buf.Reset()
		entry.AppendTo(buf, w.engine)
		if _, err := buf.WriteTo(bw); err != nil {
			return fmt.Errorf("writing entry for term %q: %w", term, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing block file: %w", err)
	}

	return nil
}
