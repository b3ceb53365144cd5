package blockfile

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/idxlab/termblock/endian"
	"github.com/idxlab/termblock/section"
)

// HeaderLen is the file offset of the first term dictionary entry; the
// starting offset for a random-access walk of a block file.
const HeaderLen = section.HeaderSize

// Reader provides access to one block file: O(1) stats, offset-based
// random access to single entries, and restartable sequential iteration.
//
// A Reader is a stateless handle bound to a path. Every operation opens
// the file independently and closes it before returning, so a single
// Reader is safe for concurrent use and multiple Readers may access the
// same file at once.
type Reader struct {
	path   string
	engine endian.EndianEngine
}

// NewReader creates a Reader for the given block file path.
func NewReader(path string) *Reader {
	return &Reader{
		path:   path,
		engine: endian.GetLittleEndianEngine(),
	}
}

// Stats returns the number of terms recorded in the header and the total
// file size in bytes. It reads only the 8-byte header; cost is O(1) in
// the entry count.
func (r *Reader) Stats() (numTerms uint64, fileSize int64, err error) {
	f, err := os.Open(r.path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening block file: %w", err)
	}
	defer f.Close()

	var headerBytes [section.HeaderSize]byte
	if _, err := io.ReadFull(f, headerBytes[:]); err != nil {
		return 0, 0, fmt.Errorf("reading block file header: %w", err)
	}

	header, err := section.ParseHeader(headerBytes[:], r.engine)
	if err != nil {
		return 0, 0, err
	}

	info, err := f.Stat()
	if err != nil {
		return 0, 0, fmt.Errorf("stat block file: %w", err)
	}

	return header.NumTerms, info.Size(), nil
}

// ReadEntryAt reads the single term dictionary entry whose length prefix
// starts at the given file offset.
//
// This is the random-access primitive: the first entry lives at
// HeaderLen, and each returned entry carries the NextOffset from which
// the walk can resume, in this call or any later one.
//
// A clean end of file at offset returns ok=false with a nil error;
// corruption within an entry returns an error as documented on
// section.ReadEntry.
func (r *Reader) ReadEntryAt(offset uint64) (entry *section.TermEntry, ok bool, err error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, false, fmt.Errorf("opening block file: %w", err)
	}
	defer f.Close()

	if _, err := f.Seek(int64(offset), io.SeekStart); err != nil { //nolint:gosec
		return nil, false, fmt.Errorf("seeking to offset %d: %w", offset, err)
	}

	return section.ReadEntry(bufio.NewReader(f), offset, r.engine)
}

// All returns an iterator over every entry in the block file, in file
// order.
//
// The sequence is restartable: each range re-opens the file and decodes
// from the start, and no cursor state is shared between iterations. The
// header's term count bounds the walk; a short read before that many
// entries have been produced ends the sequence early without an error.
// Failures surface as a final non-nil error element.
func (r *Reader) All() iter.Seq2[*section.TermEntry, error] {
	return func(yield func(*section.TermEntry, error) bool) {
		f, err := os.Open(r.path)
		if err != nil {
			yield(nil, fmt.Errorf("opening block file: %w", err))
			return
		}
		defer f.Close()

		var headerBytes [section.HeaderSize]byte
		if _, err := io.ReadFull(f, headerBytes[:]); err != nil {
			yield(nil, fmt.Errorf("reading block file header: %w", err))
			return
		}
		header, err := section.ParseHeader(headerBytes[:], r.engine)
		if err != nil {
			yield(nil, err)
			return
		}

		br := bufio.NewReader(f)
		offset := uint64(HeaderLen)

		for i := uint64(0); i < header.NumTerms; i++ {
			entry, ok, err := section.ReadEntry(br, offset, r.engine)
			if err != nil {
				yield(nil, err)
				return
			}
			if !ok {
				// Fewer entries than the header promised; stop without
				// error, the file was truncated at an entry boundary.
				return
			}

			if !yield(entry, nil) {
				return
			}
			offset = entry.NextOffset
		}
	}
}
