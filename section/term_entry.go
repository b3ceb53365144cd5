package section

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/idxlab/termblock/encoding"
	"github.com/idxlab/termblock/endian"
	"github.com/idxlab/termblock/errs"
	"github.com/idxlab/termblock/format"
	"github.com/idxlab/termblock/internal/pool"
)

// TermEntry is the in-memory form of one term dictionary entry.
//
// Offset and NextOffset are derived while reading or writing and are never
// stored in the file: Offset is the position of the entry's length prefix,
// NextOffset the position one past the entry's last posting byte. Chaining
// NextOffset values reproduces sequential iteration.
type TermEntry struct {
	// Term is the dictionary term, valid UTF-8.
	Term string

	// DocFreqContent is the number of documents containing the term in
	// their content.
	DocFreqContent uint64

	// DocFreqTitle is the number of documents containing the term in
	// their title.
	DocFreqTitle uint64

	// PostingBytes is the term's posting list as encoded by
	// encoding.PostingEncoder. The entry stores the raw bytes; use
	// Postings to decode them.
	PostingBytes []byte

	// Offset is the byte position of this entry's length prefix within
	// the block file. Derived, not stored.
	Offset uint64

	// NextOffset is the byte position of the next entry's length prefix.
	// Derived, not stored.
	NextOffset uint64
}

// EncodedSize returns the number of bytes AppendTo emits for the entry.
func (e *TermEntry) EncodedSize() int {
	return TermLenSize + len(e.Term) +
		encoding.UvarintLen(e.DocFreqContent) +
		encoding.UvarintLen(e.DocFreqTitle) +
		encoding.UvarintLen(uint64(len(e.PostingBytes))) +
		len(e.PostingBytes)
}

// AppendTo serializes the entry into buf using the specified endian engine.
func (e *TermEntry) AppendTo(buf *pool.ByteBuffer, engine endian.EndianEngine) {
	buf.Grow(e.EncodedSize())

	var lenPrefix [TermLenSize]byte
	engine.PutUint32(lenPrefix[:], uint32(len(e.Term))) //nolint:gosec
	buf.MustWrite(lenPrefix[:])
	buf.MustWrite([]byte(e.Term))

	buf.B = encoding.AppendUvarint(buf.B, e.DocFreqContent)
	buf.B = encoding.AppendUvarint(buf.B, e.DocFreqTitle)
	buf.B = encoding.AppendUvarint(buf.B, uint64(len(e.PostingBytes)))
	buf.MustWrite(e.PostingBytes)
}

// Postings decodes the entry's posting list.
func (e *TermEntry) Postings() ([]format.Posting, error) {
	return encoding.NewPostingDecoder().Decode(e.PostingBytes)
}

// ReadEntry parses one term dictionary entry from r, which must be
// positioned at an entry's length prefix located at the given file offset.
//
// A clean end of file at the length prefix (including a short read of the
// prefix itself) returns ok=false with a nil error: running out of entries
// is the expected termination condition, not a failure. Any truncation
// past the prefix is an error: errs.ErrMalformedVarint for the header
// varints, a wrapped io error for term or posting bytes. Term bytes that
// are not valid UTF-8 fail with errs.ErrInvalidUTF8.
//
// On success the returned entry has Offset set to offset and NextOffset
// set to the position of the following entry.
func ReadEntry(r *bufio.Reader, offset uint64, engine endian.EndianEngine) (entry *TermEntry, ok bool, err error) {
	var lenPrefix [TermLenSize]byte
	if _, err := io.ReadFull(r, lenPrefix[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			// Short read at an entry boundary: no more entries.
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("reading term length at offset %d: %w", offset, err)
	}

	termLen := engine.Uint32(lenPrefix[:])
	termBytes := make([]byte, termLen)
	if _, err := io.ReadFull(r, termBytes); err != nil {
		return nil, false, fmt.Errorf("reading term at offset %d: %w", offset, err)
	}
	if !utf8.Valid(termBytes) {
		return nil, false, errs.ErrInvalidUTF8
	}

	docFreqContent, n1, err := encoding.ReadUvarint(r)
	if err != nil {
		return nil, false, err
	}
	docFreqTitle, n2, err := encoding.ReadUvarint(r)
	if err != nil {
		return nil, false, err
	}
	postingLen, n3, err := encoding.ReadUvarint(r)
	if err != nil {
		return nil, false, err
	}

	postingBytes := make([]byte, postingLen)
	if _, err := io.ReadFull(r, postingBytes); err != nil {
		return nil, false, fmt.Errorf("reading posting list at offset %d: %w", offset, err)
	}

	entry = &TermEntry{
		Term:           string(termBytes),
		DocFreqContent: docFreqContent,
		DocFreqTitle:   docFreqTitle,
		PostingBytes:   postingBytes,
		Offset:         offset,
		NextOffset:     offset + TermLenSize + uint64(termLen) + uint64(n1+n2+n3) + postingLen,
	}

	return entry, true, nil
}
