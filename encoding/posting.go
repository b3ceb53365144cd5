package encoding

import (
	"iter"
	"slices"

	"github.com/idxlab/termblock/errs"
	"github.com/idxlab/termblock/format"
	"github.com/idxlab/termblock/internal/pool"
)

// PostingEncoder encodes a posting list as delta-compressed varint triples.
//
// Each posting is emitted as three consecutive varints:
//
//	delta      = doc_id - previous doc_id (previous initialized to 0)
//	content_freq
//	title_freq
//
// Postings must reach the encoder in non-decreasing doc id order so every
// delta is non-negative; WriteSlice can sort unsorted input first, Write
// rejects out-of-order postings. An empty posting list encodes to an empty
// byte sequence.
//
// Internal state:
//   - prevDocID: Previous doc id for delta calculation
//   - temp: Reusable buffer for varint encoding (avoids allocations)
//   - buf: Output buffer accumulating encoded data
//   - count: Number of postings encoded
type PostingEncoder struct {
	prevDocID uint32
	temp      [MaxVarintLen]byte
	buf       *pool.ByteBuffer
	count     int
}

// NewPostingEncoder creates a new posting list encoder.
//
// The encoder uses a pooled byte buffer with amortized growth strategy for
// optimal performance when encoding many postings. Call Finish to return
// the buffer to the pool when done.
func NewPostingEncoder() *PostingEncoder {
	return &PostingEncoder{
		buf: pool.GetEncoderBuffer(),
	}
}

// Write encodes a single posting.
//
// The posting's doc id must be greater than or equal to the previously
// written doc id; Write fails with errs.ErrInvalidInput otherwise, since a
// negative delta is not representable in the unsigned varint format.
//
// Parameters:
//   - p: Posting to encode
//
// Returns:
//   - error: nil if successful, errs.ErrInvalidInput on out-of-order doc id
func (e *PostingEncoder) Write(p format.Posting) error {
	if p.DocID < e.prevDocID {
		return errs.ErrInvalidInput
	}

	e.count++
	e.buf.Grow(3 * 5) // three varints, at most 5 bytes each for uint32 values

	delta := p.DocID - e.prevDocID
	e.prevDocID = p.DocID

	e.writeUvarint(uint64(delta))
	e.writeUvarint(uint64(p.ContentFreq))
	e.writeUvarint(uint64(p.TitleFreq))

	return nil
}

// WriteSlice encodes a slice of postings with buffer pre-allocation.
//
// If assumeSorted is false the input is sorted ascending by doc id before
// encoding; the caller's slice is not modified. Order among postings with
// equal doc ids is not defined. If assumeSorted is true the input is
// trusted as-is and an out-of-order posting fails with
// errs.ErrInvalidInput.
//
// Parameters:
//   - postings: Postings to encode
//   - assumeSorted: Skip sorting (postings already ascending by doc id)
//
// Returns:
//   - error: nil if successful
func (e *PostingEncoder) WriteSlice(postings []format.Posting, assumeSorted bool) error {
	if len(postings) == 0 {
		return nil
	}

	if !assumeSorted {
		sorted := make([]format.Posting, len(postings))
		copy(sorted, postings)
		slices.SortFunc(sorted, func(a, b format.Posting) int {
			switch {
			case a.DocID < b.DocID:
				return -1
			case a.DocID > b.DocID:
				return 1
			default:
				return 0
			}
		})
		postings = sorted
	}

	// Pre-allocate for the common case of small deltas and frequencies.
	e.buf.Grow(len(postings) * 6)

	for _, p := range postings {
		if err := e.Write(p); err != nil {
			return err
		}
	}

	return nil
}

func (e *PostingEncoder) writeUvarint(v uint64) {
	n := 0
	for v > 0x7F {
		e.temp[n] = byte(v&0x7F) | 0x80
		v >>= 7
		n++
	}
	e.temp[n] = byte(v)
	e.buf.MustWrite(e.temp[:n+1])
}

// Bytes returns the encoded byte slice containing all written postings.
//
// The returned slice is valid until the next call to Write, WriteSlice or
// Finish. The caller must not modify the returned slice as it references
// the internal buffer.
func (e *PostingEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of encoded postings.
func (e *PostingEncoder) Len() int {
	return e.count
}

// Size returns the size in bytes of the encoded postings.
func (e *PostingEncoder) Size() int {
	return e.buf.Len()
}

// Reset clears the delta chain so the encoder can start a new independent
// posting list. The accumulated buffer, length and size are unchanged.
func (e *PostingEncoder) Reset() {
	e.prevDocID = 0
}

// Finish finalizes the encoding session.
//
// It returns the internal buffer to the pool and resets all state; after
// calling Finish the encoder behaves as if newly created. Bytes, Len and
// Size return zero values afterwards.
func (e *PostingEncoder) Finish() {
	pool.PutEncoderBuffer(e.buf)
	e.buf = pool.GetEncoderBuffer()
	e.prevDocID = 0
	e.count = 0
}

// PostingDecoder decodes posting lists produced by PostingEncoder.
//
// The decoder is stateless and can be reused across multiple decoding
// operations; each call operates independently on the provided data.
type PostingDecoder struct{}

// NewPostingDecoder creates a new posting list decoder.
func NewPostingDecoder() PostingDecoder {
	return PostingDecoder{}
}

// All returns an iterator that yields postings decoded from data.
//
// Doc ids are reconstructed as a running sum of deltas starting from 0.
// The iterator stops cleanly at the end of data; it also stops early if a
// varint is malformed or a triple is truncated. Use Decode when truncation
// must surface as an error.
//
// Example:
//
//	decoder := NewPostingDecoder()
//	for p := range decoder.All(data) {
//	    fmt.Printf("doc=%d content=%d title=%d\n", p.DocID, p.ContentFreq, p.TitleFreq)
//	}
func (d PostingDecoder) All(data []byte) iter.Seq[format.Posting] {
	return func(yield func(format.Posting) bool) {
		var docID uint32
		offset := 0

		for offset < len(data) {
			delta, n, err := Uvarint(data[offset:])
			if err != nil {
				return
			}
			offset += n

			contentFreq, n, err := Uvarint(data[offset:])
			if err != nil {
				return
			}
			offset += n

			titleFreq, n, err := Uvarint(data[offset:])
			if err != nil {
				return
			}
			offset += n

			docID += uint32(delta) //nolint:gosec

			if !yield(format.Posting{
				DocID:       docID,
				ContentFreq: uint32(contentFreq), //nolint:gosec
				TitleFreq:   uint32(titleFreq),   //nolint:gosec
			}) {
				return
			}
		}
	}
}

// Decode decodes the complete posting list contained in data.
//
// It fails with errs.ErrMalformedVarint if the byte stream ends mid-triple
// or contains a malformed varint. Empty input decodes to an empty slice.
func (d PostingDecoder) Decode(data []byte) ([]format.Posting, error) {
	// Six bytes per posting is the common case for small deltas and
	// frequencies; the slice grows as needed for larger encodings.
	postings := make([]format.Posting, 0, len(data)/6+1)

	var docID uint32
	offset := 0

	for offset < len(data) {
		delta, n, err := Uvarint(data[offset:])
		if err != nil {
			return nil, err
		}
		offset += n

		contentFreq, n, err := Uvarint(data[offset:])
		if err != nil {
			return nil, err
		}
		offset += n

		titleFreq, n, err := Uvarint(data[offset:])
		if err != nil {
			return nil, err
		}
		offset += n

		docID += uint32(delta) //nolint:gosec
		postings = append(postings, format.Posting{
			DocID:       docID,
			ContentFreq: uint32(contentFreq), //nolint:gosec
			TitleFreq:   uint32(titleFreq),   //nolint:gosec
		})
	}

	return postings, nil
}
