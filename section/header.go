package section

import (
	"github.com/idxlab/termblock/endian"
	"github.com/idxlab/termblock/errs"
)

// Header is the fixed 8-byte header at the start of every block file.
//
// NumTerms records the number of term dictionary entries that follow. It
// equals the number of entries actually present in a well-formed file.
type Header struct {
	NumTerms uint64
}

// Bytes returns the header as an 8-byte slice using the specified endian
// engine.
func (h Header) Bytes(engine endian.EndianEngine) []byte {
	var b [HeaderSize]byte // stack allocation, it's faster than heap allocation
	engine.PutUint64(b[:], h.NumTerms)

	return b[:]
}

// ParseHeader parses a block file header from data.
//
// It fails with errs.ErrInvalidHeader if data holds fewer than HeaderSize
// bytes.
func ParseHeader(data []byte, engine endian.EndianEngine) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeader
	}

	return Header{NumTerms: engine.Uint64(data[:HeaderSize])}, nil
}
