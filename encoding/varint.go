package encoding

import (
	"io"

	"github.com/idxlab/termblock/errs"
)

// MaxVarintLen is the maximum number of bytes a varint-encoded uint64 can
// occupy: 64 payload bits at 7 bits per byte require 10 bytes. A stream
// that has not terminated after 10 bytes is malformed.
const MaxVarintLen = 10

// AppendUvarint appends the varint encoding of v to dst and returns the
// extended slice.
//
// The encoding is the LEB128 / Protocol Buffers base-128 format: 7 payload
// bits per byte, low-order group first, high bit set on every byte except
// the last. Zero encodes to a single 0x00 byte.
func AppendUvarint(dst []byte, v uint64) []byte {
	for v > 0x7F {
		dst = append(dst, byte(v&0x7F)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// UvarintLen returns the number of bytes AppendUvarint emits for v.
func UvarintLen(v uint64) int {
	n := 1
	for v > 0x7F {
		v >>= 7
		n++
	}

	return n
}

// Uvarint decodes a varint from the start of data and returns the value
// and the number of bytes consumed.
//
// It fails with errs.ErrMalformedVarint if data is exhausted before a
// terminating byte (high bit clear) is found, or if MaxVarintLen bytes are
// consumed without termination.
func Uvarint(data []byte) (uint64, int, error) {
	var value uint64
	var shift uint

	for i, b := range data {
		if i >= MaxVarintLen {
			return 0, 0, errs.ErrMalformedVarint
		}

		value |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return value, i + 1, nil
		}
		shift += 7
	}

	return 0, 0, errs.ErrMalformedVarint
}

// ReadUvarint decodes a varint by pulling single bytes from r.
//
// This is the byte-source form of Uvarint for callers that hold a stream
// rather than a byte slice; any io.ByteReader works, including
// bufio.Reader and bytes.Reader. It returns the decoded value and the
// number of bytes consumed.
//
// A clean end of stream before the first byte, and truncation mid-varint,
// both fail with errs.ErrMalformedVarint: a varint is never optional where
// this function is called.
func ReadUvarint(r io.ByteReader) (uint64, int, error) {
	var value uint64
	var shift uint

	for i := 0; ; i++ {
		if i >= MaxVarintLen {
			return 0, 0, errs.ErrMalformedVarint
		}

		b, err := r.ReadByte()
		if err != nil {
			return 0, 0, errs.ErrMalformedVarint
		}

		value |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return value, i + 1, nil
		}
		shift += 7
	}
}
