// Package errs defines the sentinel error values returned by termblock.
//
// All typed failures in this module wrap or equal one of these values, so
// callers can classify failures with errors.Is without string matching.
// I/O failures from the underlying file system are not represented here;
// they are propagated wrapped with %w and remain matchable against the
// standard library's os and io error values.
package errs

import "errors"

var (
	// ErrInvalidInput indicates a caller-supplied value that the API cannot
	// accept, such as a negative integer passed to the signed convenience
	// varint encoder.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedVarint indicates a varint byte stream that is truncated
	// before its terminating byte, or that exceeds the maximum encoded
	// length of 10 bytes without terminating.
	ErrMalformedVarint = errors.New("malformed varint")

	// ErrInvalidUTF8 indicates term bytes in a block file that are not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("term bytes are not valid UTF-8")

	// ErrLengthMismatch indicates parallel input slices of differing
	// lengths passed to the block file writer.
	ErrLengthMismatch = errors.New("terms, doc freqs and posting lists have different lengths")

	// ErrTermAlreadyTracked indicates the same term was registered twice
	// with a collision tracker.
	ErrTermAlreadyTracked = errors.New("term already tracked")

	// ErrInvalidHeader indicates a block file too short to contain the
	// 8-byte header.
	ErrInvalidHeader = errors.New("invalid block file header")

	// ErrInvalidArchive indicates an archive file whose magic number,
	// version or compression type byte is not recognized.
	ErrInvalidArchive = errors.New("invalid archive file")
)
