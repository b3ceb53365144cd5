package blockfile

import (
	"fmt"
	"os"

	"github.com/idxlab/termblock/compress"
	"github.com/idxlab/termblock/endian"
	"github.com/idxlab/termblock/errs"
	"github.com/idxlab/termblock/format"
)

// Archive envelope layout (little-endian):
//
//	magic            u32 ("TBAR")
//	version          u8
//	compression      u8 (format.CompressionType)
//	original_size    u64
//	payload          compressed block file bytes
const (
	archiveMagic      uint32 = 0x52414254 // "TBAR" in little-endian byte order
	archiveVersion    byte   = 1
	archiveHeaderSize        = 4 + 1 + 1 + 8
)

// Archive compresses the block file at srcPath into a cold-storage
// archive at dstPath using the given compression type.
//
// The block file itself is unchanged; the archive is a separate artifact
// that Restore converts back into a byte-identical block file. Archiving
// reads the whole file into memory, which matches the block file
// lifecycle of bounded, single-write segments.
func Archive(srcPath, dstPath string, compressionType format.CompressionType) error {
	codec, err := compress.CreateCodec(compressionType, "archive")
	if err != nil {
		return err
	}

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading block file: %w", err)
	}

	payload, err := codec.Compress(data)
	if err != nil {
		return fmt.Errorf("compressing block file: %w", err)
	}

	engine := endian.GetLittleEndianEngine()
	out := make([]byte, 0, archiveHeaderSize+len(payload))
	out = engine.AppendUint32(out, archiveMagic)
	out = append(out, archiveVersion, byte(compressionType))
	out = engine.AppendUint64(out, uint64(len(data)))
	out = append(out, payload...)

	if err := os.WriteFile(dstPath, out, 0o644); err != nil {
		return fmt.Errorf("writing archive: %w", err)
	}

	return nil
}

// Restore decompresses the archive at srcPath into a block file at
// dstPath, reproducing the originally archived bytes exactly.
//
// It fails with errs.ErrInvalidArchive if the envelope's magic number,
// version or compression type is not recognized, or if the decompressed
// size does not match the size recorded at archive time.
func Restore(srcPath, dstPath string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading archive: %w", err)
	}

	if len(data) < archiveHeaderSize {
		return errs.ErrInvalidArchive
	}

	engine := endian.GetLittleEndianEngine()
	if engine.Uint32(data[0:4]) != archiveMagic || data[4] != archiveVersion {
		return errs.ErrInvalidArchive
	}

	compressionType := format.CompressionType(data[5])
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return errs.ErrInvalidArchive
	}

	originalSize := engine.Uint64(data[6:archiveHeaderSize])

	restored, err := codec.Decompress(data[archiveHeaderSize:])
	if err != nil {
		return fmt.Errorf("decompressing archive: %w", err)
	}
	if uint64(len(restored)) != originalSize {
		return errs.ErrInvalidArchive
	}

	if err := os.WriteFile(dstPath, restored, 0o644); err != nil {
		return fmt.Errorf("writing block file: %w", err)
	}

	return nil
}
