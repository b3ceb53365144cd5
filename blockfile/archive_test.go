package blockfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idxlab/termblock/errs"
	"github.com/idxlab/termblock/format"
)

func TestArchive_RoundTrip(t *testing.T) {
	compressionTypes := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ctype := range compressionTypes {
		t.Run(ctype.String(), func(t *testing.T) {
			dir := t.TempDir()
			path := writeTestFile(t)
			archivePath := filepath.Join(dir, "segment.blk.ar")
			restoredPath := filepath.Join(dir, "restored.blk")

			require.NoError(t, Archive(path, archivePath, ctype))
			require.NoError(t, Restore(archivePath, restoredPath))

			original, err := os.ReadFile(path)
			require.NoError(t, err)
			restored, err := os.ReadFile(restoredPath)
			require.NoError(t, err)
			require.Equal(t, original, restored)

			// The restored file serves identical reads.
			numTerms, size, err := NewReader(restoredPath).Stats()
			require.NoError(t, err)
			require.Equal(t, uint64(2), numTerms)
			require.Equal(t, int64(len(original)), size)
		})
	}
}

func TestArchive_InvalidCompressionType(t *testing.T) {
	path := writeTestFile(t)
	err := Archive(path, path+".ar", format.CompressionType(0xEE))
	require.Error(t, err)
}

func TestRestore_InvalidArchive(t *testing.T) {
	dir := t.TempDir()

	// Too short for the envelope.
	short := filepath.Join(dir, "short.ar")
	require.NoError(t, os.WriteFile(short, []byte{1, 2, 3}, 0o644))
	err := Restore(short, filepath.Join(dir, "out.blk"))
	require.ErrorIs(t, err, errs.ErrInvalidArchive)

	// Right size, wrong magic.
	bogus := filepath.Join(dir, "bogus.ar")
	require.NoError(t, os.WriteFile(bogus, make([]byte, archiveHeaderSize), 0o644))
	err = Restore(bogus, filepath.Join(dir, "out.blk"))
	require.ErrorIs(t, err, errs.ErrInvalidArchive)
}

func TestRestore_MissingFile(t *testing.T) {
	dir := t.TempDir()
	err := Restore(filepath.Join(dir, "missing.ar"), filepath.Join(dir, "out.blk"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
