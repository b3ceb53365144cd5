package blockfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idxlab/termblock/section"
)

func writeTestFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "segment.blk")
	terms, docFreqs, postings := testInput()
	require.NoError(t, NewWriter(path).Write(terms, docFreqs, postings))

	return path
}

func TestReader_Stats(t *testing.T) {
	path := writeTestFile(t)

	numTerms, size, err := NewReader(path).Stats()
	require.NoError(t, err)
	require.Equal(t, uint64(2), numTerms)
	require.Greater(t, size, int64(0))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, info.Size(), size)
}

func TestReader_Stats_MissingFile(t *testing.T) {
	_, _, err := NewReader(filepath.Join(t.TempDir(), "missing.blk")).Stats()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReader_All(t *testing.T) {
	path := writeTestFile(t)
	terms, docFreqs, postings := testInput()

	var entries []*section.TermEntry
	for entry, err := range NewReader(path).All() {
		require.NoError(t, err)
		entries = append(entries, entry)
	}
	require.Len(t, entries, len(terms))

	for i, entry := range entries {
		require.Equal(t, terms[i], entry.Term)
		require.Equal(t, docFreqs[i].Content, entry.DocFreqContent)
		require.Equal(t, docFreqs[i].Title, entry.DocFreqTitle)

		decoded, err := entry.Postings()
		require.NoError(t, err)
		require.Equal(t, postings[i], decoded)
	}
}

func TestReader_All_Restartable(t *testing.T) {
	path := writeTestFile(t)
	reader := NewReader(path)

	countFirst := 0
	for _, err := range reader.All() {
		require.NoError(t, err)
		countFirst++
	}

	// A second range over the same sequence starts from the beginning.
	seq := reader.All()
	countSecond := 0
	for _, err := range seq {
		require.NoError(t, err)
		countSecond++
	}
	countThird := 0
	for _, err := range seq {
		require.NoError(t, err)
		countThird++
	}

	require.Equal(t, 2, countFirst)
	require.Equal(t, 2, countSecond)
	require.Equal(t, 2, countThird)
}

func TestReader_All_EarlyBreak(t *testing.T) {
	path := writeTestFile(t)

	count := 0
	for _, err := range NewReader(path).All() {
		require.NoError(t, err)
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestReader_ReadEntryAt_ChainMatchesAll(t *testing.T) {
	path := writeTestFile(t)
	reader := NewReader(path)

	var fromAll []*section.TermEntry
	for entry, err := range reader.All() {
		require.NoError(t, err)
		fromAll = append(fromAll, entry)
	}

	var fromChain []*section.TermEntry
	offset := uint64(HeaderLen)
	for {
		entry, ok, err := reader.ReadEntryAt(offset)
		require.NoError(t, err)
		if !ok {
			break
		}
		fromChain = append(fromChain, entry)
		offset = entry.NextOffset
	}

	require.Equal(t, len(fromAll), len(fromChain))
	for i := range fromAll {
		require.Equal(t, fromAll[i].Term, fromChain[i].Term)
		require.Equal(t, fromAll[i].DocFreqContent, fromChain[i].DocFreqContent)
		require.Equal(t, fromAll[i].DocFreqTitle, fromChain[i].DocFreqTitle)
		require.Equal(t, fromAll[i].PostingBytes, fromChain[i].PostingBytes)
		require.Equal(t, fromAll[i].Offset, fromChain[i].Offset)
		require.Equal(t, fromAll[i].NextOffset, fromChain[i].NextOffset)
	}
}

func TestReader_ReadEntryAt_EOF(t *testing.T) {
	path := writeTestFile(t)
	reader := NewReader(path)

	info, err := os.Stat(path)
	require.NoError(t, err)

	// End of file at an entry boundary is a clean "no more entries".
	entry, ok, err := reader.ReadEntryAt(uint64(info.Size())) //nolint:gosec
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, entry)
}

func TestReader_All_TruncatedFile(t *testing.T) {
	path := writeTestFile(t)

	// Truncate at the second entry's length prefix: iteration must stop
	// early without an error even though the header promises two terms.
	var firstNext uint64
	for entry, err := range NewReader(path).All() {
		require.NoError(t, err)
		firstNext = entry.NextOffset
		break
	}
	require.NoError(t, os.Truncate(path, int64(firstNext))) //nolint:gosec

	count := 0
	for _, err := range NewReader(path).All() {
		require.NoError(t, err)
		count++
	}
	require.Equal(t, 1, count)
}
