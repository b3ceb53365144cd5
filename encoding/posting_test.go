package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idxlab/termblock/errs"
	"github.com/idxlab/termblock/format"
)

func TestPostingEncoder_Empty(t *testing.T) {
	encoder := NewPostingEncoder()
	defer encoder.Finish()

	err := encoder.WriteSlice(nil, false)
	require.NoError(t, err)
	require.Equal(t, 0, encoder.Len())
	require.Equal(t, 0, encoder.Size())
	require.Empty(t, encoder.Bytes())

	decoder := NewPostingDecoder()
	postings, err := decoder.Decode(nil)
	require.NoError(t, err)
	require.Empty(t, postings)
}

func TestPostingEncoder_SortsUnsortedInput(t *testing.T) {
	input := []format.Posting{
		{DocID: 5, ContentFreq: 2, TitleFreq: 1},
		{DocID: 3, ContentFreq: 0, TitleFreq: 4},
		{DocID: 10, ContentFreq: 1, TitleFreq: 1},
	}

	encoder := NewPostingEncoder()
	defer encoder.Finish()
	require.NoError(t, encoder.WriteSlice(input, false))
	require.Equal(t, 3, encoder.Len())

	// Sorted order (3,0,4), (5,2,1), (10,1,1) gives deltas 3, 2, 5; all
	// values are below 128 so every varint is a single byte.
	expected := []byte{3, 0, 4, 2, 2, 1, 5, 1, 1}
	require.Equal(t, expected, encoder.Bytes())

	// Input slice must not be reordered.
	require.Equal(t, uint32(5), input[0].DocID)

	decoded, err := NewPostingDecoder().Decode(encoder.Bytes())
	require.NoError(t, err)
	require.Equal(t, []format.Posting{
		{DocID: 3, ContentFreq: 0, TitleFreq: 4},
		{DocID: 5, ContentFreq: 2, TitleFreq: 1},
		{DocID: 10, ContentFreq: 1, TitleFreq: 1},
	}, decoded)
}

func TestPostingEncoder_AssumeSorted(t *testing.T) {
	postings := []format.Posting{
		{DocID: 1, ContentFreq: 5, TitleFreq: 2},
		{DocID: 3, ContentFreq: 10, TitleFreq: 4},
		{DocID: 7, ContentFreq: 15, TitleFreq: 6},
		{DocID: 20, ContentFreq: 25, TitleFreq: 30},
	}

	encoder := NewPostingEncoder()
	defer encoder.Finish()
	require.NoError(t, encoder.WriteSlice(postings, true))

	decoded, err := NewPostingDecoder().Decode(encoder.Bytes())
	require.NoError(t, err)
	require.Equal(t, postings, decoded)
}

func TestPostingEncoder_Write_OutOfOrder(t *testing.T) {
	encoder := NewPostingEncoder()
	defer encoder.Finish()

	require.NoError(t, encoder.Write(format.Posting{DocID: 10, ContentFreq: 1}))
	err := encoder.Write(format.Posting{DocID: 9, ContentFreq: 1})
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestPostingEncoder_ZeroDocID(t *testing.T) {
	postings := []format.Posting{
		{DocID: 0, ContentFreq: 5, TitleFreq: 2},
		{DocID: 1, ContentFreq: 10, TitleFreq: 4},
	}

	encoder := NewPostingEncoder()
	defer encoder.Finish()
	require.NoError(t, encoder.WriteSlice(postings, true))

	decoded, err := NewPostingDecoder().Decode(encoder.Bytes())
	require.NoError(t, err)
	require.Equal(t, postings, decoded)
}

func TestPostingEncoder_DuplicateDocIDs(t *testing.T) {
	// Duplicates are not contractually produced by callers, but the codec
	// must preserve them: delta 0 encodes and decodes cleanly.
	postings := []format.Posting{
		{DocID: 7, ContentFreq: 1, TitleFreq: 0},
		{DocID: 7, ContentFreq: 2, TitleFreq: 3},
	}

	encoder := NewPostingEncoder()
	defer encoder.Finish()
	require.NoError(t, encoder.WriteSlice(postings, true))

	decoded, err := NewPostingDecoder().Decode(encoder.Bytes())
	require.NoError(t, err)
	require.Equal(t, postings, decoded)
}

func TestPostingEncoder_LargeValues(t *testing.T) {
	postings := []format.Posting{
		{DocID: 1000000, ContentFreq: 50000, TitleFreq: 30000},
		{DocID: 1000001, ContentFreq: 50001, TitleFreq: 30001},
		{DocID: 1000002, ContentFreq: 50002, TitleFreq: 30002},
	}

	encoder := NewPostingEncoder()
	defer encoder.Finish()
	require.NoError(t, encoder.WriteSlice(postings, true))

	decoded, err := NewPostingDecoder().Decode(encoder.Bytes())
	require.NoError(t, err)
	require.Equal(t, postings, decoded)
}

func TestPostingEncoder_ManyPostings(t *testing.T) {
	postings := make([]format.Posting, 1000)
	for i := range postings {
		postings[i] = format.Posting{
			DocID:       uint32(i * 3), //nolint:gosec
			ContentFreq: uint32(i),     //nolint:gosec
			TitleFreq:   uint32(i * 2), //nolint:gosec
		}
	}

	encoder := NewPostingEncoder()
	defer encoder.Finish()
	require.NoError(t, encoder.WriteSlice(postings, true))
	require.Equal(t, 1000, encoder.Len())

	decoded, err := NewPostingDecoder().Decode(encoder.Bytes())
	require.NoError(t, err)
	require.Equal(t, postings, decoded)
}

func TestPostingEncoder_Reset(t *testing.T) {
	encoder := NewPostingEncoder()
	defer encoder.Finish()

	require.NoError(t, encoder.Write(format.Posting{DocID: 100, ContentFreq: 1}))
	sizeFirst := encoder.Size()

	// Reset starts a new delta chain; the buffer keeps accumulating.
	encoder.Reset()
	require.NoError(t, encoder.Write(format.Posting{DocID: 4, ContentFreq: 2}))

	require.Equal(t, 2, encoder.Len())
	second := encoder.Bytes()[sizeFirst:]
	decoded, err := NewPostingDecoder().Decode(second)
	require.NoError(t, err)
	require.Equal(t, []format.Posting{{DocID: 4, ContentFreq: 2}}, decoded)
}

func TestPostingEncoder_Finish(t *testing.T) {
	encoder := NewPostingEncoder()
	require.NoError(t, encoder.Write(format.Posting{DocID: 1, ContentFreq: 1}))
	encoder.Finish()

	require.Equal(t, 0, encoder.Len())
	require.Equal(t, 0, encoder.Size())
	require.Empty(t, encoder.Bytes())
}

func TestPostingDecoder_TruncatedTriple(t *testing.T) {
	encoder := NewPostingEncoder()
	defer encoder.Finish()
	require.NoError(t, encoder.WriteSlice([]format.Posting{
		{DocID: 3, ContentFreq: 1, TitleFreq: 2},
		{DocID: 5, ContentFreq: 4, TitleFreq: 6},
	}, true))

	// Two triples of single-byte varints: 6 bytes total.
	data := encoder.Bytes()
	require.Len(t, data, 6)

	decoder := NewPostingDecoder()

	// Cutting inside the second triple must fail.
	for cut := 4; cut < 6; cut++ {
		_, err := decoder.Decode(data[:cut])
		require.ErrorIs(t, err, errs.ErrMalformedVarint)
	}

	// Cutting at the triple boundary is a clean shorter list.
	decoded, err := decoder.Decode(data[:3])
	require.NoError(t, err)
	require.Equal(t, []format.Posting{{DocID: 3, ContentFreq: 1, TitleFreq: 2}}, decoded)
}

func TestPostingDecoder_All_EarlyStop(t *testing.T) {
	postings := []format.Posting{
		{DocID: 1, ContentFreq: 1, TitleFreq: 1},
		{DocID: 2, ContentFreq: 2, TitleFreq: 2},
		{DocID: 3, ContentFreq: 3, TitleFreq: 3},
	}

	encoder := NewPostingEncoder()
	defer encoder.Finish()
	require.NoError(t, encoder.WriteSlice(postings, true))

	var got []format.Posting
	for p := range NewPostingDecoder().All(encoder.Bytes()) {
		got = append(got, p)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, postings[:2], got)
}

func TestPostingDecoder_All_MatchesDecode(t *testing.T) {
	postings := []format.Posting{
		{DocID: 42, ContentFreq: 10, TitleFreq: 5},
		{DocID: 100, ContentFreq: 3, TitleFreq: 0},
	}

	encoder := NewPostingEncoder()
	defer encoder.Finish()
	require.NoError(t, encoder.WriteSlice(postings, true))

	var fromAll []format.Posting
	for p := range NewPostingDecoder().All(encoder.Bytes()) {
		fromAll = append(fromAll, p)
	}

	fromDecode, err := NewPostingDecoder().Decode(encoder.Bytes())
	require.NoError(t, err)
	require.Equal(t, fromDecode, fromAll)
}
