// Package merge combines several encoded posting lists, typically one per
// segment, into a single encoded posting list.
//
// Merging decodes every input independently, concatenates the postings
// into one multiset, ranks them by a weighted relevance key, and then
// re-encodes the result. Ranking is an in-memory step only: the emitted
// bytes are always re-encoded in ascending doc id order so the delta
// encoding invariant of the posting codec holds. Feeding relevance order
// into delta encoding would produce negative deltas that the unsigned
// varint format cannot represent.
package merge

import (
	"slices"

	"github.com/idxlab/termblock/encoding"
	"github.com/idxlab/termblock/format"
)

const (
	// DefaultContentWeight is the default weight of ContentFreq in the
	// relevance score.
	DefaultContentWeight = 1.0

	// DefaultTitleWeight is the default weight of TitleFreq in the
	// relevance score. Callers that consider title hits stronger signals
	// commonly raise this (e.g. 4x the content weight).
	DefaultTitleWeight = 1.0
)

// Merger merges encoded posting lists with a configurable relevance
// weighting. A Merger is stateless apart from its configuration and safe
// for concurrent use.
type Merger struct {
	contentWeight float64
	titleWeight   float64
}

// Option configures a Merger.
type Option func(*Merger)

// WithWeights sets the relative weights of content and title frequency in
// the relevance score. The weighting is a ranking policy choice of the
// caller, not fixed by the codec.
func WithWeights(content, title float64) Option {
	return func(m *Merger) {
		m.contentWeight = content
		m.titleWeight = title
	}
}

// New creates a Merger with the given options. Without options both
// frequencies carry equal weight.
func New(opts ...Option) *Merger {
	m := &Merger{
		contentWeight: DefaultContentWeight,
		titleWeight:   DefaultTitleWeight,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Merge decodes every input posting list, merges the postings and
// re-encodes them as one posting list.
//
// Each input must be an individually well-formed posting codec output;
// a malformed input fails with errs.ErrMalformedVarint. Duplicate doc ids
// across inputs are preserved: the result holds the multiset union of
// the inputs' postings. Empty input (no lists, or only empty lists)
// produces an empty byte sequence.
//
// The ranking pass sorts by descending weighted score, then descending
// ContentFreq, descending TitleFreq and ascending DocID. Its outcome is
// informational; the returned bytes are encoded ascending by doc id.
func (m *Merger) Merge(encodedLists [][]byte) ([]byte, error) {
	decoder := encoding.NewPostingDecoder()

	var merged []format.Posting
	for _, data := range encodedLists {
		postings, err := decoder.Decode(data)
		if err != nil {
			return nil, err
		}
		merged = append(merged, postings...)
	}

	if len(merged) == 0 {
		return []byte{}, nil
	}

	m.rank(merged)

	encoder := encoding.NewPostingEncoder()
	defer encoder.Finish()

	if err := encoder.WriteSlice(merged, false); err != nil {
		return nil, err
	}

	out := make([]byte, encoder.Size())
	copy(out, encoder.Bytes())

	return out, nil
}

// Rank sorts postings in place by the merger's relevance key: descending
// weighted score, then descending ContentFreq, descending TitleFreq, and
// ascending DocID as the final tie-break.
func (m *Merger) Rank(postings []format.Posting) {
	m.rank(postings)
}

func (m *Merger) rank(postings []format.Posting) {
	slices.SortFunc(postings, func(a, b format.Posting) int {
		scoreA := m.score(a)
		scoreB := m.score(b)
		switch {
		case scoreA > scoreB:
			return -1
		case scoreA < scoreB:
			return 1
		}

		switch {
		case a.ContentFreq > b.ContentFreq:
			return -1
		case a.ContentFreq < b.ContentFreq:
			return 1
		}

		switch {
		case a.TitleFreq > b.TitleFreq:
			return -1
		case a.TitleFreq < b.TitleFreq:
			return 1
		}

		switch {
		case a.DocID < b.DocID:
			return -1
		case a.DocID > b.DocID:
			return 1
		default:
			return 0
		}
	})
}

func (m *Merger) score(p format.Posting) float64 {
	return m.contentWeight*float64(p.ContentFreq) + m.titleWeight*float64(p.TitleFreq)
}
