// Package lookup provides O(1) term access over a block file.
//
// A block file supports random access by offset, but finding the offset
// of a given term requires a linear walk. Index performs that walk once
// at build time and keeps a map from 64-bit term hashes (xxHash64) to
// entry offsets; lookups then cost one hash plus one offset read.
//
// Hash collisions between distinct terms are detected during the build;
// collided terms fall back to exact string keys, so lookups stay correct
// regardless of hash behavior. The index holds only hashes and offsets in
// memory, never posting data; entry bytes are read from the file on each
// lookup.
package lookup

import (
	"fmt"

	"github.com/idxlab/termblock/blockfile"
	"github.com/idxlab/termblock/internal/collision"
	"github.com/idxlab/termblock/internal/hash"
	"github.com/idxlab/termblock/section"
)

// Index maps terms to their entry offsets within one block file.
//
// An Index is immutable after New returns and safe for concurrent use.
// It observes the file as it existed at build time; rebuilding is the
// caller's responsibility if the file is replaced.
type Index struct {
	reader   *blockfile.Reader
	tracker  *collision.Tracker
	hashFn   func(string) uint64
	byHash   map[uint64]uint64 // term hash → entry offset
	byTerm   map[string]uint64 // exact term → entry offset, for collided hashes
	numTerms int
}

// New builds an Index by scanning the block file at path once.
//
// The scan reads every entry sequentially; duplicate terms in the file
// fail the build, since a term dictionary holds each term at most once.
func New(path string) (*Index, error) {
	return newIndex(path, hash.TermID)
}

// newIndex builds an Index with a caller-supplied hash function. Tests
// use it to force colliding term IDs.
func newIndex(path string, hashFn func(string) uint64) (*Index, error) {
	idx := &Index{
		reader:  blockfile.NewReader(path),
		tracker: collision.NewTracker(),
		hashFn:  hashFn,
		byHash:  make(map[uint64]uint64),
		byTerm:  make(map[string]uint64),
	}

	for entry, err := range idx.reader.All() {
		if err != nil {
			return nil, fmt.Errorf("scanning block file: %w", err)
		}

		termID := idx.hashFn(entry.Term)
		prevTerm, hadHash := idx.tracker.TermFor(termID)

		if err := idx.tracker.Track(entry.Term, termID); err != nil {
			return nil, fmt.Errorf("indexing term %q: %w", entry.Term, err)
		}

		if hadHash {
			// Collision with an earlier term: move both to exact keys.
			// On a third collision for the same hash the first term has
			// already been moved.
			if prevOffset, present := idx.byHash[termID]; present {
				idx.byTerm[prevTerm] = prevOffset
				delete(idx.byHash, termID)
			}
			idx.byTerm[entry.Term] = entry.Offset
		} else {
			idx.byHash[termID] = entry.Offset
		}

		idx.numTerms++
	}

	return idx, nil
}

// Lookup returns the term dictionary entry for term, reading it from the
// block file at its indexed offset. ok is false if the term is not
// present.
func (idx *Index) Lookup(term string) (entry *section.TermEntry, ok bool, err error) {
	offset, ok := idx.offsetOf(term)
	if !ok {
		return nil, false, nil
	}

	return idx.reader.ReadEntryAt(offset)
}

// Offset returns the block file offset of term's entry without reading
// it. ok is false if the term is not present.
func (idx *Index) Offset(term string) (offset uint64, ok bool) {
	return idx.offsetOf(term)
}

func (idx *Index) offsetOf(term string) (uint64, bool) {
	termID := idx.hashFn(term)
	if idx.tracker.IsCollided(termID) {
		offset, ok := idx.byTerm[term]
		return offset, ok
	}

	offset, ok := idx.byHash[termID]
	if !ok {
		return 0, false
	}

	// Distinct absent terms can hash onto a present term's ID without the
	// build ever seeing a collision. Verify the stored term matches.
	if stored, _ := idx.tracker.TermFor(termID); stored != term {
		return 0, false
	}

	return offset, true
}

// Len returns the number of indexed terms.
func (idx *Index) Len() int {
	return idx.numTerms
}

// HasCollision reports whether any two indexed terms share a hash.
func (idx *Index) HasCollision() bool {
	return idx.tracker.HasCollision()
}
