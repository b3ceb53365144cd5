// Package collision tracks term hashes and detects 64-bit hash collisions
// while building a term lookup index over a block file.
package collision

import (
	"github.com/idxlab/termblock/errs"
)

// Tracker tracks terms and detects hash collisions.
// It maintains a hash-to-term mapping, the set of collided hashes, and an
// ordered list of terms in registration order.
type Tracker struct {
	terms        map[uint64]string   // Hash → term mapping for collision detection
	collided     map[uint64]struct{} // Hashes shared by two or more distinct terms
	termList     []string            // Ordered list of tracked terms
	hasCollision bool                // Whether a collision has been detected
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		terms:    make(map[uint64]string),
		collided: make(map[uint64]struct{}),
		termList: make([]string, 0),
	}
}

// Track registers a term with its hash and checks for collisions.
// Returns an error if:
// - The term is empty (ErrInvalidInput)
// - The same term is registered twice (ErrTermAlreadyTracked)
//
// Hash collisions (different terms, same hash) are NOT errors here.
// Instead, the collision flag is set and the hash is recorded as collided
// so the lookup index can fall back to exact string keys for it.
func (t *Tracker) Track(term string, hash uint64) error {
	if term == "" {
		return errs.ErrInvalidInput
	}

	if existing, exists := t.terms[hash]; exists {
		if existing == term {
			return errs.ErrTermAlreadyTracked
		}

		// Different term, same hash
		t.hasCollision = true
		t.collided[hash] = struct{}{}
		t.termList = append(t.termList, term)

		return nil
	}

	t.terms[hash] = term
	t.termList = append(t.termList, term)

	return nil
}

// HasCollision reports whether any hash collision has been detected.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// IsCollided reports whether the given hash is shared by two or more
// distinct terms.
func (t *Tracker) IsCollided(hash uint64) bool {
	_, ok := t.collided[hash]
	return ok
}

// TermFor returns the first term registered under the given hash.
func (t *Tracker) TermFor(hash uint64) (string, bool) {
	term, ok := t.terms[hash]
	return term, ok
}

// Terms returns the tracked terms in registration order.
func (t *Tracker) Terms() []string {
	return t.termList
}

// Len returns the number of tracked terms.
func (t *Tracker) Len() int {
	return len(t.termList)
}
