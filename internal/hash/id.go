package hash

import "github.com/cespare/xxhash/v2"

// TermID computes the xxHash64 of the given term.
func TermID(term string) uint64 {
	return xxhash.Sum64String(term)
}
