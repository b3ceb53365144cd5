// Package blockfile reads and writes block files: single binary files
// holding an ordered term dictionary with inline compressed posting lists.
//
// # Writing
//
// A block file is created in full by one Write call; there is no
// incremental append. The caller supplies terms in the desired final
// ordering (typically lexicographic); the writer does not reorder them:
//
//	writer := blockfile.NewWriter("segment-000.blk")
//	err := writer.Write(terms, docFreqs, postingLists)
//
// The writer offers no atomicity: a failure partway through leaves a
// truncated file. Callers needing durability must stage the write
// externally, e.g. write to a temporary path and rename.
//
// # Reading
//
// Readers are cheap handles bound to a path; every operation re-opens the
// file, so independent readers (and repeated iterations) never share
// cursor state. Concurrent readers of one file are safe; reading while a
// writer is active can observe a truncated file.
//
//	reader := blockfile.NewReader("segment-000.blk")
//
//	numTerms, size, err := reader.Stats()
//
//	// Sequential iteration over all entries.
//	for entry, err := range reader.All() { ... }
//
//	// Random access: resume from any previously returned NextOffset.
//	entry, ok, err := reader.ReadEntryAt(blockfile.HeaderLen)
//	entry, ok, err = reader.ReadEntryAt(entry.NextOffset)
//
// # Archival
//
// Archive and Restore convert a block file to and from a compressed
// cold-storage artifact. The archive envelope is separate from the block
// file format itself; Restore reproduces the original file byte for byte.
package blockfile
