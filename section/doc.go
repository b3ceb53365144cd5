// Package section defines the binary structures of the block file format.
//
// A block file is a single binary file holding an ordered term dictionary
// with inline compressed posting lists. All integers are little-endian:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (8 bytes, fixed)                                 │
//	│  - num_terms (u64)                                      │
//	├─────────────────────────────────────────────────────────┤
//	│ Entry × num_terms (variable size each)                  │
//	│  - term_len           (u32, 4 bytes)                    │
//	│  - term_bytes         (term_len bytes, UTF-8)           │
//	│  - doc_freq_content   (varint)                          │
//	│  - doc_freq_title     (varint)                          │
//	│  - posting_list_len   (varint)                          │
//	│  - posting_list_bytes (posting_list_len bytes)          │
//	└─────────────────────────────────────────────────────────┘
//
// Entries are self-delimiting: the byte offset of entry i+1 equals the
// offset of entry i plus its encoded size, so a reader can either walk
// the file sequentially or resume from any previously computed offset.
// Offsets are derived during reading and writing, never stored.
//
// This package handles serialization and parsing of these structures; the
// blockfile package drives them against actual files.
package section
