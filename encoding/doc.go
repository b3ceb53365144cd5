// Package encoding provides the low-level codecs of the termblock format:
// unsigned varints and delta-compressed posting lists.
//
// # Varints
//
// Varints use the LEB128 / Protocol Buffers base-128 format: 7 payload
// bits per byte, low-order group first, high bit set on every byte except
// the last. AppendUvarint and Uvarint operate on byte slices; ReadUvarint
// pulls single bytes from any io.ByteReader, so the codec works against an
// abstract byte source without depending on a concrete stream type.
//
// # Posting lists
//
// A posting list is encoded as repeated triples of varints:
//
//	(delta_doc_id, content_freq, title_freq)
//
// where delta_doc_id is the difference from the previous posting's doc id
// (previous initialized to 0). Postings are encoded in non-decreasing doc
// id order so every delta is non-negative; the decoder reconstructs doc
// ids as a running sum of deltas. The wire form carries no length prefix
// of its own; the enclosing block file entry records the byte length.
//
// # Usage
//
// Most users should use the blockfile package, which embeds these codecs
// in the block file format. Use this package directly when encoding or
// decoding standalone posting lists:
//
//	encoder := encoding.NewPostingEncoder()
//	defer encoder.Finish()
//	_ = encoder.WriteSlice(postings, false)
//	data := encoder.Bytes()
//
//	decoder := encoding.NewPostingDecoder()
//	for p := range decoder.All(data) {
//	    // p.DocID, p.ContentFreq, p.TitleFreq
//	}
package encoding
