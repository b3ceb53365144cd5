package section

const (
	// HeaderSize is the fixed byte size of the block file header.
	HeaderSize = 8

	// TermLenSize is the byte size of the term length prefix of an entry.
	TermLenSize = 4
)
