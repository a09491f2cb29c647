package huff

// Fixed parameters of the compressed stream format. These are wire-format
// constants, not tunables; changing any of them breaks compatibility with
// existing compressed files.
const (
	// BitsPerWord is the size of one uncompressed input symbol.
	BitsPerWord = 8

	// BitsPerInt is the size of the magic number at the front of a stream.
	BitsPerInt = 32

	// AlphabetSize is the number of distinct raw byte values.
	AlphabetSize = 1 << BitsPerWord

	// EOFSymbol is the synthetic symbol marking the end of the compressed
	// data. It never occurs in raw input, so it takes the value just past
	// the last real byte.
	EOFSymbol = AlphabetSize

	// NumSymbols is the total symbol space: every byte value plus EOFSymbol.
	NumSymbols = AlphabetSize + 1

	// BitsPerTreeSymbol is the width of a leaf's symbol value in the tree
	// header. Nine bits covers 0 through EOFSymbol.
	BitsPerTreeSymbol = BitsPerWord + 1

	// MagicNumber identifies a tree-framed compressed stream.
	MagicNumber = 0xface8201

	// LegacyMagicNumber identifies the retired count-framed format. It's
	// recognized only so we can give a more useful error message.
	LegacyMagicNumber = 0xface8200
)
