// Package huff implements a lossless compressor for arbitrary byte streams
// built on a Huffman prefix code.
//
// Compression is a two-pass process. The first pass scans the whole input and
// counts how often each byte value occurs; a synthetic end-of-stream symbol
// (value 256) is always given a count of one so that every tree contains it.
// An optimal prefix code is then built from those counts by repeatedly
// merging the two lowest-weight nodes, and the resulting tree is written to
// the output as a self-describing header. The second pass rewinds the input
// and replaces every byte with its root-to-leaf bit path, finishing with the
// end-of-stream symbol's path so the decoder knows exactly where the data
// stops regardless of how the final byte is padded.
//
// The compressed stream layout is:
//
//	32-bit magic number (0xface8201)
//	preorder tree header: bit 1 + 9-bit symbol for a leaf, bit 0 followed
//	    by the left then right subtrees for an internal node
//	one variable-length code per input byte, in the original order
//	the end-of-stream symbol's code
//	zero bits padding out the final byte
//
// Decompression never needs a code table: it walks the reconstructed tree
// one bit at a time (0 = left, 1 = right), emitting a byte at every leaf,
// until it lands on the end-of-stream leaf.
//
// Because the frequency scan must see the entire input before any output is
// produced, the input stream handed to [Compress] has to be rewindable. A
// stream whose Seek fails (a pipe, for instance) is rejected with
// [ErrNotRewindable].
package huff
