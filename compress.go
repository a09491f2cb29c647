package huff

import (
	"errors"
	"io"

	"github.com/dargueta/huff/bitio"
)

// Compress reads every byte from the input and writes a compressed stream to
// the output: the magic number, the serialized code tree, one code per input
// byte, and finally the end-of-stream code. The final byte is padded with
// zero bits.
//
// This is a two-pass algorithm -- the whole input is scanned for symbol
// frequencies before any output is produced -- so the input must be
// rewindable. An input whose Seek fails (e.g. a pipe) is rejected with
// [ErrNotRewindable].
//
// The returned int64 gives the number of compressed bytes written. If an
// error occurred, the value is undefined and the caller should discard any
// partial output.
func Compress(input io.ReadSeeker, output io.Writer) (int64, error) {
	reader := bitio.NewReader(input)

	counts, err := CollectFrequencies(reader)
	if err != nil {
		return 0, err
	}
	root := BuildTree(counts)
	codes := DeriveCodes(root)

	writer := bitio.NewWriter(output)
	if err := writer.WriteBits(BitsPerInt, MagicNumber); err != nil {
		return 0, err
	}
	if err := WriteTree(root, writer); err != nil {
		return 0, err
	}

	// Second pass over the input, this time emitting codes.
	if err := reader.Reset(); err != nil {
		return 0, ErrNotRewindable.Wrap(err)
	}
	for {
		value, err := reader.ReadBits(BitsPerWord)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
		if err := codes[value].WriteTo(writer); err != nil {
			return 0, err
		}
	}

	// The terminator tells the decoder where the data really stops; without
	// it, zero bits padding the last byte could decode as extra symbols.
	if err := codes[EOFSymbol].WriteTo(writer); err != nil {
		return 0, err
	}
	if err := writer.Close(); err != nil {
		return 0, err
	}
	return writer.BytesWritten(), nil
}
