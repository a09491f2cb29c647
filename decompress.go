package huff

import (
	"fmt"
	"io"

	"github.com/dargueta/huff/bitio"
)

// Decompress reads a compressed stream produced by [Compress] and writes the
// original bytes to the output.
//
// It fails with [ErrMalformedStream] if the input doesn't start with the
// expected magic number or the coded data ends before the end-of-stream code,
// and with [ErrMalformedHeader] if the tree header is truncated. All failures
// abort the whole call; the caller should discard any partial output.
//
// The returned int64 gives the number of decompressed bytes written. If an
// error occurred, the value is undefined and should not be used.
func Decompress(input io.Reader, output io.Writer) (int64, error) {
	reader := bitio.NewReader(input)

	magic, err := reader.ReadBits(BitsPerInt)
	if err != nil {
		return 0, ErrMalformedStream.WithMessage("stream ends before the magic number")
	}
	if magic == LegacyMagicNumber {
		return 0, ErrMalformedStream.WithMessage(
			"stream uses the retired count-framed format")
	}
	if magic != MagicNumber {
		return 0, ErrMalformedStream.WithMessage(
			fmt.Sprintf("stream starts with %#010x, want %#010x",
				magic, uint32(MagicNumber)))
	}

	root, err := ReadTree(reader)
	if err != nil {
		return 0, err
	}
	// A childless root is only legal for an empty input, where the lone leaf
	// is the end-of-stream marker. Any other single-leaf tree would decode
	// forever without consuming a bit.
	if root.IsLeaf() && root.Symbol != EOFSymbol {
		return 0, ErrMalformedStream.WithMessage(
			"single-leaf tree lacks the end-of-stream symbol")
	}

	writer := bitio.NewWriter(output)
	current := root
	for !current.IsLeaf() {
		bit, err := reader.ReadBits(1)
		if err != nil {
			return 0, ErrMalformedStream.WithMessage(
				"stream ends before the end-of-stream code")
		}
		if bit == 0 {
			current = current.Left
		} else {
			current = current.Right
		}

		if current.IsLeaf() {
			if current.Symbol == EOFSymbol {
				break
			}
			if err := writer.WriteBits(BitsPerWord, uint32(current.Symbol)); err != nil {
				return 0, err
			}
			current = root
		}
	}

	if err := writer.Close(); err != nil {
		return 0, err
	}
	return writer.BytesWritten(), nil
}
