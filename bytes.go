package huff

import (
	"bytes"

	"github.com/xaionaro-go/bytesextra"
)

// CompressBytes is a convenience wrapper around [Compress] that works on byte
// slices instead of streams. The input slice is not modified.
func CompressBytes(data []byte) ([]byte, error) {
	// Compress needs a seekable input for its two passes.
	input := bytesextra.NewReadWriteSeeker(data)

	var output bytes.Buffer
	if _, err := Compress(input, &output); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

// DecompressBytes is a convenience wrapper around [Decompress] that works on
// byte slices instead of streams.
func DecompressBytes(data []byte) ([]byte, error) {
	var output bytes.Buffer
	if _, err := Decompress(bytes.NewReader(data), &output); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}
