package huff

import (
	"errors"
	"io"

	"github.com/dargueta/huff/bitio"
)

// FrequencyTable gives the number of occurrences of each symbol in an input
// stream. The entry for [EOFSymbol] is always exactly 1, whether or not the
// input was empty, so a code tree can always be built from the table.
type FrequencyTable [NumSymbols]uint32

// CollectFrequencies reads the stream to the end, one symbol at a time, and
// tallies how often each byte value occurs. It fully consumes the reader;
// callers doing a second pass must Reset it afterwards.
func CollectFrequencies(rd *bitio.Reader) (FrequencyTable, error) {
	var counts FrequencyTable
	for {
		value, err := rd.ReadBits(BitsPerWord)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return counts, err
		}
		counts[value]++
	}

	// The end-of-stream marker must always be in the tree, even for empty
	// input, and a count of 1 keeps its code as long as possible.
	counts[EOFSymbol] = 1
	return counts, nil
}
