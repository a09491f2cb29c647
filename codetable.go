package huff

import (
	"strings"

	"github.com/boljen/go-bitmap"

	"github.com/dargueta/huff/bitio"
)

// Code is the bit path from the root of a code tree to one leaf. Path bit i
// is 0 for a step to the left child and 1 for a step to the right child.
//
// Paths are stored in a bitmap rather than an integer because a degenerate
// tree over the full symbol space can be up to 256 levels deep, far past
// what fits in a machine word.
type Code struct {
	Path   bitmap.Bitmap
	Length int
}

// WriteTo emits the code's bits, in root-to-leaf order, to a bit writer.
func (code Code) WriteTo(wr *bitio.Writer) error {
	for i := 0; i < code.Length; i++ {
		var bit uint32
		if code.Path.Get(i) {
			bit = 1
		}
		if err := wr.WriteBits(1, bit); err != nil {
			return err
		}
	}
	return nil
}

// String renders the code as a binary string, e.g. "0110". A zero-length
// code renders as the empty string.
func (code Code) String() string {
	var builder strings.Builder
	builder.Grow(code.Length)
	for i := 0; i < code.Length; i++ {
		if code.Path.Get(i) {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String()
}

// CodeTable maps every symbol in a code tree to its code. Symbols without a
// leaf in the tree have a zero-value entry with a nil Path.
type CodeTable [NumSymbols]Code

// DeriveCodes records the root-to-leaf bit path of every leaf in the tree.
// A childless root yields the empty path for its single symbol.
func DeriveCodes(root *Node) CodeTable {
	var table CodeTable
	// Deep enough for the worst-case tree over this alphabet.
	scratch := bitmap.New(NumSymbols)
	recordCodes(root, scratch, 0, &table)
	return table
}

func recordCodes(node *Node, path bitmap.Bitmap, depth int, table *CodeTable) {
	if node.IsLeaf() {
		snapshot := bitmap.New(depth)
		for i := 0; i < depth; i++ {
			snapshot.Set(i, path.Get(i))
		}
		table[node.Symbol] = Code{Path: snapshot, Length: depth}
		return
	}

	path.Set(depth, false)
	recordCodes(node.Left, path, depth+1, table)
	path.Set(depth, true)
	recordCodes(node.Right, path, depth+1, table)
}
