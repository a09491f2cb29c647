package huff

import (
	"fmt"

	"github.com/dargueta/huff/bitio"
)

// Node-type tags in the serialized tree header.
const (
	internalMarker = 0
	leafMarker     = 1
)

// WriteTree serializes a code tree as a preorder bit sequence: a leaf is the
// bit 1 followed by its symbol in nine bits, an internal node is the bit 0
// followed by its left then right subtrees. The encoding is self-delimiting,
// so no length prefix is needed.
func WriteTree(root *Node, wr *bitio.Writer) error {
	if root.IsLeaf() {
		if err := wr.WriteBits(1, leafMarker); err != nil {
			return err
		}
		return wr.WriteBits(BitsPerTreeSymbol, uint32(root.Symbol))
	}

	if err := wr.WriteBits(1, internalMarker); err != nil {
		return err
	}
	if err := WriteTree(root.Left, wr); err != nil {
		return err
	}
	return WriteTree(root.Right, wr)
}

// ReadTree parses a preorder tree header produced by [WriteTree] and returns
// the reconstructed tree. Node weights aren't part of the header and are
// left zero; decoding only needs the shape and the leaf symbols.
//
// Running out of bits mid-parse means the header was truncated or corrupted
// and fails with [ErrMalformedHeader], as does a leaf whose symbol value is
// outside the symbol space.
func ReadTree(rd *bitio.Reader) (*Node, error) {
	marker, err := rd.ReadBits(1)
	if err != nil {
		return nil, ErrMalformedHeader.Wrap(err)
	}

	if marker == leafMarker {
		symbol, err := rd.ReadBits(BitsPerTreeSymbol)
		if err != nil {
			return nil, ErrMalformedHeader.Wrap(err)
		}
		if symbol > EOFSymbol {
			return nil, ErrMalformedHeader.WithMessage(
				fmt.Sprintf("leaf symbol %d is outside the symbol space", symbol))
		}
		return &Node{Symbol: int(symbol)}, nil
	}

	left, err := ReadTree(rd)
	if err != nil {
		return nil, err
	}
	right, err := ReadTree(rd)
	if err != nil {
		return nil, err
	}
	return &Node{Symbol: -1, Left: left, Right: right}, nil
}
