// Package huffman implements binary Huffman coding over a small integer
// alphabet.
//
// A Tree is built once, either from symbol frequencies with Build,
// or from a previously saved code table with Load.
// The path from the root of the tree to a leaf is the code for the
// symbol held by that leaf: 0 for every step to the left and 1 for every
// step to the right.
// Codes are prefix-free: for any two symbols X and Y, the code for X is
// not a prefix of the code for Y.
// This allows a concatenation of codes to be decoded unambiguously.
//
// Trees are immutable and safe for concurrent use.
package huffman

import (
	"errors"
	"fmt"
	"strings"
)

// Symbol is an element of the alphabet being coded.
// Negative symbols are not valid.
type Symbol int

// ByteAlphabet is the size of the alphabet of byte values.
const ByteAlphabet = 256

// Bit is a single step in a code: 0 to go left, 1 to go right.
type Bit uint8

// Code is a sequence of bits.
type Code []Bit

// ParseCode parses a code from its textual form,
// a string of '0' and '1' characters.
func ParseCode(s string) (Code, error) {
	code := make(Code, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			code[i] = 0
		case '1':
			code[i] = 1
		default:
			return nil, fmt.Errorf("invalid character %q at offset %d in code %q", s[i], i, s)
		}
	}
	return code, nil
}

// String returns the textual form of this Code.
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, b := range c {
		sb.WriteByte('0' + byte(b))
	}
	return sb.String()
}

var _ fmt.Stringer = Code(nil)

// Errors reported by this package.
// These are always wrapped with information about where the failure
// occurred; use errors.Is to match them.
var (
	// ErrInvalidInput indicates that a frequency table has no symbols to
	// encode, or holds negative frequencies.
	ErrInvalidInput = errors.New("huffman: invalid input")

	// ErrMalformedTable indicates that a code table does not describe a
	// valid prefix code.
	ErrMalformedTable = errors.New("huffman: malformed code table")

	// ErrUnknownSymbol indicates an attempt to encode a symbol that is
	// not part of the tree.
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")

	// ErrIncompleteCode indicates that a bit stream ended partway
	// through a code.
	ErrIncompleteCode = errors.New("huffman: incomplete code")

	// ErrMalformedStream indicates that a bit stream does not follow a
	// path in the tree.
	ErrMalformedStream = errors.New("huffman: malformed stream")
)
