package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Node is a node in a code tree.
// It is either a *Leaf or an *Internal.
type Node interface {
	node() // sealed
}

// Leaf is a node that holds a symbol.
type Leaf struct {
	Symbol Symbol
}

// Internal is a branch in a code tree.
//
// Both children are non-nil, except in the tree for a single symbol,
// where the root holds the sole leaf on the left and nothing on the
// right.
type Internal struct {
	Left, Right Node
}

func (*Leaf) node()     {}
func (*Internal) node() {}

// child returns the child of n in the direction of b.
func (n *Internal) child(b Bit) Node {
	if b == 0 {
		return n.Left
	}
	return n.Right
}

// Tree is an immutable binary code tree.
type Tree struct {
	root  *Internal
	codes map[Symbol]Code
}

// newTree indexes the codes of the tree rooted at root.
func newTree(root *Internal) *Tree {
	t := &Tree{
		root:  root,
		codes: make(map[Symbol]Code),
	}
	t.walk(func(sym Symbol, code Code) {
		t.codes[sym] = code
	})
	return t
}

// walk visits the leaves of the tree in pre-order, left before right.
// The code passed to fn is not reused across calls.
func (t *Tree) walk(fn func(Symbol, Code)) {
	type frame struct {
		node Node
		code Code
	}

	// Children are pushed right first so that the left subtree
	// is popped and visited first.
	stack := []frame{{node: t.root}}
	push := func(n Node, prefix Code, b Bit) {
		if n == nil {
			return
		}
		code := make(Code, len(prefix)+1)
		copy(code, prefix)
		code[len(prefix)] = b
		stack = append(stack, frame{node: n, code: code})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := top.node.(type) {
		case *Leaf:
			fn(n.Symbol, top.code)
		case *Internal:
			push(n.Right, top.code, 1)
			push(n.Left, top.code, 0)
		default:
			panic(fmt.Sprintf("unexpected node type %T", n))
		}
	}
}

// Root returns the root of the tree.
// The returned node must not be modified.
func (t *Tree) Root() *Internal {
	return t.root
}

// Len reports the number of symbols in the tree.
func (t *Tree) Len() int {
	return len(t.codes)
}

// Code returns the code for the given symbol,
// or false if the symbol is not part of the tree.
// The returned Code must not be modified.
func (t *Tree) Code(sym Symbol) (Code, bool) {
	code, ok := t.codes[sym]
	return code, ok
}

// Symbols returns the symbols in the tree in ascending order.
func (t *Tree) Symbols() []Symbol {
	syms := make([]Symbol, 0, len(t.codes))
	for sym := range t.codes {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}

// EncodedLen reports the number of bits needed to encode a message with
// the given symbol frequencies, where freqs[i] is the number of times
// Symbol(i) appears in the message.
//
// Symbols that are not part of the tree are ignored.
func (t *Tree) EncodedLen(freqs []int) int {
	var n int
	for i, f := range freqs {
		if code, ok := t.codes[Symbol(i)]; ok {
			n += f * len(code)
		}
	}
	return n
}

// Dump writes a programmer-readable debugging dump of the tree
// to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.Len())
	for _, sym := range t.Symbols() {
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", sym, strconv.Quote(t.codes[sym].String()))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
