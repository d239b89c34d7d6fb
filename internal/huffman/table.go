package huffman

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Entry is a single row in a code table.
type Entry struct {
	Symbol Symbol
	Code   Code
}

func (e Entry) String() string {
	return fmt.Sprintf("%d:%v", e.Symbol, e.Code)
}

// Save flattens the tree into a code table.
//
// Entries are listed in pre-order: the entries for the left subtree of a
// branch are listed before those for its right subtree.
// The result is deterministic for a given tree.
func (t *Tree) Save() []Entry {
	entries := make([]Entry, 0, t.Len())
	t.walk(func(sym Symbol, code Code) {
		entries = append(entries, Entry{Symbol: sym, Code: code})
	})
	return entries
}

// Load rebuilds a tree from a code table.
//
// The entries must describe a prefix code:
// no code may be empty, no symbol may be listed twice,
// and no code may be a prefix of another.
// Load fails with ErrMalformedTable otherwise.
//
// Load(t.Save()) produces a tree with the same codes as t.
func Load(entries []Entry) (*Tree, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("code table has no entries: %w", ErrMalformedTable)
	}

	root := new(Internal)
	seen := make(map[Symbol]int, len(entries))
	for i, e := range entries {
		if e.Symbol < 0 {
			return nil, fmt.Errorf("entry %d: negative symbol %d: %w", i, e.Symbol, ErrMalformedTable)
		}
		if len(e.Code) == 0 {
			return nil, fmt.Errorf("entry %d: symbol %d has an empty code: %w", i, e.Symbol, ErrMalformedTable)
		}
		if j, ok := seen[e.Symbol]; ok {
			return nil, fmt.Errorf("entry %d: symbol %d was already listed in entry %d: %w", i, e.Symbol, j, ErrMalformedTable)
		}
		seen[e.Symbol] = i

		if err := attach(root, e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	return newTree(root), nil
}

// attach adds a leaf for the given entry under root,
// creating branches along its path as needed.
func attach(root *Internal, e Entry) error {
	n := root
	last := len(e.Code) - 1
	for i, b := range e.Code {
		if b > 1 {
			return fmt.Errorf("symbol %d: invalid bit %d at offset %d: %w", e.Symbol, b, i, ErrMalformedTable)
		}

		if i == last {
			if n.child(b) != nil {
				return fmt.Errorf("symbol %d: code %v is already taken: %w", e.Symbol, e.Code, ErrMalformedTable)
			}
			n.setChild(b, &Leaf{Symbol: e.Symbol})
			return nil
		}

		switch c := n.child(b).(type) {
		case nil:
			next := new(Internal)
			n.setChild(b, next)
			n = next
		case *Internal:
			n = c
		case *Leaf:
			return fmt.Errorf("symbol %d: code %v for symbol %d is a prefix of %v: %w",
				e.Symbol, e.Code[:i+1], c.Symbol, e.Code, ErrMalformedTable)
		}
	}
	return nil // unreachable: codes are non-empty
}

func (n *Internal) setChild(b Bit, c Node) {
	if b == 0 {
		n.Left = c
	} else {
		n.Right = c
	}
}

// WriteTable writes a code table in its text form:
// two lines for each entry,
// the first holding the symbol in decimal,
// and the second holding its code.
func WriteTable(w io.Writer, entries []Entry) (int64, error) {
	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(strconv.Itoa(int(e.Symbol)))
		buf.WriteByte('\n')
		buf.WriteString(e.Code.String())
		buf.WriteByte('\n')
	}
	return buf.WriteTo(w)
}

// ReadTable reads a code table written by WriteTable.
//
// ReadTable only checks the syntax of the table.
// Pass the result to Load to build a tree from it.
func ReadTable(r io.Reader) ([]Entry, error) {
	var (
		entries []Entry
		lineno  int
	)
	scan := bufio.NewScanner(r)
	nextLine := func() (string, bool) {
		if !scan.Scan() {
			return "", false
		}
		lineno++
		return strings.TrimSuffix(scan.Text(), "\r"), true
	}

	for {
		symLine, ok := nextLine()
		if !ok {
			break
		}

		sym, err := strconv.Atoi(symLine)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad symbol %q: %w", lineno, symLine, ErrMalformedTable)
		}

		codeLine, ok := nextLine()
		if !ok {
			if err := scan.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("line %d: symbol %d has no code: %w", lineno, sym, ErrMalformedTable)
		}

		code, err := ParseCode(codeLine)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v: %w", lineno, err, ErrMalformedTable)
		}

		entries = append(entries, Entry{Symbol: Symbol(sym), Code: code})
	}

	if err := scan.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// WriteTo writes the code table for this tree to w in the format used by
// WriteTable.
func (t *Tree) WriteTo(w io.Writer) (int64, error) {
	return WriteTable(w, t.Save())
}

var _ io.WriterTo = (*Tree)(nil)

// ReadTree reads a code table from r and builds a tree from it.
func ReadTree(r io.Reader) (*Tree, error) {
	entries, err := ReadTable(r)
	if err != nil {
		return nil, err
	}
	return Load(entries)
}
