package huffman

import "fmt"

// Encode encodes a sequence of symbols into the concatenation of their
// codes.
//
// Encode fails with ErrUnknownSymbol if any symbol is not part of the tree.
// No output is produced in that case.
func (t *Tree) Encode(syms []Symbol) (Code, error) {
	var out Code
	for i, sym := range syms {
		code, ok := t.codes[sym]
		if !ok {
			return nil, fmt.Errorf("symbol %d at index %d: %w", sym, i, ErrUnknownSymbol)
		}
		out = append(out, code...)
	}
	return out, nil
}

// EncodeBytes is a variant of Encode for a message made of bytes.
func (t *Tree) EncodeBytes(msg []byte) (Code, error) {
	var out Code
	for i, b := range msg {
		code, ok := t.codes[Symbol(b)]
		if !ok {
			return nil, fmt.Errorf("byte %d at index %d: %w", b, i, ErrUnknownSymbol)
		}
		out = append(out, code...)
	}
	return out, nil
}

// Decode decodes a sequence of bits produced by Encode
// back into the original symbols.
//
// The bits must be a concatenation of complete codes.
// Decode fails with ErrIncompleteCode if the bits end partway through a
// code, and with ErrMalformedStream if the bits do not follow a path in
// the tree.
// Decoding is all-or-nothing: no symbols are returned on failure.
func (t *Tree) Decode(bits []Bit) ([]Symbol, error) {
	syms := make([]Symbol, 0, len(bits)/2)
	err := t.decode(bits, func(sym Symbol) error {
		syms = append(syms, sym)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return syms, nil
}

// DecodeBytes is a variant of Decode for a message made of bytes.
// It fails with ErrMalformedStream if the bits decode to a symbol that
// does not fit in a byte.
func (t *Tree) DecodeBytes(bits []Bit) ([]byte, error) {
	msg := make([]byte, 0, len(bits)/2)
	err := t.decode(bits, func(sym Symbol) error {
		if sym >= ByteAlphabet {
			return fmt.Errorf("symbol %d is not a byte: %w", sym, ErrMalformedStream)
		}
		msg = append(msg, byte(sym))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func (t *Tree) decode(bits []Bit, emit func(Symbol) error) error {
	var (
		n     = t.root
		start int // offset of the first bit of the current code
	)
	for i, b := range bits {
		if b > 1 {
			return fmt.Errorf("bit %d: invalid value %d: %w", i, b, ErrMalformedStream)
		}

		switch c := n.child(b).(type) {
		case nil:
			return fmt.Errorf("bit %d: no code matches bits %v: %w",
				i, Code(bits[start:i+1]), ErrMalformedStream)
		case *Internal:
			n = c
		case *Leaf:
			if err := emit(c.Symbol); err != nil {
				return fmt.Errorf("bit %d: %w", start, err)
			}
			n = t.root
			start = i + 1
		}
	}

	if n != t.root {
		return fmt.Errorf("bit %d: stream ends %d bits into a code: %w",
			start, len(bits)-start, ErrIncompleteCode)
	}
	return nil
}
