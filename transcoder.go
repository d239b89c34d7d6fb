package main

import (
	"context"
	"fmt"
	"io"

	"github.com/abhinav/huffcode/internal/bitpack"
	"github.com/abhinav/huffcode/internal/huffman"
	"github.com/abhinav/huffcode/internal/log"
	"github.com/benbjohnson/clock"
)

// transcoder connects files to the Huffman coder:
// it counts byte frequencies, persists code tables,
// and packs coded bits into bytes.
type transcoder struct {
	Log   *log.Logger
	Clock clock.Clock
}

// countFrequencies reports how many times each byte value appears in src.
func countFrequencies(src []byte) []int {
	freqs := make([]int, huffman.ByteAlphabet)
	for _, b := range src {
		freqs[b]++
	}
	return freqs
}

// Encode builds a code tree fit for src and encodes src with it.
func (t *transcoder) Encode(src []byte) (*huffman.Tree, huffman.Code, error) {
	start := t.Clock.Now()

	tree, err := huffman.Build(countFrequencies(src))
	if err != nil {
		if len(src) == 0 {
			return nil, nil, fmt.Errorf("nothing to compress: %w", err)
		}
		return nil, nil, err
	}
	t.dump(tree)

	bits, err := tree.EncodeBytes(src)
	if err != nil {
		return nil, nil, err
	}

	t.Log.Info("encoded",
		"bytes", len(src),
		"symbols", tree.Len(),
		"bits", len(bits),
		"elapsed", t.Clock.Since(start),
	)
	return tree, bits, nil
}

// Write writes the code table for tree to table,
// and the packed form of bits to out.
func (t *transcoder) Write(tree *huffman.Tree, bits huffman.Code, table, out io.Writer) error {
	if _, err := tree.WriteTo(table); err != nil {
		return fmt.Errorf("write code table: %w", err)
	}

	n, err := bitpack.Write(out, bits)
	if err != nil {
		return fmt.Errorf("write compressed data: %w", err)
	}
	t.Log.Debug("wrote compressed data", "bytes", n)
	return nil
}

// Decompress reads a code table from table,
// and uses it to decode the packed bits read from in.
func (t *transcoder) Decompress(table, in io.Reader) ([]byte, error) {
	start := t.Clock.Now()

	tree, err := huffman.ReadTree(table)
	if err != nil {
		return nil, fmt.Errorf("read code table: %w", err)
	}
	t.dump(tree)

	bits, err := bitpack.Read(in)
	if err != nil {
		return nil, fmt.Errorf("read compressed data: %w", err)
	}

	msg, err := tree.DecodeBytes(bits)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	t.Log.Info("decoded",
		"bits", len(bits),
		"bytes", len(msg),
		"elapsed", t.Clock.Since(start),
	)
	return msg, nil
}

// dump logs the code for every symbol in the tree at debug level.
func (t *transcoder) dump(tree *huffman.Tree) {
	if !t.Log.Enabled(context.Background(), log.Debug) {
		return
	}

	w := &log.Writer{Log: t.Log, Level: log.Debug}
	_, _ = tree.Dump(w)
	_ = w.Close()
}
