// Package bitpack stores a sequence of bits compactly in a byte stream.
//
// The stream starts with a short header that records how many bits
// follow, so that the padding at the end of the last byte is never
// mistaken for data:
//
//	"HUF1"     magic
//	uint64     number of bits, most significant bit first
//	[]byte     the bits, most significant bit of each byte first,
//	           zero padded to a byte boundary
package bitpack

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/abhinav/huffcode/internal/huffman"
	"github.com/icza/bitio"
)

var _magic = []byte("HUF1")

// _maxPrealloc caps how many bits Read allocates up front
// based on the header alone.
const _maxPrealloc = 1 << 20

var (
	// ErrBadMagic indicates that a stream does not start with the
	// expected header.
	ErrBadMagic = errors.New("bitpack: not a packed bit stream")

	// ErrTruncated indicates that a stream ended before all the bits
	// promised by its header were read.
	ErrTruncated = errors.New("bitpack: truncated bit stream")
)

// Write writes the given bits to w, returning the number of bytes
// written.
func Write(w io.Writer, bits []huffman.Bit) (int64, error) {
	cw := countWriter{W: w}
	buf := bufio.NewWriter(&cw)
	bw := bitio.NewWriter(buf)

	if _, err := bw.Write(_magic); err != nil {
		return cw.N, err
	}
	if err := bw.WriteBits(uint64(len(bits)), 64); err != nil {
		return cw.N, err
	}
	for i, b := range bits {
		if b > 1 {
			return cw.N, fmt.Errorf("bit %d: invalid value %d", i, b)
		}
		if err := bw.WriteBool(b == 1); err != nil {
			return cw.N, err
		}
	}

	// Close pads the final byte with zeros.
	if err := bw.Close(); err != nil {
		return cw.N, err
	}
	err := buf.Flush()
	return cw.N, err
}

// Read reads bits written by Write from r.
func Read(r io.Reader) ([]huffman.Bit, error) {
	br := bitio.NewReader(r)

	magic := make([]byte, len(_magic))
	if _, err := io.ReadFull(br, magic); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("read header: %w", ErrTruncated)
		}
		return nil, err
	}
	if !bytes.Equal(magic, _magic) {
		return nil, fmt.Errorf("unexpected header %q: %w", magic, ErrBadMagic)
	}

	count, err := br.ReadBits(64)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("read bit count: %w", ErrTruncated)
		}
		return nil, err
	}

	bits := make([]huffman.Bit, 0, min(count, _maxPrealloc))
	for i := uint64(0); i < count; i++ {
		one, err := br.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("read %d of %d bits: %w", i, count, ErrTruncated)
			}
			return nil, err
		}

		var b huffman.Bit
		if one {
			b = 1
		}
		bits = append(bits, b)
	}
	return bits, nil
}

type countWriter struct {
	W io.Writer
	N int64
}

func (w *countWriter) Write(b []byte) (int, error) {
	n, err := w.W.Write(b)
	w.N += int64(n)
	return n, err
}
