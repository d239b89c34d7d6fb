package bitpack

import (
	"bytes"
	"testing"

	"github.com/abhinav/huffcode/internal/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []huffman.Bit
		want []byte
	}{
		{
			desc: "empty",
			want: []byte("HUF1\x00\x00\x00\x00\x00\x00\x00\x00"),
		},
		{
			desc: "partial byte",
			give: []huffman.Bit{1, 0, 1},
			want: []byte("HUF1\x00\x00\x00\x00\x00\x00\x00\x03\xa0"),
		},
		{
			desc: "byte boundary",
			give: []huffman.Bit{0, 1, 1, 0, 0, 0, 0, 1, 1},
			want: []byte("HUF1\x00\x00\x00\x00\x00\x00\x00\x09\x61\x80"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			n, err := Write(&buf, tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.Bytes())
			assert.Equal(t, int64(len(tt.want)), n)

			got, err := Read(&buf)
			require.NoError(t, err)
			assert.Equal(t, len(tt.give), len(got))
			if len(tt.give) > 0 {
				assert.Equal(t, tt.give, got)
			}
		})
	}
}

func TestWrite_invalidBit(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := Write(&buf, []huffman.Bit{0, 3})
	assert.ErrorContains(t, err, "bit 1: invalid value 3")
}

func TestRead_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc    string
		give    string
		wantErr error
		wantMsg string
	}{
		{
			desc:    "empty",
			wantErr: ErrTruncated,
			wantMsg: "read header",
		},
		{
			desc:    "bad magic",
			give:    "GZIP\x00\x00\x00\x00\x00\x00\x00\x00",
			wantErr: ErrBadMagic,
			wantMsg: `unexpected header "GZIP"`,
		},
		{
			desc:    "short count",
			give:    "HUF1\x00\x00",
			wantErr: ErrTruncated,
			wantMsg: "read bit count",
		},
		{
			desc:    "missing bits",
			give:    "HUF1\x00\x00\x00\x00\x00\x00\x00\x10\xff",
			wantErr: ErrTruncated,
			wantMsg: "read 8 of 16 bits",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			_, err := Read(bytes.NewReader([]byte(tt.give)))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

func TestRoundTrip_rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bits := rapid.SliceOfN(
			rapid.SampledFrom([]huffman.Bit{0, 1}), 1, 1000,
		).Draw(t, "bits")

		var buf bytes.Buffer
		n, err := Write(&buf, bits)
		require.NoError(t, err)
		assert.Equal(t, int64(12+(len(bits)+7)/8), n)

		got, err := Read(&buf)
		require.NoError(t, err)
		assert.Equal(t, bits, got)
	})
}
