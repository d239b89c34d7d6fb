package huffman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	t.Parallel()

	tree, err := Build(_textbookFreqs)
	require.NoError(t, err)

	var got []string
	for _, e := range tree.Save() {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{
		"5:0",
		"2:100",
		"3:101",
		"0:1100",
		"1:1101",
		"4:111",
	}, got)
}

func TestWriteTable(t *testing.T) {
	t.Parallel()

	tree, err := Build(_textbookFreqs)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := tree.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, unlines(
		"5", "0",
		"2", "100",
		"3", "101",
		"0", "1100",
		"1", "1101",
		"4", "111",
	), buf.String())
}

func TestReadTree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want map[Symbol]string
	}{
		{
			desc: "single symbol",
			give: unlines("65", "0"),
			want: map[Symbol]string{65: "0"},
		},
		{
			desc: "no trailing newline",
			give: "97\n0\n98\n1",
			want: map[Symbol]string{97: "0", 98: "1"},
		},
		{
			desc: "CRLF",
			give: "97\r\n0\r\n98\r\n10\r\n99\r\n11\r\n",
			want: map[Symbol]string{97: "0", 98: "10", 99: "11"},
		},
		{
			desc: "symbols beyond a byte",
			give: unlines("1000", "1", "256", "0"),
			want: map[Symbol]string{256: "0", 1000: "1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			tree, err := ReadTree(strings.NewReader(tt.give))
			require.NoError(t, err)
			assert.Equal(t, tt.want, codeStrings(tree))
		})
	}
}

func TestReadTable_malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want string
	}{
		{
			desc: "missing code",
			give: unlines("1", "0", "2"),
			want: "line 3: symbol 2 has no code",
		},
		{
			desc: "bad symbol",
			give: unlines("one", "0"),
			want: `line 1: bad symbol "one"`,
		},
		{
			desc: "blank symbol",
			give: unlines("1", "0", ""),
			want: `line 3: bad symbol ""`,
		},
		{
			desc: "bad code",
			give: unlines("1", "012"),
			want: "line 2: invalid character '2'",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			_, err := ReadTable(strings.NewReader(tt.give))
			assert.ErrorIs(t, err, ErrMalformedTable)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoad_malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []Entry
		want string
	}{
		{desc: "empty table", want: "no entries"},
		{
			desc: "empty code",
			give: []Entry{
				{Symbol: 1, Code: Code{0}},
				{Symbol: 2, Code: Code{}},
			},
			want: "entry 1: symbol 2 has an empty code",
		},
		{
			desc: "negative symbol",
			give: []Entry{{Symbol: -1, Code: Code{0}}},
			want: "entry 0: negative symbol -1",
		},
		{
			desc: "duplicate symbol",
			give: []Entry{
				{Symbol: 1, Code: Code{0}},
				{Symbol: 1, Code: Code{1}},
			},
			want: "entry 1: symbol 1 was already listed in entry 0",
		},
		{
			desc: "leaf on the path",
			give: []Entry{
				{Symbol: 1, Code: Code{0}},
				{Symbol: 2, Code: Code{0, 1}},
			},
			want: "entry 1: symbol 2: code 0 for symbol 1 is a prefix of 01",
		},
		{
			desc: "branch in the way",
			give: []Entry{
				{Symbol: 1, Code: Code{1, 0}},
				{Symbol: 2, Code: Code{1}},
			},
			want: "entry 1: symbol 2: code 1 is already taken",
		},
		{
			desc: "same code",
			give: []Entry{
				{Symbol: 1, Code: Code{1, 0}},
				{Symbol: 2, Code: Code{1, 0}},
			},
			want: "entry 1: symbol 2: code 10 is already taken",
		},
		{
			desc: "invalid bit",
			give: []Entry{{Symbol: 1, Code: Code{0, 2}}},
			want: "invalid bit 2 at offset 1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			_, err := Load(tt.give)
			assert.ErrorIs(t, err, ErrMalformedTable)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoad_partialTree(t *testing.T) {
	t.Parallel()

	// A table need not describe a full tree.
	// Bits that fall off of it are rejected when decoding.
	tree, err := Load([]Entry{
		{Symbol: 'x', Code: mustParseCode(t, "00")},
		{Symbol: 'y', Code: mustParseCode(t, "01")},
	})
	require.NoError(t, err)

	got, err := tree.DecodeBytes(mustParseCode(t, "0100"))
	require.NoError(t, err)
	assert.Equal(t, "yx", string(got))

	_, err = tree.DecodeBytes(mustParseCode(t, "001"))
	assert.ErrorIs(t, err, ErrMalformedStream)
	assert.ErrorContains(t, err, "bit 2: no code matches bits 1")
}

func unlines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
