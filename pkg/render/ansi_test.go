package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{
			name: "empty string",
			in:   "",
			want: 0,
		},
		{
			name: "plain text equals raw length",
			in:   "hello world",
			want: 11,
		},
		{
			name: "color codes are invisible",
			in:   "\x1b[31mHI\x1b[0m",
			want: 2,
		},
		{
			name: "bright color with reset",
			in:   ColorBrightCyan + "Recycle Bin" + ColorReset,
			want: 11,
		},
		{
			name: "multiple sequences in one string",
			in:   "\x1b[91m├─\x1b[0m Total: \x1b[94m500.00 GB\x1b[0m",
			want: 19,
		},
		{
			name: "cursor movement codes",
			in:   "\x1b[1A\x1b[2Kdone",
			want: 4,
		},
		{
			name: "multi-parameter sequence",
			in:   "\x1b[1;31mbold red\x1b[0m",
			want: 8,
		},
		{
			name: "two-byte escape",
			in:   "\x1bMup",
			want: 2,
		},
		{
			name: "string terminator escape",
			in:   "\x1b]hi",
			want: 2,
		},
		{
			name: "privacy message escape",
			in:   "\x1b^hi",
			want: 2,
		},
		{
			name: "escape before a non-escape byte is literal",
			in:   "\x1b-hi",
			want: 4,
		},
		{
			name: "unterminated escape at end is literal",
			in:   "text\x1b[31",
			want: 8,
		},
		{
			name: "lone escape byte is literal",
			in:   "a\x1b",
			want: 2,
		},
		{
			name: "multibyte glyphs count as single characters",
			in:   "██░░",
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisibleLength(tt.in))
		})
	}
}
