package render

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func leadingSpaces(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}

func TestCenter(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		width   int
		wantPad int
	}{
		{"plain text", "hello", 21, 8},
		{"odd remainder truncates", "hello", 20, 7},
		{"colorized text pads by visible length", "\x1b[31mhello\x1b[0m", 21, 8},
		{"wider than width gets no pad", strings.Repeat("x", 30), 20, 0},
		{"exact fit gets no pad", "abcd", 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Center(tt.text, tt.width)
			assert.Equal(t, tt.wantPad, leadingSpaces(got))
			assert.True(t, strings.HasSuffix(got, tt.text), "text must be preserved")
			assert.False(t, strings.HasSuffix(got, " "), "no trailing padding")
		})
	}
}

func TestCenterIdempotent(t *testing.T) {
	once := Center("hello", 20)
	twice := Center(once, 20)
	assert.Equal(t, once, twice)
}

func TestCenterNonPositiveWidth(t *testing.T) {
	got := Center("hi", 0)
	assert.Equal(t, (DefaultWidth-2)/2, leadingSpaces(got))
}

func TestTreeLine(t *testing.T) {
	first := TreeLine("Total: 10 GB", BranchFirst)
	middle := TreeLine("Used: 5 GB", BranchMiddle)
	last := TreeLine("Free: 5 GB", BranchLast)

	assert.Contains(t, first, "├─ Total: 10 GB")
	assert.Contains(t, middle, "├─ Used: 5 GB")
	assert.Contains(t, last, "└─ Free: 5 GB")

	// Branch glyph plus one space ahead of the content, colorized.
	assert.True(t, strings.HasPrefix(first, ColorBrightRed+"├─"+ColorReset+" "))
}

func TestHeaderFooter(t *testing.T) {
	header, footer := HeaderFooter("Report", "=", 40)

	require.Equal(t, strings.Repeat("=", 40), footer)

	lines := strings.Split(header, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, footer, lines[0])
	assert.Equal(t, footer, lines[2])
	assert.Equal(t, Center("Report", 40), lines[1])
}

func TestHeaderFooterCustomBorder(t *testing.T) {
	_, footer := HeaderFooter("x", "-", 10)
	assert.Equal(t, "----------", footer)
}

func TestPadBlock(t *testing.T) {
	lines := []string{
		"Drive /",
		TreeLine("Total: \x1b[94m  500.00 GB\x1b[0m", BranchFirst),
		TreeLine(" Used: \x1b[33m  250.00 GB\x1b[0m", BranchMiddle),
		TreeLine(" Free: \x1b[32m  250.00 GB\x1b[0m", BranchLast),
	}

	maxLen := 0
	for _, line := range lines {
		if l := VisibleLength(line); l > maxLen {
			maxLen = l
		}
	}

	padded := PadBlock(lines, 80)
	require.Len(t, padded, len(lines))

	wantPad := (80 - maxLen) / 2
	for i, line := range padded {
		assert.Equal(t, wantPad, leadingSpaces(line)-leadingSpaces(lines[i]),
			"every line shares the block pad, line %d", i)
		assert.True(t, strings.HasSuffix(line, lines[i]))
	}
}

func TestPadBlockWiderThanTerminal(t *testing.T) {
	lines := []string{strings.Repeat("x", 100)}
	padded := PadBlock(lines, 80)
	assert.Equal(t, lines[0], padded[0], "no negative padding")
}

func TestDetectWidthFallback(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a real terminal")
	}
	assert.Equal(t, DefaultWidth, DetectWidth())
}
