package render

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// DefaultWidth is assumed whenever the terminal width cannot be detected.
const DefaultWidth = 80

// Branch selects the tree glyph for a line's position within its block.
type Branch int

const (
	BranchFirst Branch = iota
	BranchMiddle
	BranchLast
)

func (b Branch) glyph() string {
	if b == BranchLast {
		return "└─"
	}
	return "├─"
}

// DetectWidth queries the terminal attached to stdout. Anything that is not
// a usable terminal (pipes, detection errors, zero width) reports
// DefaultWidth.
func DetectWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// Center left-pads text so its visible characters sit in the middle of
// width columns. No trailing padding is added; printed left-to-right the
// text appears centered without risking a forced line wrap. Existing left
// padding is recomputed rather than stacked, so centering is idempotent.
func Center(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	text = strings.TrimLeft(text, " ")
	pad := (width - VisibleLength(text)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + text
}

// TreeLine prefixes text with a colorized branch glyph and one space.
func TreeLine(text string, kind Branch) string {
	return ColorBrightRed + kind.glyph() + ColorReset + " " + text
}

// HeaderFooter builds a matching header and footer for a report. The footer
// is the border character repeated across the full width; the header is a
// bordered, centered title.
func HeaderFooter(title, borderChar string, width int) (string, string) {
	if width <= 0 {
		width = DefaultWidth
	}
	border := strings.Repeat(borderChar, width)
	header := border + "\n" + Center(title, width) + "\n" + border
	return header, border
}

// PadBlock applies one shared left pad to every line, derived from the
// widest line in the block. Centering each line independently would let
// tree branches drift to their own centers; a single pad keeps the block
// vertically aligned.
func PadBlock(lines []string, width int) []string {
	if width <= 0 {
		width = DefaultWidth
	}
	maxLen := 0
	for _, line := range lines {
		if l := VisibleLength(line); l > maxLen {
			maxLen = l
		}
	}

	pad := (width - maxLen) / 2
	if pad < 0 {
		pad = 0
	}
	prefix := strings.Repeat(" ", pad)

	padded := make([]string, len(lines))
	for i, line := range lines {
		padded[i] = prefix + line
	}
	return padded
}
