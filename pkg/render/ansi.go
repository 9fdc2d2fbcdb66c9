// Package render converts raw volume and trash numbers into centered,
// color-coded, tree-structured terminal output. Everything here is a pure
// function over its inputs; color codes, thresholds and glyphs are
// compile-time constants.
package render

import (
	"regexp"
	"unicode/utf8"
)

// ANSI color codes
const (
	ColorReset        = "\033[0m"
	ColorRed          = "\033[31m"
	ColorGreen        = "\033[32m"
	ColorYellow       = "\033[33m"
	ColorBlue         = "\033[34m"
	ColorCyan         = "\033[36m"
	ColorGray         = "\033[90m"
	ColorBrightRed    = "\033[91m"
	ColorBrightGreen  = "\033[92m"
	ColorBrightYellow = "\033[93m"
	ColorBrightBlue   = "\033[94m"
	ColorBrightCyan   = "\033[96m"
)

// ansiEscape matches full ANSI escape sequences: the two-byte Fe escapes
// and CSI sequences of the form ESC [ params intermediates final-byte.
var ansiEscape = regexp.MustCompile(`\x1b(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

// VisibleLength returns the number of characters a string occupies on the
// terminal, ignoring embedded ANSI escape sequences. An unterminated escape
// at the end of the string does not match and is counted as literal text.
func VisibleLength(s string) int {
	return utf8.RuneCountInString(ansiEscape.ReplaceAllString(s, ""))
}
