package render

import "strings"

// Progress bar glyphs and default width.
const (
	BarFilled       = "█"
	BarEmpty        = "░"
	DefaultBarWidth = 20
)

// Bar renders a fixed-width progress bar proportional to percent. Percent
// is clamped to [0,100] and a non-positive width falls back to
// DefaultBarWidth, so the filled count can never be negative or exceed the
// width.
func Bar(percent float64, width int, filled, empty string) string {
	if width <= 0 {
		width = DefaultBarWidth
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filledCount := int(float64(width) * percent / 100)
	return strings.Repeat(filled, filledCount) + strings.Repeat(empty, width-filledCount)
}
