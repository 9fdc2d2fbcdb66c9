package render

import (
	"fmt"
	"math"
)

// sizeUnits are stepped through by successive division by 1024. Values that
// exhaust the list are clamped to PB rather than overflowing to an
// undefined unit.
var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatSize converts a byte count into a human-readable string with two
// decimal places.
//
// Example:
//
//	FormatSize(1536) -> "1.50 KB"
//	FormatSize(1073741824) -> "1.00 GB"
func FormatSize(bytes int64) string {
	return FormatSizePrec(bytes, 2)
}

// FormatSizePrec is FormatSize with a caller-chosen number of decimal
// places. Negative byte counts are a caller contract violation and clamp
// to zero.
func FormatSizePrec(bytes int64, precision int) string {
	value, unit := scaleSize(bytes)
	return fmt.Sprintf("%.*f %s", precision, value, unit)
}

// FormatSizeRounded converts a byte count into a human-readable string with
// the scaled value rounded to the nearest integer.
//
// Example:
//
//	FormatSizeRounded(1536) -> "2 KB"
func FormatSizeRounded(bytes int64) string {
	value, unit := scaleSize(bytes)
	return fmt.Sprintf("%d %s", int64(math.Round(value)), unit)
}

func scaleSize(bytes int64) (float64, string) {
	if bytes < 0 {
		bytes = 0
	}
	value := float64(bytes)
	for _, unit := range sizeUnits[:len(sizeUnits)-1] {
		if value < 1024 {
			return value, unit
		}
		value /= 1024
	}
	return value, sizeUnits[len(sizeUnits)-1]
}
