package render

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// UtilizationReport holds one volume's raw usage numbers for a single
// render. used+free==total is expected from the collaborator but not
// enforced; the block renders whatever it is given.
type UtilizationReport struct {
	Label string
	Total int64
	Used  int64
	Free  int64
}

// TrashReport holds the trash store's contents for a single render.
type TrashReport struct {
	Items int
	Size  int64
}

// UsedPercent computes used/total as a percentage, defaulting to 0 for an
// empty or zero-sized volume rather than dividing by zero.
func UsedPercent(total, used int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

// VolumeBlock assembles the display lines for one volume: a title, three
// tree lines sharing one left pad, and a centered tier-colored progress
// bar.
func VolumeBlock(rep UtilizationReport, width int) []string {
	title := ColorCyan + "Drive " + rep.Label + ColorReset

	lines := []string{
		title,
		TreeLine(fmt.Sprintf("Total: %s%12s%s", ColorBrightBlue, FormatSize(rep.Total), ColorReset), BranchFirst),
		TreeLine(fmt.Sprintf(" Used: %s%12s%s", ColorYellow, FormatSize(rep.Used), ColorReset), BranchMiddle),
		TreeLine(fmt.Sprintf(" Free: %s%12s%s", ColorGreen, FormatSize(rep.Free), ColorReset), BranchLast),
	}

	percent := UsedPercent(rep.Total, rep.Used)
	tier := Classify(percent)
	bar := tier.Color() + Bar(percent, DefaultBarWidth, BarFilled, BarEmpty) + ColorReset

	block := PadBlock(lines, width)
	return append(block, Center(bar, width))
}

// TrashBlock assembles the display lines for the trash store: a title and
// two tree lines sharing one left pad. Trash reports carry no progress bar;
// there is no capacity to fill.
func TrashBlock(rep TrashReport, width int) []string {
	title := ColorBrightCyan + "Recycle Bin" + ColorReset

	lines := []string{
		title,
		TreeLine(fmt.Sprintf("Items: %s%10s%s", ColorBrightBlue, humanize.Comma(int64(rep.Items)), ColorReset), BranchFirst),
		TreeLine(fmt.Sprintf(" Size: %s%10s%s", ColorBrightGreen, FormatSizeRounded(rep.Size), ColorReset), BranchLast),
	}

	return PadBlock(lines, width)
}

// FailureLine produces the single centered line shown when a resource
// cannot be read. It names the resource only; the underlying fault belongs
// in the log, not the report.
func FailureLine(resource string, width int) string {
	return Center(ColorBrightRed+"Unable to access "+resource+ColorReset, width)
}

// StatusLine produces a centered confirmation or failure line for an
// action, colored by outcome.
func StatusLine(msg string, ok bool, width int) string {
	color := ColorBrightGreen
	if !ok {
		color = ColorBrightRed
	}
	return Center(color+msg+ColorReset, width)
}
