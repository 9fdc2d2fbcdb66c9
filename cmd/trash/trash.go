// Package trash implements `dsk trash`, the recycle bin report and
// empty operations.
package trash

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sysfoundry/dsk/pkg/clirun"
	"github.com/sysfoundry/dsk/pkg/render"
	trashstore "github.com/sysfoundry/dsk/pkg/trash"
)

var (
	showInfo   bool
	emptyTrash bool
)

// TrashCmd reports on and empties the platform trash store.
var TrashCmd = &cobra.Command{
	Use:   "trash",
	Short: "Inspect or empty the system trash",
	Long: `Inspect or empty the platform trash/recycle store.

Both flags may be combined; the contents report runs before emptying.

Examples:
  dsk trash -i        # show item count and total size
  dsk trash -e        # empty the trash
  dsk trash -i -e     # report, then empty`,
	RunE: clirun.Wrap(runTrash),
}

func init() {
	TrashCmd.Flags().BoolVarP(&showInfo, "info", "i", false, "Display trash contents information")
	TrashCmd.Flags().BoolVarP(&emptyTrash, "empty", "e", false, "Empty the trash")
}

func runTrash(rc *clirun.RuntimeContext, cmd *cobra.Command, args []string) error {
	if !showInfo && !emptyTrash {
		return cmd.Help()
	}

	store := trashstore.NewStore()
	width := render.DetectWidth()
	header, footer := render.HeaderFooter(
		render.ColorCyan+"=== Recycle Bin Information ==="+render.ColorReset, "=", width)

	fmt.Println()
	fmt.Println(header)
	fmt.Println()

	if showInfo {
		info, err := store.Contents(rc.Ctx)
		if err != nil {
			rc.Log.Warn("Trash contents query failed", zap.Error(err))
			fmt.Println(render.FailureLine("recycle bin", width))
		} else {
			block := render.TrashBlock(render.TrashReport{
				Items: info.Items,
				Size:  info.Size,
			}, width)
			for _, line := range block {
				fmt.Println(line)
			}
		}
		fmt.Println()
	}

	if emptyTrash {
		if err := store.Empty(rc.Ctx); err != nil {
			rc.Log.Warn("Emptying trash failed", zap.Error(err))
			fmt.Println(render.StatusLine("Unable to empty the recycle bin", false, width))
		} else {
			fmt.Println(render.StatusLine("Successfully emptied the recycle bin", true, width))
		}
		fmt.Println()
	}

	fmt.Println(footer)
	fmt.Println()
	return nil
}
