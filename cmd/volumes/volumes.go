// Package volumes implements `dsk volumes`, the drive space report.
package volumes

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sysfoundry/dsk/pkg/clirun"
	"github.com/sysfoundry/dsk/pkg/render"
	"github.com/sysfoundry/dsk/pkg/usererr"
	"github.com/sysfoundry/dsk/pkg/volume"
)

var allVolumes bool

// newSource is the test seam for substituting the platform volume source.
var newSource = volume.NewSource

// VolumesCmd reports space utilization for one or more volumes.
var VolumesCmd = &cobra.Command{
	Use:     "volumes [selector...]",
	Aliases: []string{"space"},
	Short:   "Show drive space utilization",
	Long: `Show total, used and free space for mounted volumes as centered,
color-coded tree blocks with a utilization bar.

With no arguments the volume containing the working directory is shown.
Selectors name specific volumes (drive letters on Windows, mount paths
elsewhere); volumes that do not exist are skipped.

Examples:
  dsk volumes              # current volume
  dsk volumes --all        # every available volume
  dsk volumes C D          # specific drives (Windows)
  dsk volumes /mnt/data    # specific mount (Unix)`,
	RunE: clirun.Wrap(runVolumes),
}

func init() {
	VolumesCmd.Flags().BoolVar(&allVolumes, "all", false, "Show information for all available volumes")
}

func runVolumes(rc *clirun.RuntimeContext, cmd *cobra.Command, args []string) error {
	src := newSource()

	ids, err := src.List(rc.Ctx, allVolumes, args)
	if err != nil {
		// Bad selectors are a user mistake, not a system fault.
		return usererr.Wrap(err)
	}

	writeReport(rc, os.Stdout, src, ids, render.DetectWidth())
	return nil
}

// writeReport renders one block per volume. A volume whose usage query
// fails becomes a single failure line; the remaining volumes still render.
func writeReport(rc *clirun.RuntimeContext, w io.Writer, src volume.Source, ids []string, width int) {
	header, footer := render.HeaderFooter(
		render.ColorCyan+"=== Drive Space Information ==="+render.ColorReset, "=", width)

	fmt.Fprintln(w)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w)

	for _, id := range ids {
		usage, err := src.Usage(rc.Ctx, id)
		if err != nil {
			rc.Log.Warn("Volume usage query failed",
				zap.String("volume", id),
				zap.Error(err))
			fmt.Fprintln(w, render.FailureLine(id, width))
			fmt.Fprintln(w)
			continue
		}

		block := render.VolumeBlock(render.UtilizationReport{
			Label: id,
			Total: usage.Total,
			Used:  usage.Used,
			Free:  usage.Free,
		}, width)
		for _, line := range block {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, footer)
	fmt.Fprintln(w)
}
