// cmd/root.go

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	// Subcommands
	"github.com/sysfoundry/dsk/cmd/trash"
	"github.com/sysfoundry/dsk/cmd/volumes"

	"github.com/sysfoundry/dsk/pkg/logger"
	"github.com/sysfoundry/dsk/pkg/usererr"
)

// RootCmd is the base command for dsk.
var RootCmd = &cobra.Command{
	Use:   "dsk",
	Short: "Report drive space and manage the system trash",
	Long: `dsk renders color-coded drive space reports and manages the platform
trash/recycle store, with output centered to the current terminal width.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	for _, subCmd := range []*cobra.Command{
		volumes.VolumesCmd,
		trash.TrashCmd,
	} {
		RootCmd.AddCommand(subCmd)
	}
}

// Execute runs the root command and maps the outcome to an exit code.
// Expected user errors exit 0 so scripted invocations with bad selectors
// do not trip set -e pipelines.
func Execute() {
	defer logger.Sync()

	RegisterCommands()

	if err := RootCmd.Execute(); err != nil {
		if usererr.IsExpected(err) {
			logger.L().Warn("Completed with user error", zap.Error(err))
			os.Exit(0)
		}
		logger.L().Error("Command failed", zap.Error(err))
		os.Exit(1)
	}
}
