// Package clirun adapts command handlers to cobra, providing panic
// recovery, a per-command RuntimeContext and outcome logging.
package clirun

import (
	"context"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// HandlerFunc is the signature every dsk command handler implements.
type HandlerFunc func(rc *RuntimeContext, cmd *cobra.Command, args []string) error

// Wrap converts a HandlerFunc into a cobra RunE, recovering panics into
// errors so a rendering bug can never take the whole process down.
func Wrap(fn HandlerFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rc := NewContext(context.Background(), cmd.Name())
		defer rc.End(&err)

		defer func() {
			if r := recover(); r != nil {
				err = cerr.AssertionFailedf("panic: %v", r)
				rc.Log.Error("Panic recovered", zap.Any("panic", r))
			}
		}()

		return fn(rc, cmd, args)
	}
}
