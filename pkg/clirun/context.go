package clirun

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sysfoundry/dsk/pkg/logger"
)

// RuntimeContext carries the per-command context, logger and start time
// through a command handler.
type RuntimeContext struct {
	Ctx       context.Context
	Log       *zap.Logger
	Command   string
	Timestamp time.Time
}

// NewContext builds a RuntimeContext for the named command.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	return &RuntimeContext{
		Ctx:       ctx,
		Log:       logger.L().Named(cmdName),
		Command:   cmdName,
		Timestamp: time.Now(),
	}
}

// End logs the command outcome with its duration. Intended as
// `defer rc.End(&err)` so the error pointer is read after the handler runs.
func (rc *RuntimeContext) End(errPtr *error) {
	duration := time.Since(rc.Timestamp)
	if *errPtr == nil {
		rc.Log.Debug("Command completed", zap.Duration("duration", duration))
		return
	}
	rc.Log.Debug("Command failed",
		zap.Duration("duration", duration),
		zap.Error(*errPtr))
}
