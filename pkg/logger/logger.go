// Package logger owns the process-wide zap logger for dsk.
// Report blocks are written straight to stdout by the render layer; the
// logger carries operational detail (collaborator failures, timings) on
// stderr so it never interleaves with the centered output.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// DefaultEncoderConfig returns the console encoder settings used for all
// terminal logging.
func DefaultEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "T"
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.MessageKey = "M"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

// ParseLogLevel maps a LOG_LEVEL environment value to a zap level.
// Unknown or empty values fall back to Warn so report output stays clean.
func ParseLogLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// Initialize builds the console logger and installs it as the zap global.
func Initialize() {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(DefaultEncoderConfig()),
		zapcore.Lock(os.Stderr),
		ParseLogLevel(os.Getenv("LOG_LEVEL")),
	)

	log = zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))
	zap.ReplaceGlobals(log)
}

// L returns the global logger, initializing it on first use.
func L() *zap.Logger {
	if log == nil {
		Initialize()
	}
	return log
}

// Sync flushes buffered entries. Called once before the process exits.
// Sync errors on stderr are expected on some platforms and not actionable.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
