// Package logging builds the diagnostic logger used by h2verify.
// Diagnostics are off unless --verbose is given, and never go to stdout,
// which carries the report.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Phase names logged at each transition of a run.
const (
	PhaseLoading    = "loading"
	PhaseValidating = "validating"
	PhaseReporting  = "reporting"
)

// New returns a no-op logger unless verbose is set, in which case debug-level
// console-encoded entries are written to w.
func New(verbose bool, w io.Writer) *zap.Logger {
	if !verbose || w == nil {
		return zap.NewNop()
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
