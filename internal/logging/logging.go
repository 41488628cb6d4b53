// Package logging builds the zap loggers used by the CLI and the server.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select the level and encoding of a logger.
type Options struct {
	Verbose bool // debug and above
	Quiet   bool // errors only; wins over Verbose
	JSON    bool // production JSON encoding instead of console
}

// Level maps the CLI verbosity flags to a zap level.
func (o Options) Level() zapcore.Level {
	switch {
	case o.Quiet:
		return zapcore.ErrorLevel
	case o.Verbose:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// New returns a logger writing to w. Console output has no timestamps so
// CLI warnings read like plain diagnostics.
func New(w io.Writer, o Options) *zap.Logger {
	var enc zapcore.Encoder
	if o.JSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(o.Level()))
	return zap.New(core)
}
