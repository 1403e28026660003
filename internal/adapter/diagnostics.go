package adapter

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	m "github.com/mouse-blink/docstream/internal/model"
)

// Diagnostics surfaces severity-tagged messages to the host.
type Diagnostics interface {
	Report(level m.Level, message string)
}

// ZapDiagnostics writes diagnostics through a zap logger. Messages below
// LevelError are only shown in verbose mode.
type ZapDiagnostics struct {
	logger  *zap.Logger
	verbose bool
}

// NewZapDiagnostics builds a console logger writing to w.
func NewZapDiagnostics(w io.Writer, verbose bool) *ZapDiagnostics {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zapcore.DebugLevel,
	)

	return &ZapDiagnostics{logger: zap.New(core), verbose: verbose}
}

// NewZapDiagnosticsFromLogger wraps an existing logger.
func NewZapDiagnosticsFromLogger(logger *zap.Logger, verbose bool) *ZapDiagnostics {
	return &ZapDiagnostics{logger: logger, verbose: verbose}
}

// Report logs message at the zap level matching level.
func (d *ZapDiagnostics) Report(level m.Level, message string) {
	if !d.verbose && level < m.LevelError {
		return
	}

	d.logger.Log(zapLevel(level), message, zap.Int("level", int(level)))
}

// Sync flushes buffered log entries.
func (d *ZapDiagnostics) Sync() error {
	return d.logger.Sync()
}

func zapLevel(level m.Level) zapcore.Level {
	switch {
	case level >= m.LevelError:
		return zapcore.ErrorLevel
	case level >= m.LevelWarning:
		return zapcore.WarnLevel
	case level >= m.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
