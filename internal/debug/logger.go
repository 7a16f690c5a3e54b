package debug

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides sanitized structured logging hooks. Callers log indices,
// categories and counts, never record text.
type Logger struct {
	enabled bool
	z       *zap.SugaredLogger
}

// New returns a logger writing to stderr when enabled.
func New(enabled bool) *Logger {
	return NewWithWriter(enabled, os.Stderr)
}

// NewWithWriter returns a logger writing console-encoded lines to out.
func NewWithWriter(enabled bool, out io.Writer) *Logger {
	if !enabled {
		return &Logger{z: zap.NewNop().Sugar()}
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(out), zapcore.DebugLevel)
	return &Logger{enabled: true, z: zap.New(core).Named("piiscan").Sugar()}
}

// Enabled reports whether log lines are emitted.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Infof writes a formatted log line when enabled.
func (l *Logger) Infof(format string, args ...any) {
	if !l.Enabled() {
		return
	}
	l.z.Infof(format, args...)
}

// Debugw writes a debug line with key/value pairs.
func (l *Logger) Debugw(msg string, keysAndValues ...any) {
	if !l.Enabled() {
		return
	}
	l.z.Debugw(msg, keysAndValues...)
}

// Warnw writes a warning line with key/value pairs.
func (l *Logger) Warnw(msg string, keysAndValues ...any) {
	if !l.Enabled() {
		return
	}
	l.z.Warnw(msg, keysAndValues...)
}

// Sync flushes buffered output.
func (l *Logger) Sync() {
	if !l.Enabled() {
		return
	}
	_ = l.z.Sync()
}
