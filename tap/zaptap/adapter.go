// Package zaptap bridges taplog dispatch to go.uber.org/zap, letting a
// zap logger act as one subscriber among the fan-out set.
package zaptap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/taplog/taplog/core"
)

// Tap forwards dispatched messages to a zap.Logger.
type Tap struct {
	l *zap.Logger
}

// New creates a tap for the provided zap logger. A nil logger is
// replaced with zap.NewNop.
func New(l *zap.Logger) *Tap {
	if l == nil {
		l = zap.NewNop()
	}
	return &Tap{l: l}
}

// Emit forwards one message. The scratch-backed msg is copied to a
// string at this boundary; nothing downstream may alias the
// dispatcher's buffer.
func (t *Tap) Emit(level core.Level, caller core.CallerInfo, msg []byte) {
	ce := t.l.Check(toZapLevel(level), string(msg))
	if ce == nil {
		return
	}
	if caller.Defined {
		ce.Write(zap.String("caller", caller.String()))
		return
	}
	ce.Write()
}

// toZapLevel maps taplog severities onto zap's. TRACE collapses into
// Debug (zap has no trace) and CRITICAL maps to Error rather than
// Fatal to avoid os.Exit in library code.
func toZapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarningLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
