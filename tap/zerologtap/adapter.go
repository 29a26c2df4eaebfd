// Package zerologtap bridges taplog dispatch to github.com/rs/zerolog.
package zerologtap

import (
	"github.com/rs/zerolog"

	"github.com/taplog/taplog/core"
)

// Tap forwards dispatched messages to a zerolog.Logger.
type Tap struct {
	l zerolog.Logger
}

// New creates a tap for the provided zerolog logger.
func New(l zerolog.Logger) *Tap {
	return &Tap{l: l}
}

// Emit forwards one message, copying the scratch-backed msg to a
// string at this boundary.
func (t *Tap) Emit(level core.Level, caller core.CallerInfo, msg []byte) {
	e := t.l.WithLevel(toZerologLevel(level))
	if caller.Defined {
		e = e.Str("caller", caller.String())
	}
	e.Msg(string(msg))
}

// toZerologLevel maps taplog severities onto zerolog's. CRITICAL maps
// to Fatal, which WithLevel emits without terminating the process.
func toZerologLevel(l core.Level) zerolog.Level {
	switch l {
	case core.TraceLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarningLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	case core.CriticalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.ErrorLevel
	}
}
