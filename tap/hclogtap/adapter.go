// Package hclogtap bridges taplog dispatch to
// github.com/hashicorp/go-hclog.
package hclogtap

import (
	"github.com/hashicorp/go-hclog"

	"github.com/taplog/taplog/core"
)

// Tap forwards dispatched messages to an hclog.Logger.
type Tap struct {
	l hclog.Logger
}

// New creates a tap for the provided hclog logger. A nil logger is
// replaced with hclog.Default.
func New(l hclog.Logger) *Tap {
	if l == nil {
		l = hclog.Default()
	}
	return &Tap{l: l}
}

// Emit forwards one message, copying the scratch-backed msg to a
// string at this boundary.
func (t *Tap) Emit(level core.Level, caller core.CallerInfo, msg []byte) {
	if caller.Defined {
		t.l.Log(toHclogLevel(level), string(msg), "caller", caller.String())
		return
	}
	t.l.Log(toHclogLevel(level), string(msg))
}

// toHclogLevel maps taplog severities onto hclog's. CRITICAL collapses
// into Error, hclog's highest level.
func toHclogLevel(l core.Level) hclog.Level {
	switch l {
	case core.TraceLevel:
		return hclog.Trace
	case core.DebugLevel:
		return hclog.Debug
	case core.InfoLevel:
		return hclog.Info
	case core.WarningLevel:
		return hclog.Warn
	default:
		return hclog.Error
	}
}
