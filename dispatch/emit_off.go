//go:build taplog_off

package dispatch

import "github.com/taplog/taplog/core"

// emit is compiled out: with the taplog_off build tag set, every log
// call returns immediately and no formatting code is linked in.
// Registry maintenance still works, so subscriptions carry over to a
// re-enabled build unchanged.
func (d *Dispatcher) emit(level core.Level, format string, args []interface{}) {
}
