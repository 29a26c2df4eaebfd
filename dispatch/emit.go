//go:build !taplog_off

package dispatch

import "github.com/taplog/taplog/core"

// emit is the dispatch path shared by Log and the per-level helpers.
// The quiet check runs first so a quieted dispatcher does no work at
// all: no caller capture, no formatting, no lock traffic.
func (d *Dispatcher) emit(level core.Level, format string, args []interface{}) {
	if d.quiet.Load() {
		d.stats.incSuppressed()
		return
	}

	var caller core.CallerInfo
	if d.withCaller {
		caller = core.GetCaller(d.callerSkip)
	}

	d.acquire()
	msg := d.render(format, args)
	for i := range d.subs {
		if d.subs[i].tap != nil && level >= d.subs[i].threshold {
			d.subs[i].tap.Emit(level, caller, msg)
			d.stats.incDelivered()
		}
	}
	d.stats.incDispatched()
	d.release()
}
