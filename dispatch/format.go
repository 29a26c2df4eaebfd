package dispatch

import (
	"fmt"
	"unicode/utf8"
)

// render formats into the dispatcher's shared scratch buffer, clipping
// the result at the buffer's fixed capacity. Truncation is silent
// apart from the stats counter and never splits a UTF-8 rune. Must be
// called with the critical section held: the buffer is shared by every
// log call on this dispatcher.
func (d *Dispatcher) render(format string, args []interface{}) []byte {
	limit := cap(d.scratch)
	out := fmt.Appendf(d.scratch[:0], format, args...)
	if len(out) <= limit {
		// Append never reallocated, so out still aliases scratch.
		return out
	}

	n := copy(d.scratch[:limit], out)
	clipped := clipRune(d.scratch[:n])
	d.stats.incTruncated()
	return clipped
}

// clipRune drops the trailing bytes of a UTF-8 rune that was cut by
// the capacity limit. Complete input comes back unchanged.
func clipRune(b []byte) []byte {
	end := len(b)
	if end == 0 {
		return b
	}
	start := end
	for start > 0 && end-start < utf8.UTFMax && !utf8.RuneStart(b[start-1]) {
		start--
	}
	if start > 0 {
		start--
	}
	if utf8.FullRune(b[start:end]) {
		return b[:end]
	}
	return b[:start]
}
