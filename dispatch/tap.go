package dispatch

import "github.com/taplog/taplog/core"

// Tap receives dispatched log messages.
//
// The Dispatcher uses interface equality as the subscription identity,
// so implementations must be comparable — in practice, pointers. The
// msg slice aliases the dispatcher's shared scratch buffer: it is valid
// only for the duration of the call and is overwritten by the next log
// call. Taps must copy it before retaining it.
//
// Taps are invoked synchronously while the dispatcher's critical
// section is held; a tap that blocks delays every later subscriber and
// the logging caller.
type Tap interface {
	Emit(level core.Level, caller core.CallerInfo, msg []byte)
}

// FuncTap adapts a plain function to the Tap interface. The pointer
// returned by Func carries the subscription identity, so the same
// *FuncTap value must be passed to Subscribe and Unsubscribe.
type FuncTap struct {
	fn func(level core.Level, caller core.CallerInfo, msg []byte)
}

// Func wraps fn in a FuncTap.
func Func(fn func(level core.Level, caller core.CallerInfo, msg []byte)) *FuncTap {
	return &FuncTap{fn: fn}
}

// Emit invokes the wrapped function.
func (t *FuncTap) Emit(level core.Level, caller core.CallerInfo, msg []byte) {
	t.fn(level, caller, msg)
}
