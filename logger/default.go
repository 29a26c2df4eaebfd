package logger

import (
	"sync"

	"github.com/taplog/taplog/core"
	"github.com/taplog/taplog/dispatch"
)

// CallerSkip is the stack depth a dispatch.Config needs for call-site
// capture to resolve through this package's wrapper functions.
const CallerSkip = 4

var (
	defaultDispatcher *dispatch.Dispatcher
	defaultMu         sync.RWMutex
)

func init() {
	// The default dispatcher starts with no taps: logging is silent
	// until something subscribes.
	defaultDispatcher = dispatch.New(dispatch.Config{
		WithCaller: true,
		CallerSkip: CallerSkip,
	})
}

// Default returns the default dispatcher
func Default() *dispatch.Dispatcher {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultDispatcher
}

// SetDefault sets the default dispatcher. Dispatchers installed here
// should be built with CallerSkip for call-site capture to point at
// the code calling this package rather than the wrapper itself.
func SetDefault(d *dispatch.Dispatcher) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultDispatcher = d
}

// Subscribe registers tap on the default dispatcher
func Subscribe(tap dispatch.Tap, threshold core.Level) error {
	return Default().Subscribe(tap, threshold)
}

// Unsubscribe removes tap from the default dispatcher
func Unsubscribe(tap dispatch.Tap) error {
	return Default().Unsubscribe(tap)
}

// SetLock installs a critical-section strategy on the default dispatcher
func SetLock(lock sync.Locker) {
	Default().SetLock(lock)
}

// SetQuiet toggles quiet mode on the default dispatcher
func SetQuiet(on bool) {
	Default().SetQuiet(on)
}

// Log logs a formatted message at the given level using the default dispatcher
func Log(level core.Level, format string, args ...interface{}) {
	Default().Log(level, format, args...)
}

// Trace logs a formatted trace message using the default dispatcher
func Trace(format string, args ...interface{}) {
	Default().Trace(format, args...)
}

// Debug logs a formatted debug message using the default dispatcher
func Debug(format string, args ...interface{}) {
	Default().Debug(format, args...)
}

// Info logs a formatted info message using the default dispatcher
func Info(format string, args ...interface{}) {
	Default().Info(format, args...)
}

// Warning logs a formatted warning message using the default dispatcher
func Warning(format string, args ...interface{}) {
	Default().Warning(format, args...)
}

// Error logs a formatted error message using the default dispatcher
func Error(format string, args ...interface{}) {
	Default().Error(format, args...)
}

// Critical logs a formatted critical message using the default dispatcher
func Critical(format string, args ...interface{}) {
	Default().Critical(format, args...)
}
