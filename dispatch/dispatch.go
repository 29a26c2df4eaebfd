package dispatch

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/taplog/taplog/core"
)

// Errors returned by registry operations. Dispatching itself never
// fails: truncation is silent and a message with no qualifying
// subscribers is not an error.
var (
	// ErrSubscribersExceeded is returned by Subscribe when the registry
	// is full and the tap is not already subscribed.
	ErrSubscribersExceeded = errors.New("dispatch: subscriber capacity exceeded")
	// ErrNotSubscribed is returned by Unsubscribe when the tap holds no slot.
	ErrNotSubscribed = errors.New("dispatch: not subscribed")
	// ErrNilTap is returned by Subscribe when the tap is nil.
	ErrNilTap = errors.New("dispatch: nil tap")
)

const (
	// DefaultMaxSubscribers is the registry capacity used when
	// Config.MaxSubscribers is unset.
	DefaultMaxSubscribers = 6
	// DefaultMaxMessageLength is the scratch buffer capacity in bytes
	// used when Config.MaxMessageLength is unset.
	DefaultMaxMessageLength = 128
	// defaultCallerSkip resolves the frame of code calling Log or a
	// per-level helper directly on a Dispatcher.
	defaultCallerSkip = 3
)

// Config holds construction parameters for a Dispatcher. The zero
// value yields the defaults.
type Config struct {
	// MaxSubscribers is the fixed registry capacity (default: 6).
	MaxSubscribers int `env:"TAPLOG_MAX_SUBSCRIBERS" envDefault:"6"`
	// MaxMessageLength is the fixed formatted-message capacity in
	// bytes (default: 128). Longer renders are silently truncated.
	MaxMessageLength int `env:"TAPLOG_MAX_MESSAGE_LENGTH" envDefault:"128"`
	// WithCaller enables call-site capture on every log call
	// (default: false).
	WithCaller bool `env:"TAPLOG_WITH_CALLER"`
	// CallerSkip adjusts the stack depth used for call-site capture.
	// The default suits direct calls on a Dispatcher; wrappers add one
	// per intervening frame.
	CallerSkip int
}

// subscriber is one registry slot; a nil tap marks the slot free.
type subscriber struct {
	tap       Tap
	threshold core.Level
}

// Dispatcher fans severity-tagged, printf-formatted messages out to
// subscribed taps. All storage is allocated once at construction: a
// fixed-capacity subscriber registry and a single shared scratch
// buffer reused by every log call.
//
// A Dispatcher is an explicit context object; a process may host any
// number of independent instances. Without an installed lock it
// assumes single-goroutine (or externally serialized) use.
type Dispatcher struct {
	subs       []subscriber
	scratch    []byte
	quiet      atomic.Bool
	lock       sync.Locker
	withCaller bool
	callerSkip int
	stats      Stats
}

// New creates a Dispatcher with fixed capacities taken from cfg.
// Non-positive capacities fall back to the defaults.
func New(cfg Config) *Dispatcher {
	if cfg.MaxSubscribers <= 0 {
		cfg.MaxSubscribers = DefaultMaxSubscribers
	}
	if cfg.MaxMessageLength <= 0 {
		cfg.MaxMessageLength = DefaultMaxMessageLength
	}
	if cfg.CallerSkip <= 0 {
		cfg.CallerSkip = defaultCallerSkip
	}

	return &Dispatcher{
		subs:       make([]subscriber, cfg.MaxSubscribers),
		scratch:    make([]byte, 0, cfg.MaxMessageLength),
		withCaller: cfg.WithCaller,
		callerSkip: cfg.CallerSkip,
	}
}

// Reset returns the dispatcher to its initial state: all slots empty,
// quiet off, no lock installed, stats zeroed. Capacities are kept.
// Reset must not race with concurrent use of the dispatcher; like
// construction, it is a single-owner operation.
func (d *Dispatcher) Reset() {
	for i := range d.subs {
		d.subs[i] = subscriber{}
	}
	d.scratch = d.scratch[:0]
	d.quiet.Store(false)
	d.lock = nil
	d.stats.reset()
}

// Subscribe registers tap to receive every message at or above
// threshold. Subscribing an already-registered tap updates its
// threshold in place, so a tap never occupies more than one slot.
// New taps take the lowest-numbered free slot. Returns
// ErrSubscribersExceeded when the registry is full and the tap is new,
// ErrNilTap for a nil tap; state is unchanged on error.
func (d *Dispatcher) Subscribe(tap Tap, threshold core.Level) error {
	if tap == nil {
		return ErrNilTap
	}

	d.acquire()
	defer d.release()

	free := -1
	for i := range d.subs {
		if d.subs[i].tap == tap {
			d.subs[i].threshold = threshold
			return nil
		}
		if d.subs[i].tap == nil && free == -1 {
			free = i
		}
	}
	if free == -1 {
		return ErrSubscribersExceeded
	}
	d.subs[free] = subscriber{tap: tap, threshold: threshold}
	return nil
}

// Unsubscribe removes tap's slot, making it reusable by later
// subscriptions. Returns ErrNotSubscribed when tap holds no slot.
func (d *Dispatcher) Unsubscribe(tap Tap) error {
	d.acquire()
	defer d.release()

	for i := range d.subs {
		if d.subs[i].tap != nil && d.subs[i].tap == tap {
			d.subs[i] = subscriber{}
			return nil
		}
	}
	return ErrNotSubscribed
}

// Subscribers returns the number of occupied registry slots.
func (d *Dispatcher) Subscribers() int {
	d.acquire()
	defer d.release()

	n := 0
	for i := range d.subs {
		if d.subs[i].tap != nil {
			n++
		}
	}
	return n
}

// SetLock installs the critical-section strategy guarding the registry
// and the scratch buffer. Pass nil (the default) for no-op locking in
// single-goroutine or externally serialized use. The lock is entered
// once per operation and is not re-entrant by contract: logging from
// inside a tap is undefined unless the supplied Locker tolerates it.
func (d *Dispatcher) SetLock(lock sync.Locker) {
	d.lock = lock
}

// SetQuiet suppresses all dispatch when on: log calls return before
// any formatting and no tap is invoked. Registrations are untouched,
// so switching quiet off restores the previous behavior.
func (d *Dispatcher) SetQuiet(on bool) {
	d.quiet.Store(on)
}

// Quiet reports whether quiet mode is on.
func (d *Dispatcher) Quiet() bool {
	return d.quiet.Load()
}

// Stats returns a snapshot of the dispatcher's activity counters.
func (d *Dispatcher) Stats() Snapshot {
	return d.stats.snapshot()
}

func (d *Dispatcher) acquire() {
	if d.lock != nil {
		d.lock.Lock()
	}
}

func (d *Dispatcher) release() {
	if d.lock != nil {
		d.lock.Unlock()
	}
}

// Log formats the message and fans it out to every subscriber whose
// threshold is at or below level. Formatting and fan-out happen inside
// the critical section, so subscribers always observe the text
// produced by the call that invoked them.
func (d *Dispatcher) Log(level core.Level, format string, args ...interface{}) {
	d.emit(level, format, args)
}

// Trace logs a formatted message at TraceLevel.
func (d *Dispatcher) Trace(format string, args ...interface{}) {
	d.emit(core.TraceLevel, format, args)
}

// Debug logs a formatted message at DebugLevel.
func (d *Dispatcher) Debug(format string, args ...interface{}) {
	d.emit(core.DebugLevel, format, args)
}

// Info logs a formatted message at InfoLevel.
func (d *Dispatcher) Info(format string, args ...interface{}) {
	d.emit(core.InfoLevel, format, args)
}

// Warning logs a formatted message at WarningLevel.
func (d *Dispatcher) Warning(format string, args ...interface{}) {
	d.emit(core.WarningLevel, format, args)
}

// Error logs a formatted message at ErrorLevel.
func (d *Dispatcher) Error(format string, args ...interface{}) {
	d.emit(core.ErrorLevel, format, args)
}

// Critical logs a formatted message at CriticalLevel.
func (d *Dispatcher) Critical(format string, args ...interface{}) {
	d.emit(core.CriticalLevel, format, args)
}
