// Package dispatch implements a bounded, synchronous fan-out log
// dispatcher for resource-constrained workloads.
//
// A Dispatcher owns a fixed-capacity subscriber registry and a single
// shared scratch buffer, both allocated once at construction. Log
// formats a printf-style message into the scratch buffer (truncating
// silently at the configured capacity) and invokes every subscribed
// Tap whose severity threshold the message meets, in registry slot
// order, before returning. Nothing is queued, nothing is delivered
// asynchronously, and no goroutines are spawned: when Log returns,
// every qualifying tap has already run.
//
// Mutual exclusion is injected rather than assumed. SetLock installs a
// sync.Locker that is entered around registry mutation and around the
// whole format-and-fan-out sequence; with no lock installed (the
// default) entry and exit are no-ops, for single-goroutine or
// externally serialized use. The lock is entered once per operation,
// so logging from within a tap requires a re-entrant Locker.
//
// Quiet mode (SetQuiet) suppresses all dispatch at runtime without
// touching registrations. For builds that must not carry logging at
// all, compiling with the taplog_off build tag reduces every log call
// to an immediate return.
package dispatch
