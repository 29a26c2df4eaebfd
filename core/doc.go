// Package core defines the shared vocabulary types used across taplog.
//
// It provides the Level type for severity classification and the
// CallerInfo type for call-site capture. Level is a small closed
// enumeration ordered by ascending severity (TRACE < DEBUG < INFO <
// WARNING < ERROR < CRITICAL); a subscriber sees a message when the
// message level is at or above the subscriber's threshold.
//
// Level.String is total: out-of-range values render as "UNKNOWN"
// rather than failing, so severity values received from foreign code
// can always be printed.
package core
