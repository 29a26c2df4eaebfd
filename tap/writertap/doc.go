// Package writertap provides a Tap that writes human-readable log
// lines to any io.Writer, os.Stderr by default.
//
// Writes are synchronous: the line is on the writer before Emit
// returns, matching the dispatcher's fully synchronous delivery model.
// Point it at a file handle for simple file logging.
package writertap
