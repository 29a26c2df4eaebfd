package core

import "strings"

// Level represents the severity of a log message
type Level int8

const (
	// TraceLevel for very fine-grained diagnostic messages
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarningLevel for conditions that deserve attention
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for unrecoverable failures
	CriticalLevel
)

// NumLevels is the number of defined severity levels.
const NumLevels = int(CriticalLevel) + 1

// String returns the string representation of the level. It is total:
// any value outside the defined range yields "UNKNOWN".
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level. Unrecognized strings map
// to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "TRACE":
		return TraceLevel
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarningLevel
	case "ERROR":
		return ErrorLevel
	case "CRIT", "CRITICAL":
		return CriticalLevel
	default:
		return InfoLevel
	}
}
