package writertap

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/taplog/taplog/core"
)

// Tap writes formatted log lines to an io.Writer
type Tap struct {
	w       io.Writer
	timeFmt string
	mu      sync.Mutex
	buf     []byte
}

// Config holds configuration for the writer tap
type Config struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
}

// New creates a writer tap
func New(cfg Config) *Tap {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &Tap{
		w:       cfg.Writer,
		timeFmt: cfg.TimestampFormat,
		buf:     make([]byte, 0, 256),
	}
}

// pre-formatted level strings to avoid multiple writes
var levelBrackets = [core.NumLevels]string{
	core.TraceLevel:    " [TRACE] ",
	core.DebugLevel:    " [DEBUG] ",
	core.InfoLevel:     " [INFO] ",
	core.WarningLevel:  " [WARNING] ",
	core.ErrorLevel:    " [ERROR] ",
	core.CriticalLevel: " [CRITICAL] ",
}

// Emit writes one line: timestamp, bracketed level, optional
// "[file:line]", message. The internal line buffer is guarded by a
// mutex so a single tap may be subscribed to several dispatchers.
func (t *Tap) Emit(level core.Level, caller core.CallerInfo, msg []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	b := t.buf[:0]
	b = time.Now().AppendFormat(b, t.timeFmt)
	if int(level) >= 0 && int(level) < core.NumLevels {
		b = append(b, levelBrackets[level]...)
	} else {
		b = append(b, " [UNKNOWN] "...)
	}
	if caller.Defined {
		b = append(b, '[')
		b = append(b, filepath.Base(caller.File)...)
		b = append(b, ':')
		b = strconv.AppendInt(b, int64(caller.Line), 10)
		b = append(b, "] "...)
	}
	b = append(b, msg...)
	b = append(b, '\n')
	t.buf = b

	_, _ = t.w.Write(b)
}
