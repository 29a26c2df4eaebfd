package core

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// CallerInfo identifies the call site of a log message
type CallerInfo struct {
	File    string
	Line    int
	Defined bool
}

// GetCaller captures the call site skip frames above the caller of
// runtime.Caller. It returns a zero CallerInfo when the stack cannot
// be resolved.
func GetCaller(skip int) CallerInfo {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}
	return CallerInfo{
		File:    file,
		Line:    line,
		Defined: true,
	}
}

// String renders the call site as "file.go:42" using only the file's
// base name. It returns "" for an undefined caller.
func (c CallerInfo) String() string {
	if !c.Defined {
		return ""
	}
	return filepath.Base(c.File) + ":" + strconv.Itoa(c.Line)
}
