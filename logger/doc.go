// Package logger is the convenience surface of taplog. It wraps a
// process-wide default dispatcher so simple programs can log without
// carrying a Dispatcher around:
//
//	logger.Subscribe(writertap.New(writertap.Config{}), logger.WarningLevel)
//	logger.Info("listening on %s", addr)
//
// The default dispatcher captures call sites (file and line are handed
// to every tap) and starts with no subscribers, so logging is silent
// until something subscribes. Programs that need different capacities,
// several independent dispatchers, or no global state at all should
// use package dispatch directly; SetDefault swaps the instance behind
// the package-level functions.
package logger
