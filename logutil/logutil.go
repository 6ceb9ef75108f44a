// Package logutil holds the process-wide logger shared by the tracetrim
// packages. The default logs logfmt to stderr at info level and above;
// embedding applications replace it with SetLogger.
package logutil

import (
	"os"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var (
	mu     sync.RWMutex
	logger log.Logger = level.NewFilter(
		log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr)),
		level.AllowInfo(),
	)
)

// SetLogger replaces the shared logger. Passing nil discards all output.
func SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewNopLogger()
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Logger returns the shared logger.
func Logger() log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Warn is a shorthand for level.Warn(Logger()).
func Warn() log.Logger { return level.Warn(Logger()) }

// Error is a shorthand for level.Error(Logger()).
func Error() log.Logger { return level.Error(Logger()) }
