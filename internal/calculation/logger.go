package calculation

import (
	"fmt"
	"io"
	"sync"
)

// Logger is a minimal logging interface for the projection engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// WriterLogger writes leveled lines to an io.Writer. Debug lines are
// dropped unless debug is enabled.
type WriterLogger struct {
	mu    sync.Mutex
	w     io.Writer
	debug bool
}

// NewWriterLogger returns a Logger writing to w.
func NewWriterLogger(w io.Writer, debug bool) *WriterLogger {
	return &WriterLogger{w: w, debug: debug}
}

func (l *WriterLogger) Debugf(format string, args ...any) {
	if l.debug {
		l.write("DEBUG", format, args...)
	}
}

func (l *WriterLogger) Infof(format string, args ...any)  { l.write("INFO", format, args...) }
func (l *WriterLogger) Warnf(format string, args ...any)  { l.write("WARN", format, args...) }
func (l *WriterLogger) Errorf(format string, args ...any) { l.write("ERROR", format, args...) }

func (l *WriterLogger) write(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%-5s %s\n", level, fmt.Sprintf(format, args...))
}
