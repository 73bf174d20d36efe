package tracelog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Callback receives every message that clears the minimum level. While one
// is installed it replaces formatting, output and the exit check; the
// format string and arguments are handed over verbatim.
type Callback func(level Level, format string, args ...interface{})

// Logger is a trace logger with independent emission and exit thresholds.
// The zero value is not usable; call New. A Logger must not be copied after
// first use.
type Logger struct {
	mu        sync.Mutex
	minLevel  Level
	exitLevel Level
	callback  Callback
	out       io.Writer
	exit      func(code int)
	journal   bool
}

// New returns a Logger writing to standard output that emits INFO and
// above and terminates the process on ERROR and above.
func New() *Logger {
	return &Logger{
		minLevel:  LevelInfo,
		exitLevel: LevelError,
		out:       os.Stdout,
		exit:      os.Exit,
		journal:   runningUnderJournal(),
	}
}

// SetLevel sets the minimum level a message needs to be emitted.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.minLevel = level
	l.mu.Unlock()
}

// Level returns the minimum emitted level.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.minLevel
}

// SetExitLevel sets the level at or above which an emitted message
// terminates the process. The two thresholds are independent; a message
// filtered out by the minimum level never triggers the exit check.
func (l *Logger) SetExitLevel(level Level) {
	l.mu.Lock()
	l.exitLevel = level
	l.mu.Unlock()
}

// ExitLevel returns the exit threshold.
func (l *Logger) ExitLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.exitLevel
}

// SetCallback installs a custom sink, or removes it when cb is nil. The
// callback runs outside the logger's lock and may call back into the
// logger; guarding against unbounded recursion is the callback's job.
func (l *Logger) SetCallback(cb Callback) {
	l.mu.Lock()
	l.callback = cb
	l.mu.Unlock()
}

// SetOutput redirects default-sink output, which otherwise goes to
// standard output.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	l.out = w
	l.mu.Unlock()
}

// SetExitFunc replaces the function called when a message reaches the exit
// threshold. The default is os.Exit.
func (l *Logger) SetExitFunc(fn func(code int)) {
	l.mu.Lock()
	l.exit = fn
	l.mu.Unlock()
}

// Log emits a single message at the given level. Messages below the
// minimum level are dropped. With a callback installed the message is
// forwarded verbatim and nothing else happens. Otherwise the message is
// labeled, formatted, written with a trailing newline, and the process
// terminates with status 1 if the level reaches the exit threshold.
func (l *Logger) Log(level Level, format string, args ...interface{}) {
	if !enabled {
		return
	}

	l.mu.Lock()
	if level < l.minLevel {
		l.mu.Unlock()
		return
	}
	if cb := l.callback; cb != nil {
		l.mu.Unlock()
		cb(level, format, args...)
		return
	}

	var b strings.Builder
	if l.journal {
		b.WriteString(journalPrefix(level))
	} else {
		b.WriteString(level.prefix())
	}
	fmt.Fprintf(&b, format, args...)
	b.WriteByte('\n')
	io.WriteString(l.out, b.String())
	shouldExit := level >= l.exitLevel
	exit := l.exit
	l.mu.Unlock()

	if shouldExit {
		exit(1)
	}
}

// Trace logs a trace message
func (l *Logger) Trace(format string, args ...interface{}) {
	l.Log(LevelTrace, format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.Log(LevelDebug, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(LevelInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.Log(LevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(LevelError, format, args...)
}

// Fatal logs a fatal message
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.Log(LevelFatal, format, args...)
}

// std is the logger behind the package level functions.
var std = New()

// Default returns the logger used by the package level functions.
func Default() *Logger {
	return std
}

// SetLevel sets the minimum emitted level of the default logger.
func SetLevel(level Level) {
	std.SetLevel(level)
}

// GetLevel returns the minimum emitted level of the default logger.
func GetLevel() Level {
	return std.Level()
}

// SetExitLevel sets the exit threshold of the default logger.
func SetExitLevel(level Level) {
	std.SetExitLevel(level)
}

// SetCallback installs a custom sink on the default logger.
func SetCallback(cb Callback) {
	std.SetCallback(cb)
}

// SetOutput redirects default-sink output of the default logger.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// IsDebugEnabled returns true if the default logger emits debug messages.
func IsDebugEnabled() bool {
	return std.Level() <= LevelDebug
}

// Log emits a message through the default logger.
func Log(level Level, format string, args ...interface{}) {
	std.Log(level, format, args...)
}

// Trace logs a trace message through the default logger.
func Trace(format string, args ...interface{}) {
	std.Log(LevelTrace, format, args...)
}

// Debug logs a debug message through the default logger.
func Debug(format string, args ...interface{}) {
	std.Log(LevelDebug, format, args...)
}

// Info logs an info message through the default logger.
func Info(format string, args ...interface{}) {
	std.Log(LevelInfo, format, args...)
}

// Warning logs a warning message through the default logger.
func Warning(format string, args ...interface{}) {
	std.Log(LevelWarning, format, args...)
}

// Error logs an error message through the default logger.
func Error(format string, args ...interface{}) {
	std.Log(LevelError, format, args...)
}

// Fatal logs a fatal message through the default logger.
func Fatal(format string, args ...interface{}) {
	std.Log(LevelFatal, format, args...)
}
