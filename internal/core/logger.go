package core

import (
	"log"
	"strings"
)

// LogLevel orders log severities.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a case-insensitive level name, defaulting to info.
func ParseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger is the leveled logging surface used by drivers and loaders.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

// StdLogger writes leveled lines through a *log.Logger.
type StdLogger struct {
	level LogLevel
	out   *log.Logger
}

// NewLogger returns a logger writing to the standard logger at the given level.
func NewLogger(level string) *StdLogger {
	return &StdLogger{level: ParseLogLevel(level), out: log.Default()}
}

func (l *StdLogger) logf(level LogLevel, format string, v ...any) {
	if level < l.level {
		return
	}
	l.out.Printf("["+strings.ToUpper(level.String())+"] "+format, v...)
}

func (l *StdLogger) Debugf(format string, v ...any) { l.logf(LogLevelDebug, format, v...) }
func (l *StdLogger) Infof(format string, v ...any)  { l.logf(LogLevelInfo, format, v...) }
func (l *StdLogger) Warnf(format string, v ...any)  { l.logf(LogLevelWarn, format, v...) }
func (l *StdLogger) Errorf(format string, v ...any) { l.logf(LogLevelError, format, v...) }

// Fatalf logs and exits the process.
func (l *StdLogger) Fatalf(format string, v ...any) {
	l.out.Fatalf("[FATAL] "+format, v...)
}

// NopLogger discards everything; useful in tests.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
