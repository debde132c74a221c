package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Logger is a leveled logger shared by the social-service packages.
type Logger struct {
	level  string
	out    *log.Logger
	prefix string
}

// New creates a Logger writing to stderr. Recognized levels: debug, info, warn, error.
func New(level string) *Logger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter creates a Logger writing to w.
func NewWithWriter(level string, w io.Writer) *Logger {
	return &Logger{level: strings.ToLower(level), out: log.New(w, "", log.LstdFlags)}
}

// Named returns a copy of the logger that prefixes every line with [name].
func (l *Logger) Named(name string) *Logger {
	return &Logger{level: l.level, out: l.out, prefix: l.prefix + "[" + name + "] "}
}

func (l *Logger) enabled(level string) bool {
	return rank(level) >= rank(l.level)
}

func rank(level string) int {
	switch level {
	case "debug":
		return 0
	case "warn":
		return 2
	case "error":
		return 3
	default:
		return 1
	}
}

func (l *Logger) print(tag, msg string) {
	l.out.Printf("[%s] %s%s", tag, l.prefix, msg)
}

func (l *Logger) Info(msg string) {
	if l.enabled("info") {
		l.print("INFO", msg)
	}
}

func (l *Logger) Error(msg string) {
	l.print("ERROR", msg)
}

func (l *Logger) Debug(msg string) {
	if l.enabled("debug") {
		l.print("DEBUG", msg)
	}
}

func (l *Logger) Warn(msg string) {
	if l.enabled("warn") {
		l.print("WARN", msg)
	}
}

func (l *Logger) Fatal(msg string) {
	l.print("FATAL", msg)
	os.Exit(1)
}

func (l *Logger) Infof(format string, args ...any)  { l.Info(fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...any) { l.Error(fmt.Sprintf(format, args...)) }
func (l *Logger) Debugf(format string, args ...any) { l.Debug(fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...any)  { l.Warn(fmt.Sprintf(format, args...)) }
func (l *Logger) Fatalf(format string, args ...any) { l.Fatal(fmt.Sprintf(format, args...)) }

// IsDebug reports whether debug output is enabled.
func (l *Logger) IsDebug() bool {
	return l.level == "debug"
}
