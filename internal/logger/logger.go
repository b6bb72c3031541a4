// Package logger provides leveled logging for the application layer.
// It wraps the standard log package with level-based filtering; the
// statistical packages never log.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Level represents a logging level.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// ParseLevel maps a level name to its Level, defaulting to InfoLevel.
func ParseLevel(name string) Level {
	switch strings.ToLower(name) {
	case "debug":
		return DebugLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

var defaultLogger = &leveledLogger{
	level:  InfoLevel,
	logger: log.New(os.Stderr, "", log.LstdFlags),
}

type leveledLogger struct {
	level  Level
	logger *log.Logger
}

// Init configures the default logger. format "text" adds source locations;
// any other value keeps timestamps only.
func Init(level string, format string) {
	flags := log.LstdFlags | log.Lmicroseconds
	if strings.ToLower(format) == "text" {
		flags |= log.Lshortfile
	}
	defaultLogger = &leveledLogger{
		level:  ParseLevel(level),
		logger: log.New(os.Stderr, "", flags),
	}
}

func (l *leveledLogger) logf(level Level, tag, format string, args ...any) {
	if l.level > level {
		return
	}
	_ = l.logger.Output(3, fmt.Sprintf(tag+format, args...))
}

// Debug logs a message at DebugLevel.
func Debug(format string, args ...any) {
	defaultLogger.logf(DebugLevel, "[DEBUG] ", format, args...)
}

// Info logs a message at InfoLevel.
func Info(format string, args ...any) {
	defaultLogger.logf(InfoLevel, "[INFO] ", format, args...)
}

// Warn logs a message at WarnLevel.
func Warn(format string, args ...any) {
	defaultLogger.logf(WarnLevel, "[WARN] ", format, args...)
}

// Error logs a message at ErrorLevel.
func Error(format string, args ...any) {
	defaultLogger.logf(ErrorLevel, "[ERROR] ", format, args...)
}

// Fatal logs a message and exits with status 1.
func Fatal(format string, args ...any) {
	defaultLogger.logf(ErrorLevel, "[FATAL] ", format, args...)
	os.Exit(1)
}
