// Package logger provides a small leveled logger for sample-app.
// It wraps the standard `log` package, which writes to stderr, and drops
// messages below the configured level. Standard output is reserved for the
// greeting itself.
package logger

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync/atomic"
)

// LogLevel is a type representing the logging level.
type LogLevel int32

const (
	// LevelDebug is the log level used for detailed debugging information.
	LevelDebug LogLevel = iota
	// LevelInfo is the log level used for general informational messages.
	LevelInfo
	// LevelWarn is the log level used for potential issues.
	LevelWarn
	// LevelError is the log level used for error messages.
	LevelError
	// LevelFatal is the log level used for errors that terminate the process.
	LevelFatal
	// LevelSilent suppresses all output.
	LevelSilent
)

var levelNames = map[string]LogLevel{
	"DEBUG":  LevelDebug,
	"INFO":   LevelInfo,
	"WARN":   LevelWarn,
	"ERROR":  LevelError,
	"FATAL":  LevelFatal,
	"SILENT": LevelSilent,
}

var logLevel atomic.Int32

func init() {
	logLevel.Store(int32(LevelWarn))
}

// ParseLevel converts a level name (case-insensitive) to a LogLevel.
func ParseLevel(level string) (LogLevel, error) {
	l, ok := levelNames[strings.ToUpper(strings.TrimSpace(level))]
	if !ok {
		return LevelWarn, fmt.Errorf("unknown log level %q", level)
	}
	return l, nil
}

// SetLogLevel sets the global log level.
// Valid values are "DEBUG", "INFO", "WARN", "ERROR", "FATAL" and "SILENT".
// An unknown value falls back to WARN and the fallback is reported on stderr.
func SetLogLevel(level string) {
	l, err := ParseLevel(level)
	if err != nil {
		log.Printf("[WARN] %v. Defaulting to WARN level.", err)
	}
	logLevel.Store(int32(l))
}

// GetLogLevel returns the current global log level.
func GetLogLevel() LogLevel {
	return LogLevel(logLevel.Load())
}

// SetOutput redirects log output. Tests use it to capture messages.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func enabled(l LogLevel) bool {
	return GetLogLevel() <= l
}

// Debugf formats and outputs a DEBUG level log message.
func Debugf(format string, v ...interface{}) {
	if enabled(LevelDebug) {
		log.Printf("[DEBUG] "+format, v...)
	}
}

// Infof formats and outputs an INFO level log message.
func Infof(format string, v ...interface{}) {
	if enabled(LevelInfo) {
		log.Printf("[INFO] "+format, v...)
	}
}

// Warnf formats and outputs a WARN level log message.
func Warnf(format string, v ...interface{}) {
	if enabled(LevelWarn) {
		log.Printf("[WARN] "+format, v...)
	}
}

// Errorf formats and outputs an ERROR level log message.
func Errorf(format string, v ...interface{}) {
	if enabled(LevelError) {
		log.Printf("[ERROR] "+format, v...)
	}
}
