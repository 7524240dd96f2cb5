package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

var (
	mu sync.RWMutex
	// IsEnabled controls whether debug messages are output
	IsEnabled bool
	// CurrentLevel is the minimum level of messages to output
	CurrentLevel LogLevel
	logger       *log.Logger
	levelNames   = map[LogLevel]string{
		LevelDebug:   "DEBUG",
		LevelInfo:    "INFO",
		LevelWarning: "WARNING",
		LevelError:   "ERROR",
	}
	levelMap = map[string]LogLevel{
		"DEBUG":   LevelDebug,
		"INFO":    LevelInfo,
		"WARNING": LevelWarning,
		"WARN":    LevelWarning,
		"ERROR":   LevelError,
	}
)

func init() {
	logger = log.New(os.Stdout, "", 0)
	loadFromEnv()
}

// ParseLevel maps a level name such as "warning" to a LogLevel.
// Unknown names fall back to LevelInfo.
func ParseLevel(name string) (LogLevel, bool) {
	level, ok := levelMap[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return LevelInfo, false
	}
	return level, true
}

func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

func loadFromEnv() {
	debugEnv := os.Getenv("DEBUG")
	level, _ := ParseLevel(os.Getenv("LOG_LEVEL"))

	mu.Lock()
	IsEnabled = debugEnv == "true" || debugEnv == "1"
	CurrentLevel = level
	mu.Unlock()
}

// Init points the logger at w and forces logging on or off, ignoring DEBUG.
// Tests use it to capture output.
func Init(w io.Writer, enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", 0)
	IsEnabled = enabled
}

// SetLevel changes the minimum level of messages to output.
func SetLevel(level LogLevel) {
	mu.Lock()
	CurrentLevel = level
	mu.Unlock()
}

// Log prints a debug message with the specified level if debugging is enabled
func Log(level LogLevel, format string, v ...interface{}) {
	mu.RLock()
	enabled, threshold, out := IsEnabled, CurrentLevel, logger
	mu.RUnlock()

	if !enabled || level < threshold {
		return
	}

	// Get caller information
	pc, file, line, _ := runtime.Caller(2)
	funcName := runtime.FuncForPC(pc).Name()

	message := fmt.Sprintf(format, v...)
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")

	out.Printf("[%s] [%s] [%s:%d] [%s] %s\n",
		levelNames[level],
		timestamp,
		file,
		line,
		funcName,
		message,
	)
}

// Debug logs a debug level message
func Debug(format string, v ...interface{}) {
	Log(LevelDebug, format, v...)
}

// Info logs an info level message
func Info(format string, v ...interface{}) {
	Log(LevelInfo, format, v...)
}

// Warning logs a warning level message
func Warning(format string, v ...interface{}) {
	Log(LevelWarning, format, v...)
}

// Error logs an error level message
func Error(format string, v ...interface{}) {
	Log(LevelError, format, v...)
}

// Fatal logs an error message regardless of the enabled flag and exits.
func Fatal(format string, v ...interface{}) {
	mu.RLock()
	out := logger
	mu.RUnlock()
	out.Printf("[FATAL] [%s] %s\n", time.Now().Format("2006-01-02 15:04:05.000"), fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Reinitialize updates the debug settings based on current environment variables
func Reinitialize() {
	loadFromEnv()

	mu.RLock()
	enabled, level := IsEnabled, CurrentLevel
	mu.RUnlock()
	if enabled {
		Info("Debug logging reinitialized - Enabled: %v, Level: %s", enabled, level)
	}
}
