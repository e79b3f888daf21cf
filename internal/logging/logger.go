// Package logging provides categorized file-based logging for echoes. The
// interactive screens own stdout, so anything worth keeping goes to per-
// category files under ~/.echoes/logs/ instead. Logging is a silent no-op
// unless debug mode is enabled in the config.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category names a log stream; each one gets its own file.
type Category string

const (
	CategoryBoot    Category = "boot"    // startup, config, catalog load
	CategoryFlow    Category = "flow"    // phase transitions, submissions
	CategoryScoring Category = "scoring" // analysis and outcome selection
	CategoryReport  Category = "report"  // archive appends, webhook sends
	CategoryStore   Category = "store"   // sqlite operations
)

// Options controls logger behavior, mirroring the config logging block.
type Options struct {
	DebugMode  bool
	Level      string // debug, info, warn, error
	Categories map[string]bool
}

// Log levels.
const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

var (
	mu       sync.Mutex
	loggers  = make(map[Category]*Logger)
	logsDir  string
	opts     Options
	logLevel = levelInfo
)

// Logger writes to one category file. A zero Logger is a no-op.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

// Initialize points the logging system at a directory and applies options.
// Call once at startup. When debug mode is off this is a no-op and nothing
// is ever written.
func Initialize(dir string, o Options) error {
	mu.Lock()
	defer mu.Unlock()

	opts = o
	switch o.Level {
	case "debug":
		logLevel = levelDebug
	case "warn", "warning":
		logLevel = levelWarn
	case "error":
		logLevel = levelError
	default:
		logLevel = levelInfo
	}

	if !o.DebugMode {
		logsDir = ""
		return nil
	}

	logsDir = filepath.Join(dir, "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	return nil
}

func enabled(category Category) bool {
	if !opts.DebugMode || logsDir == "" {
		return false
	}
	if opts.Categories == nil {
		return true
	}
	on, found := opts.Categories[string(category)]
	if !found {
		return true
	}
	return on
}

// Get returns (or creates) the logger for a category. Disabled categories
// get a no-op logger.
func Get(category Category) *Logger {
	mu.Lock()
	defer mu.Unlock()

	if !enabled(category) {
		return &Logger{category: category}
	}
	if l, ok := loggers[category]; ok {
		return l
	}

	// Date prefix keeps rotation a matter of deleting old files.
	filename := fmt.Sprintf("%s_%s.log", time.Now().Format("2006-01-02"), category)
	path := filepath.Join(logsDir, filename)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] could not open %s: %v\n", path, err)
		return &Logger{category: category}
	}

	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.logger == nil || logLevel > levelDebug {
		return
	}
	l.logger.Printf("[DEBUG] %s", fmt.Sprintf(format, args...))
}

// Info logs at info level.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.logger == nil || logLevel > levelInfo {
		return
	}
	l.logger.Printf("[INFO] %s", fmt.Sprintf(format, args...))
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.logger == nil || logLevel > levelWarn {
		return
	}
	l.logger.Printf("[WARN] %s", fmt.Sprintf(format, args...))
}

// Error logs unconditionally (for an enabled category).
func (l *Logger) Error(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Printf("[ERROR] %s", fmt.Sprintf(format, args...))
}

// CloseAll closes every open log file. Call at shutdown.
func CloseAll() {
	mu.Lock()
	defer mu.Unlock()
	for _, l := range loggers {
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// Convenience helpers; no-ops when the category is disabled.

// Boot logs to the boot category.
func Boot(format string, args ...interface{}) { Get(CategoryBoot).Info(format, args...) }

// Flow logs to the flow category.
func Flow(format string, args ...interface{}) { Get(CategoryFlow).Info(format, args...) }

// Scoring logs to the scoring category.
func Scoring(format string, args ...interface{}) { Get(CategoryScoring).Info(format, args...) }

// Report logs to the report category.
func Report(format string, args ...interface{}) { Get(CategoryReport).Info(format, args...) }

// ReportError logs an error to the report category.
func ReportError(format string, args ...interface{}) { Get(CategoryReport).Error(format, args...) }

// StoreError logs an error to the store category.
func StoreError(format string, args ...interface{}) { Get(CategoryStore).Error(format, args...) }
