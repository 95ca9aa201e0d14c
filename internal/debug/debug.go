// Package debug provides development logging for the cadastro CLI.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	enabled bool
	out     io.Writer
	logFile *os.File
	mu      sync.Mutex
	logPath string
)

// Enable turns on debug logging to the specified file.
func Enable(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if enabled {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	//nolint:gosec // G304: Path comes from the XDG data directory.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	logFile = f
	logPath = path
	start(f)

	return nil
}

// SetOutput enables debug logging to w. Passing nil disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeFile()
	if w == nil {
		enabled = false
		out = nil
		return
	}
	logPath = ""
	start(w)
}

// start must be called with mu held.
func start(w io.Writer) {
	out = w
	enabled = true

	// Written directly: Log would deadlock on mu.
	now := time.Now()
	timestamp := now.Format("15:04:05.000")
	fmt.Fprintf(out, "[%s] === cadastro debug session started ===\n", timestamp)
	fmt.Fprintf(out, "[%s] Time: %s\n", timestamp, now.Format(time.RFC3339))
	if logPath != "" {
		fmt.Fprintf(out, "[%s] Log file: %s\n", timestamp, logPath)
	}
	flush()
}

// Disable turns off debug logging and closes the file.
func Disable() {
	mu.Lock()
	defer mu.Unlock()

	if !enabled {
		return
	}

	closeFile()
	out = nil
	enabled = false
}

func closeFile() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func flush() {
	if logFile != nil {
		_ = logFile.Sync()
	}
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Log writes a debug message if logging is enabled.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(out, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
	flush() // Flush immediately for tail -f.
}

// LogPath returns the path to the log file.
func LogPath() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Event logs an event with component context.
func Event(component, eventType, details string) {
	Log("[%s] %s: %s", component, eventType, details)
}

// Error logs an error with context.
func Error(component string, err error, context string) {
	Log("[%s] ERROR: %s - %v", component, context, err)
}
