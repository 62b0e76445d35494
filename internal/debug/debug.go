package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/davecgh/go-spew/spew"
)

var (
	logFile *os.File
	mu      sync.Mutex

	enabled atomic.Bool
	dumps   atomic.Bool
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Init initializes debug logging to the specified file path.
// If path is empty, uses "flex-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "flex-debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	enabled.Store(true)
	return nil
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	enabled.Store(false)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether log lines are written anywhere.
// Callers use it to skip building expensive messages.
func Enabled() bool {
	return enabled.Load()
}

// Log writes a message to the debug log with a timestamp.
// It does nothing until Init or InitFromEnv has opened a log file.
func Log(format string, args ...any) {
	if !enabled.Load() {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}

// Dump renders v for inclusion in a log line. It returns an empty string
// unless dumps are enabled.
func Dump(v any) string {
	if !dumps.Load() {
		return ""
	}
	return dumpConfig.Sdump(v)
}

// SetDumps toggles value dumps.
func SetDumps(on bool) {
	dumps.Store(on)
}
