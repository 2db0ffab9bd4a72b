package logging

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the rotation limit when nothing else is configured
const DefaultMaxLogFiles = 1000

// Exported so child stow processes log to the same file
const (
	envDebug       = "STOW_DEBUG"
	envDebugFile   = "STOW_DEBUG_FILE"
	envMaxLogFiles = "STOW_MAX_LOG_FILES"
)

// Logger is shared by every package. It discards everything until
// Initialize turns debug output on.
var Logger = discard()

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Initialize points Logger at a debug file. With debugFile empty a new
// uuid-named file is created in LogDir after rotating old ones. Values
// inherited from a parent stow process fill in what the flags leave unset.
// It returns the log file path, or "" when logging stays off.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	inherited := os.Getenv(envDebug) == "1"
	debug = debug || inherited
	debugFile = cmp.Or(debugFile, os.Getenv(envDebugFile))
	if maxLogFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(os.Getenv(envMaxLogFiles)); err == nil {
			maxLogFiles = n
		}
	}

	if !debug && debugFile == "" {
		Logger = discard()
		return "", nil
	}

	path, err := logFilePath(debugFile, maxLogFiles)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	os.Setenv(envDebug, "1")
	os.Setenv(envDebugFile, path)

	if !inherited {
		Logger.Info("Debug logging initialized", "log_file", path, "pid", os.Getpid())
	}
	return path, nil
}

// logFilePath is debugFile when set, otherwise a fresh file in LogDir
func logFilePath(debugFile string, maxLogFiles int) (string, error) {
	if debugFile != "" {
		return debugFile, nil
	}

	dir, err := LogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if maxLogFiles > 0 {
		// a failed rotation still leaves logging usable
		if err := rotateLogs(dir, maxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}
	return filepath.Join(dir, uuid.NewString()+".log"), nil
}

// rotateLogs deletes the oldest .log files in dir so that at most
// maxLogFiles remain once one more is created
func rotateLogs(dir string, maxLogFiles int) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	var logs []fs.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		if info, err := entry.Info(); err == nil {
			logs = append(logs, info)
		}
	}

	excess := len(logs) - maxLogFiles + 1
	if excess <= 0 {
		return nil
	}

	slices.SortFunc(logs, func(a, b fs.FileInfo) int {
		return a.ModTime().Compare(b.ModTime())
	})
	for _, info := range logs[:excess] {
		path := filepath.Join(dir, info.Name())
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", path, err)
		}
	}
	return nil
}

// LogDir is where stow keeps its debug logs on this OS
func LogDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "stow"), nil
	case "linux":
		return filepath.Join(cmp.Or(os.Getenv("XDG_STATE_HOME"), filepath.Join(home, ".local", "state")), "stow"), nil
	case "windows":
		return filepath.Join(cmp.Or(os.Getenv("LOCALAPPDATA"), filepath.Join(home, "AppData", "Local")), "stow", "logs"), nil
	default:
		return filepath.Join(home, ".stow", "logs"), nil
	}
}
