package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const fileName = "qr.log"

type Config struct {
	// Dir holds qr.log. Empty means <user cache dir>/qr/logs.
	Dir   string
	Debug bool
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

// DefaultDir is where logs go when Config.Dir is empty.
func DefaultDir() (string, error) {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cache, "qr", "logs"), nil
}

func Setup(cfg Config) (func() error, error) {
	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			setDiscard()
			return nil, err
		}
		dir = d
	}
	dir = filepath.Clean(dir)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		setDiscard()
		return nil, err
	}

	path := filepath.Join(dir, fileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		setDiscard()
		return nil, err
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})

	l := slog.New(h)

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		global = discard()
		return cerr
	}

	return cleanup, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the active log file, or "" when logs are discarded.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	logFile = nil
	logPath = ""
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
