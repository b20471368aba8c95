package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	LogFileName string
	LogLevel    string
	// Extra receives records at ExtraLevel and above, e.g. stderr for
	// one-shot commands. The TUI leaves it nil since it owns the terminal.
	Extra      io.Writer
	ExtraLevel string
}

// Setup builds a text logger writing to a rotating file. An empty file
// name discards everything unless Extra is set. The returned closer
// flushes and closes the log file.
func Setup(params SetupParams) (*slog.Logger, io.Closer, error) {
	var handlers []slog.Handler
	var closer io.Closer = nopCloser{}

	if params.LogFileName != "" {
		if err := os.MkdirAll(filepath.Dir(params.LogFileName), 0o755); err != nil {
			return nil, nil, err
		}
		rotating := &lumberjack.Logger{
			Filename:   params.LogFileName,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			LocalTime:  true,
			Compress:   true,
		}
		handlers = append(handlers, newTextHandler(rotating, params.LogLevel))
		closer = rotating
	}
	if params.Extra != nil {
		handlers = append(handlers, newTextHandler(params.Extra, params.ExtraLevel))
	}

	switch len(handlers) {
	case 0:
		return slog.New(newTextHandler(io.Discard, params.LogLevel)), closer, nil
	case 1:
		return slog.New(handlers[0]), closer, nil
	default:
		return slog.New(NewMultiHandler(handlers...)), closer, nil
	}
}

func newTextHandler(w io.Writer, level string) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: GetLevel(level)})
}

// GetLevel maps a config string to a slog level. Unknown values mean info.
func GetLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "trace":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "fatal":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
