package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps the configured level name to a slog level. Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New - builds a JSON logger. Stdout belongs to the game, so records go to file or nowhere when file is empty.
// The returned func closes the file and is safe to call when no file was opened.
func New(level, file string) (*slog.Logger, func(), error) {
	var sink io.Writer = io.Discard
	closeLog := func() {}

	if file != "" {
		opened, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}

		sink = opened
		closeLog = func() {
			_ = opened.Close()
		}
	}

	return slog.New(slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: ParseLevel(level)})), closeLog, nil
}
