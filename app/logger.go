package app

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/dayclock/internal/pathutil"
)

var logWriter *lumberjack.Logger

// setupLogger replaces the default logger with a JSON logger writing to a
// rotated file in the data directory.
func setupLogger(debug bool) *lumberjack.Logger {
	w := &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	slog.SetDefault(logger)

	return w
}
