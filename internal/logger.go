package internal

import (
	"context"
	"log/slog"

	"github.com/mama165/sdk-go/logs"
	multi "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger returns the stdout logger for level. When file is set, records
// are also written as JSON to a rotating file.
func NewLogger(level, file string) *slog.Logger {
	log := logs.GetLoggerFromString(level)
	if file == "" {
		return log
	}

	logFile := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    64,
		MaxBackups: 8,
		MaxAge:     30,
		Compress:   true,
	}
	opts := &slog.HandlerOptions{Level: levelOf(log)}
	return slog.New(
		multi.Fanout(
			log.Handler(),
			slog.NewJSONHandler(logFile, opts),
		),
	)
}

// levelOf finds the lowest level the handler accepts.
func levelOf(log *slog.Logger) slog.Level {
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if log.Enabled(context.Background(), level) {
			return level
		}
	}
	return slog.LevelError
}
