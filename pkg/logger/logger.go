package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// L returns the initialized logger, or the process default when Init was
// never called (tests).
func L() *slog.Logger {
	if Log == nil {
		return slog.Default()
	}
	return Log
}

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
