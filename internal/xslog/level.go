package xslog

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const levelEnvKey = "LOG_LEVEL"

var levelNames = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// LevelFromEnv reads LOG_LEVEL; unset or unrecognized values fall back to
// info so a typo never silences the server.
func LevelFromEnv() slog.Level {
	if level, ok := levelNames[strings.ToLower(os.Getenv(levelEnvKey))]; ok {
		return level
	}
	return slog.LevelInfo
}

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func NewLoggerFromEnv(w io.Writer) *slog.Logger {
	return NewLogger(w, LevelFromEnv())
}
