package settings

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logLevel = new(slog.LevelVar)
	logFile  *lumberjack.Logger
)

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelError
}

func (s *SoarSettings) setLogLevel() {
	logLevel.Set(ParseLogLevel(s.LogLevel))

	if s.LogFile == "" {
		if logFile != nil {
			logFile.Close()
			logFile = nil
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
		return
	}
	if logFile != nil && logFile.Filename == s.LogFile {
		return
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = &lumberjack.Logger{
		Filename:   s.LogFile,
		MaxSize:    16, // MB
		MaxBackups: 3,
		MaxAge:     14,
		Compress:   true,
	}
	w := io.MultiWriter(os.Stderr, logFile)
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel})))
}

// LogLevel is the level currently applied to the default logger.
func LogLevel() slog.Level {
	return logLevel.Level()
}
