package utils

import (
	"log/slog"
)

func attrs(e error, args []any) []any {
	return append([]any{"error", e}, args...)
}

// Loge logs a non nil error. args are extra key value pairs.
func Loge(e error, args ...any) {
	if e != nil {
		slog.Error("", attrs(e, args)...)
	}
}

func Logwe(e error, args ...any) {
	if e != nil {
		slog.Warn("", attrs(e, args)...)
	}
}

func Logie(e error, args ...any) {
	if e != nil {
		slog.Info("", attrs(e, args)...)
	}
}

func Logde(e error, args ...any) {
	if e != nil {
		slog.Debug("", attrs(e, args)...)
	}
}
