package guikit

import (
	"log/slog"
	"os"
)

// logLevel controls guikit debug logging. Default is LevelInfo, which
// suppresses everything guikit logs.
var logLevel = new(slog.LevelVar)

// logger is shared by every guikit component.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}
