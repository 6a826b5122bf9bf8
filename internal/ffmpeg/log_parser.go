package ffmpeg

import (
	"log/slog"
	"strings"
)

// ParseLevel extracts the log level from an ffmpeg output line. With
// "-loglevel level+..." ffmpeg prefixes lines with "[info] message" or
// "[component @ 0x...] [level] message". The component prefix is preserved
// in the returned message, the level bracket is stripped.
func ParseLevel(line string) (slog.Level, string) {
	if len(line) < 3 || line[0] != '[' {
		return slog.LevelInfo, line
	}

	end := strings.Index(line, "] ")
	if end == -1 {
		return slog.LevelInfo, line
	}

	if lvl, ok := logLevel(line[1:end]); ok {
		return lvl, line[end+2:]
	}

	// [component @ 0x...] [level] message
	component := line[:end+2]
	rest := line[end+2:]
	if len(rest) > 2 && rest[0] == '[' {
		if nextEnd := strings.Index(rest, "] "); nextEnd != -1 {
			if lvl, ok := logLevel(rest[1:nextEnd]); ok {
				return lvl, component + rest[nextEnd+2:]
			}
		}
	}

	return slog.LevelInfo, line
}

func logLevel(s string) (slog.Level, bool) {
	switch s {
	case "panic", "fatal", "error":
		return slog.LevelError, true
	case "warning":
		return slog.LevelWarn, true
	case "verbose", "debug", "trace":
		return slog.LevelDebug, true
	case "quiet", "info":
		return slog.LevelInfo, true
	}
	return slog.LevelInfo, false
}
