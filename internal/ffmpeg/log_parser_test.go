package ffmpeg

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantLevel slog.Level
		wantMsg   string
	}{
		{
			name:      "plain line",
			line:      "frame=  100 fps= 15",
			wantLevel: slog.LevelInfo,
			wantMsg:   "frame=  100 fps= 15",
		},
		{
			name:      "level prefix",
			line:      "[error] something broke",
			wantLevel: slog.LevelError,
			wantMsg:   "something broke",
		},
		{
			name:      "warning prefix",
			line:      "[warning] deprecated option",
			wantLevel: slog.LevelWarn,
			wantMsg:   "deprecated option",
		},
		{
			name:      "component then level",
			line:      "[x11grab @ 0x5614] [warning] Thread message queue blocking",
			wantLevel: slog.LevelWarn,
			wantMsg:   "[x11grab @ 0x5614] Thread message queue blocking",
		},
		{
			name:      "component without level",
			line:      "[mp4 @ 0x5614] muxing overhead 1%",
			wantLevel: slog.LevelInfo,
			wantMsg:   "[mp4 @ 0x5614] muxing overhead 1%",
		},
		{
			name:      "debug prefix",
			line:      "[debug] detail",
			wantLevel: slog.LevelDebug,
			wantMsg:   "detail",
		},
		{
			name:      "unterminated bracket",
			line:      "[oops",
			wantLevel: slog.LevelInfo,
			wantMsg:   "[oops",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, msg := ParseLevel(tt.line)
			if level != tt.wantLevel || msg != tt.wantMsg {
				t.Errorf("ParseLevel(%q) = (%v, %q), want (%v, %q)",
					tt.line, level, msg, tt.wantLevel, tt.wantMsg)
			}
		})
	}
}
