package ffmpeg

import (
	"reflect"
	"testing"
)

func TestBuildRotateArgs(t *testing.T) {
	got := BuildRotateArgs("/tmp/out.mp4", "/tmp/out.tmp.mp4", 90)
	want := []string{
		"-y",
		"-loglevel", "error",
		"-i", "/tmp/out.mp4",
		"-codec", "copy",
		"-map_metadata", "0",
		"-metadata:s:v", "rotate=270",
		"/tmp/out.tmp.mp4",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildRotateArgs() = %v, want %v", got, want)
	}
}

func TestTempPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/tmp/out.mp4", "/tmp/out.tmp.mp4"},
		{"out.mkv", "out.tmp.mkv"},
		{"/videos/a.b/clip.mov", "/videos/a.b/clip.tmp.mov"},
		{"/tmp/noext", "/tmp/noext.tmp"},
		{"noext", "noext.tmp"},
	}

	for _, tt := range tests {
		if got := TempPath(tt.path); got != tt.want {
			t.Errorf("TempPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
