package ffmpeg

import "testing"

const sampleProbeJSON = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 1440,
      "height": 900,
      "pix_fmt": "yuv420p",
      "duration": "2.133333",
      "tags": {"rotate": "270"}
    },
    {
      "index": 1,
      "codec_name": "aac",
      "codec_type": "audio"
    }
  ],
  "format": {
    "filename": "/tmp/out.mp4",
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "duration": "2.168000",
    "size": "275486"
  }
}`

func TestParseProbeOutput(t *testing.T) {
	result, err := parseProbeOutput([]byte(sampleProbeJSON))
	if err != nil {
		t.Fatalf("parseProbeOutput() error: %v", err)
	}

	video, ok := result.VideoStream()
	if !ok {
		t.Fatal("expected a video stream")
	}
	if video.Width != 1440 || video.Height != 900 {
		t.Errorf("video size = %dx%d, want 1440x900", video.Width, video.Height)
	}
	if got := result.Rotation(); got != 270 {
		t.Errorf("Rotation() = %d, want 270", got)
	}
	if got := result.DurationSeconds(); got < 2.0 {
		t.Errorf("DurationSeconds() = %f, want >= 2.0", got)
	}
}

func TestParseProbeOutputSideDataRotation(t *testing.T) {
	data := `{"streams":[{"index":0,"codec_type":"video",
		"side_data_list":[{"side_data_type":"Display Matrix","rotation":-90}]}],
		"format":{}}`

	result, err := parseProbeOutput([]byte(data))
	if err != nil {
		t.Fatalf("parseProbeOutput() error: %v", err)
	}
	if got := result.Rotation(); got != -90 {
		t.Errorf("Rotation() = %d, want -90", got)
	}
}

func TestParseProbeOutputInvalid(t *testing.T) {
	if _, err := parseProbeOutput([]byte("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestParseProbeOutputNoVideoStream(t *testing.T) {
	result, err := parseProbeOutput([]byte(`{"streams":[{"codec_type":"audio"}],"format":{}}`))
	if err != nil {
		t.Fatalf("parseProbeOutput() error: %v", err)
	}
	if _, ok := result.VideoStream(); ok {
		t.Error("expected no video stream")
	}
	if got := result.Rotation(); got != 0 {
		t.Errorf("Rotation() = %d, want 0", got)
	}
	if got := result.DurationSeconds(); got != 0 {
		t.Errorf("DurationSeconds() = %f, want 0", got)
	}
}
