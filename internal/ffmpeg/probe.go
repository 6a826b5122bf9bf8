package ffmpeg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
)

// ProbeStream is one stream entry from ffprobe -show_streams.
type ProbeStream struct {
	Index     int    `json:"index"`
	CodecName string `json:"codec_name"`
	CodecType string `json:"codec_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	PixFmt    string `json:"pix_fmt"`
	Duration  string `json:"duration"`
	Tags      struct {
		Rotate string `json:"rotate"`
	} `json:"tags"`
	SideDataList []struct {
		SideDataType string `json:"side_data_type"`
		Rotation     int    `json:"rotation"`
	} `json:"side_data_list"`
}

// ProbeFormat is the container entry from ffprobe -show_format.
type ProbeFormat struct {
	Filename   string `json:"filename"`
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
}

// ProbeResult holds the parsed ffprobe output for a file.
type ProbeResult struct {
	Streams []ProbeStream `json:"streams"`
	Format  ProbeFormat   `json:"format"`
}

// VideoStream returns the first video stream, if any.
func (r *ProbeResult) VideoStream() (ProbeStream, bool) {
	for _, s := range r.Streams {
		if s.CodecType == "video" {
			return s, true
		}
	}
	return ProbeStream{}, false
}

// DurationSeconds returns the container duration, 0 if unknown.
func (r *ProbeResult) DurationSeconds() float64 {
	d, err := strconv.ParseFloat(r.Format.Duration, 64)
	if err != nil {
		return 0
	}
	return d
}

// Rotation returns the rotation of the first video stream: either the
// legacy rotate tag or the display matrix side data, whichever is present.
func (r *ProbeResult) Rotation() int {
	s, ok := r.VideoStream()
	if !ok {
		return 0
	}
	if s.Tags.Rotate != "" {
		if v, err := strconv.Atoi(s.Tags.Rotate); err == nil {
			return v
		}
	}
	for _, sd := range s.SideDataList {
		if sd.SideDataType == "Display Matrix" {
			return sd.Rotation
		}
	}
	return 0
}

// Probe runs ffprobe over path and parses its JSON output.
func Probe(ctx context.Context, path string) (*ProbeResult, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w: %s", path, err, stderr.String())
	}
	return parseProbeOutput(stdout.Bytes())
}

func parseProbeOutput(data []byte) (*ProbeResult, error) {
	var result ProbeResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing ffprobe output: %w", err)
	}
	return &result, nil
}
