package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/smazurov/recordscreen/internal/ffmpeg"
)

// RecordingDefaults is the [recording] table of the defaults file. Pointer
// fields distinguish "absent" from an explicit zero value, mirroring
// ffmpeg.Options: absent fields fall back to the built-in defaults, explicit
// zero values suppress the flag.
type RecordingDefaults struct {
	LogLevel    string  `toml:"loglevel,omitempty"`
	InputFormat *string `toml:"input_format,omitempty"`
	Resolution  string  `toml:"resolution,omitempty"`
	FPS         *int    `toml:"fps,omitempty"`
	VideoFilter string  `toml:"video_filter,omitempty"`
	VideoCodec  string  `toml:"video_codec,omitempty"`
	PixelFormat *string `toml:"pixel_format,omitempty"`
	Rotate      int     `toml:"rotate,omitempty"`
	Hostname    *string `toml:"hostname,omitempty"`
	Display     *string `toml:"display,omitempty"`
	Protocol    *string `toml:"protocol,omitempty"`
	Username    string  `toml:"username,omitempty"`
	Password    string  `toml:"password,omitempty"`
	Port        *int    `toml:"port,omitempty"`
	Pathname    string  `toml:"pathname,omitempty"`
	Search      string  `toml:"search,omitempty"`
}

// Options converts the TOML table to recording options.
func (d RecordingDefaults) Options() ffmpeg.Options {
	return ffmpeg.Options{
		LogLevel:    d.LogLevel,
		InputFormat: d.InputFormat,
		Resolution:  d.Resolution,
		FPS:         d.FPS,
		VideoFilter: d.VideoFilter,
		VideoCodec:  d.VideoCodec,
		PixelFormat: d.PixelFormat,
		Rotate:      d.Rotate,
		Hostname:    d.Hostname,
		Display:     d.Display,
		Protocol:    d.Protocol,
		Username:    d.Username,
		Password:    d.Password,
		Port:        d.Port,
		Pathname:    d.Pathname,
		Search:      d.Search,
	}
}

// defaultsFile is the full layout of the defaults file.
type defaultsFile struct {
	Recording RecordingDefaults `toml:"recording"`
}

// LoadDefaults reads recording defaults from a TOML file. A missing file
// yields empty options so every recording uses the built-in defaults.
func LoadDefaults(path string) (ffmpeg.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ffmpeg.Options{}, nil
		}
		return ffmpeg.Options{}, fmt.Errorf("failed to read defaults file: %w", err)
	}

	var file defaultsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return ffmpeg.Options{}, fmt.Errorf("failed to parse defaults file: %w", err)
	}
	return file.Recording.Options(), nil
}
