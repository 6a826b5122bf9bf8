// Package ffmpeg builds argument lists for the ffmpeg and ffprobe binaries.
//
// Recording argument order is fixed because ffmpeg is positional: everything
// before -i configures the input, everything after it configures the output.
package ffmpeg

import (
	"net/url"
	"strconv"
	"strings"
)

// Built-in defaults applied to unset fields before building.
const (
	DefaultInputFormat = "x11grab"
	DefaultFPS         = 15
	DefaultPixelFormat = "yuv420p" // 4:2:0 for broad player compatibility
	DefaultHostname    = "localhost"
	DefaultDisplay     = "0"
	DefaultProtocol    = "http"
	DefaultPort        = 9000
)

// Options configures a single recording. All fields are optional.
//
// Defaulted fields are pointers: a nil pointer gets the package default,
// while a pointer to the zero value suppresses the flag entirely. Plain
// fields treat the zero value as unset.
type Options struct {
	LogLevel    string  // ffmpeg -loglevel passthrough
	InputFormat *string // input demuxer, default x11grab
	Resolution  string  // WIDTHxHEIGHT, must match the true source size for x11grab
	FPS         *int    // default 15
	VideoFilter string  // raw -vf filter graph expression
	VideoCodec  string  // empty lets ffmpeg pick its default
	PixelFormat *string // default yuv420p
	Rotate      int     // degrees, 0 = none; triggers the metadata fixup pass

	// Device-grab input ("<hostname>:<display>").
	Hostname *string // default localhost
	Display  *string // default "0"

	// Network-stream input URL components. Ignored for x11grab.
	Protocol *string // default http
	Username string
	Password string // included only when Username is set
	Port     *int   // default 9000
	Pathname string // default "/"
	Search   string // query string, leading "?" optional
}

// Merge overlays defaults onto opts: fields set on opts win, unset fields
// take the value from defaults. Both inputs are left untouched.
func Merge(opts, defaults Options) Options {
	out := opts
	if out.LogLevel == "" {
		out.LogLevel = defaults.LogLevel
	}
	if out.InputFormat == nil {
		out.InputFormat = defaults.InputFormat
	}
	if out.Resolution == "" {
		out.Resolution = defaults.Resolution
	}
	if out.FPS == nil {
		out.FPS = defaults.FPS
	}
	if out.VideoFilter == "" {
		out.VideoFilter = defaults.VideoFilter
	}
	if out.VideoCodec == "" {
		out.VideoCodec = defaults.VideoCodec
	}
	if out.PixelFormat == nil {
		out.PixelFormat = defaults.PixelFormat
	}
	if out.Rotate == 0 {
		out.Rotate = defaults.Rotate
	}
	if out.Hostname == nil {
		out.Hostname = defaults.Hostname
	}
	if out.Display == nil {
		out.Display = defaults.Display
	}
	if out.Protocol == nil {
		out.Protocol = defaults.Protocol
	}
	if out.Username == "" {
		out.Username = defaults.Username
	}
	if out.Password == "" {
		out.Password = defaults.Password
	}
	if out.Port == nil {
		out.Port = defaults.Port
	}
	if out.Pathname == "" {
		out.Pathname = defaults.Pathname
	}
	if out.Search == "" {
		out.Search = defaults.Search
	}
	return out
}

// strValue resolves a defaulted string field.
func strValue(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

// intValue resolves a defaulted int field. Non-positive explicit values
// count as suppressed.
func intValue(p *int, def int) int {
	if p == nil {
		return def
	}
	if *p <= 0 {
		return 0
	}
	return *p
}

// BuildArgs builds the full ffmpeg argument list for a recording. It is
// total over any Options value: nothing is validated here, malformed values
// are passed through and rejected by ffmpeg itself at exit time.
func BuildArgs(outputPath string, opts Options) []string {
	args := []string{"-y"}

	if opts.LogLevel != "" {
		args = append(args, "-loglevel", opts.LogLevel)
	}
	if opts.Resolution != "" {
		args = append(args, "-video_size", opts.Resolution)
	}
	if fps := intValue(opts.FPS, DefaultFPS); fps > 0 {
		args = append(args, "-r", strconv.Itoa(fps))
	}
	inputFormat := strValue(opts.InputFormat, DefaultInputFormat)
	if inputFormat != "" {
		args = append(args, "-f", inputFormat)
	}

	args = append(args, "-i", InputSource(opts))

	if opts.VideoFilter != "" {
		args = append(args, "-vf", opts.VideoFilter)
	}
	if opts.VideoCodec != "" {
		args = append(args, "-vcodec", opts.VideoCodec)
	}
	if pixFmt := strValue(opts.PixelFormat, DefaultPixelFormat); pixFmt != "" {
		args = append(args, "-pix_fmt", pixFmt)
	}

	return append(args, outputPath)
}

// InputSource computes the -i value. Device-grab mode addresses a display
// server as "<hostname>:<display>"; every other input format gets a fully
// qualified stream URL.
func InputSource(opts Options) string {
	if strValue(opts.InputFormat, DefaultInputFormat) == DefaultInputFormat {
		return strValue(opts.Hostname, DefaultHostname) + ":" + strValue(opts.Display, DefaultDisplay)
	}
	return streamURL(opts)
}

// streamURL assembles scheme://[user[:pass]@]host[:port][/path][?query]
// via net/url so reserved characters in components are percent-encoded.
func streamURL(opts Options) string {
	u := url.URL{
		Scheme: strValue(opts.Protocol, DefaultProtocol),
		Host:   strValue(opts.Hostname, DefaultHostname),
	}
	if port := intValue(opts.Port, DefaultPort); port > 0 {
		u.Host += ":" + strconv.Itoa(port)
	}
	if opts.Username != "" {
		if opts.Password != "" {
			u.User = url.UserPassword(opts.Username, opts.Password)
		} else {
			u.User = url.User(opts.Username)
		}
	}
	u.Path = opts.Pathname
	if u.Path == "" {
		u.Path = "/"
	}
	u.RawQuery = strings.TrimPrefix(opts.Search, "?")
	return u.String()
}
