// Package models defines the request and response bodies of the control API.
package models

// Health check models
type HealthData struct {
	Status  string `json:"status" example:"ok" doc:"Service status"`
	Message string `json:"message" example:"API is healthy" doc:"Status message"`
}

type HealthResponse struct {
	Body HealthData
}

// Version models
type VersionData struct {
	Version   string `json:"version" example:"dev" doc:"Application version"`
	GitCommit string `json:"git_commit" example:"unknown" doc:"Git commit hash"`
	BuildDate string `json:"build_date" example:"unknown" doc:"Build timestamp"`
	GoVersion string `json:"go_version" example:"go1.24.11" doc:"Go toolchain version"`
	Platform  string `json:"platform" example:"linux/amd64" doc:"Build platform"`
}

type VersionResponse struct {
	Body VersionData
}

// RecordingOptionsData carries per-recording ffmpeg options. Pointer fields
// distinguish absent (use the server default) from an explicit zero value
// (suppress the flag).
type RecordingOptionsData struct {
	LogLevel    string  `json:"loglevel,omitempty" example:"error" doc:"ffmpeg -loglevel value"`
	InputFormat *string `json:"input_format,omitempty" example:"x11grab" doc:"ffmpeg input format, empty string omits -f"`
	Resolution  string  `json:"resolution,omitempty" example:"1440x900" doc:"Capture size as WIDTHxHEIGHT"`
	FPS         *int    `json:"fps,omitempty" example:"15" doc:"Frames per second, 0 omits -r"`
	VideoFilter string  `json:"video_filter,omitempty" example:"crop=480:300:960:600" doc:"ffmpeg -vf filter graph"`
	VideoCodec  string  `json:"video_codec,omitempty" example:"libx264" doc:"ffmpeg -vcodec value"`
	PixelFormat *string `json:"pixel_format,omitempty" example:"yuv420p" doc:"ffmpeg -pix_fmt value, empty string omits it"`
	Rotate      int     `json:"rotate,omitempty" example:"90" doc:"Rotation hint in degrees, triggers a metadata fixup pass"`
	Hostname    *string `json:"hostname,omitempty" example:"localhost" doc:"Display server or stream host"`
	Display     *string `json:"display,omitempty" example:"0" doc:"X11 display number for device-grab input"`
	Protocol    *string `json:"protocol,omitempty" example:"http" doc:"Stream URL scheme for non-grab input"`
	Username    string  `json:"username,omitempty" doc:"Stream URL username"`
	Password    string  `json:"password,omitempty" doc:"Stream URL password, only sent when username is set"`
	Port        *int    `json:"port,omitempty" example:"9000" doc:"Stream URL port, 0 omits it"`
	Pathname    string  `json:"pathname,omitempty" example:"/" doc:"Stream URL path"`
	Search      string  `json:"search,omitempty" example:"?type=mp4" doc:"Stream URL query string"`
}

// Recording models
type RecordingRequestData struct {
	OutputPath string               `json:"output_path" example:"/tmp/capture.mp4" doc:"Where ffmpeg writes the recording"`
	Options    RecordingOptionsData `json:"options,omitempty" doc:"Per-recording overrides of the configured defaults"`
}

type RecordingRequest struct {
	Body RecordingRequestData
}

type RecordingData struct {
	ID         string `json:"id" example:"8a7dc4f0-0a0e-4a22-bfcb-56f0f1a6c9a1" doc:"Recording identifier"`
	OutputPath string `json:"output_path" example:"/tmp/capture.mp4" doc:"Recording output file"`
	State      string `json:"state" example:"running" doc:"Lifecycle state"`
	StartedAt  string `json:"started_at" example:"2025-01-02T15:04:05Z" doc:"Start time, RFC 3339 UTC"`
	Error      string `json:"error,omitempty" doc:"Failure detail once the recording has settled"`
}

type RecordingResponse struct {
	Body RecordingData
}

type RecordingListData struct {
	Recordings []RecordingData `json:"recordings" doc:"All registered recordings, settled ones included"`
	Count      int             `json:"count" example:"1" doc:"Number of recordings"`
}

type RecordingListResponse struct {
	Body RecordingListData
}
