package events

// Event type constants for kelindar/event.
const (
	TypeRecordingStarted uint32 = iota + 1
	TypeRecordingFinished
	TypeDefaultsReloaded
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// RecordingStartedEvent is published when an ffmpeg process has been spawned.
type RecordingStartedEvent struct {
	ID         string `json:"id" doc:"Recording identifier"`
	OutputPath string `json:"output_path" example:"/tmp/out.mp4" doc:"Recording target file"`
	Timestamp  string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Start timestamp"`
}

// Type returns the event type identifier for RecordingStartedEvent.
func (e RecordingStartedEvent) Type() uint32 { return TypeRecordingStarted }

// RecordingFinishedEvent is published when a recording settles, whatever the
// outcome. State is the terminal recorder state; Error is empty unless the
// recording failed.
type RecordingFinishedEvent struct {
	ID         string `json:"id" doc:"Recording identifier"`
	OutputPath string `json:"output_path" example:"/tmp/out.mp4" doc:"Recording target file"`
	State      string `json:"state" example:"completed" doc:"Terminal state: completed, cancelled, or failed"`
	Error      string `json:"error,omitempty" doc:"Failure detail, empty on benign completion"`
	Timestamp  string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Completion timestamp"`
}

// Type returns the event type identifier for RecordingFinishedEvent.
func (e RecordingFinishedEvent) Type() uint32 { return TypeRecordingFinished }

// DefaultsReloadedEvent is published when the recording defaults file
// changes on disk and has been reloaded.
type DefaultsReloadedEvent struct {
	Path      string `json:"path" doc:"Defaults file path"`
	Timestamp string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Reload timestamp"`
}

// Type returns the event type identifier for DefaultsReloadedEvent.
func (e DefaultsReloadedEvent) Type() uint32 { return TypeDefaultsReloaded }
