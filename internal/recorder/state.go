package recorder

// State represents the lifecycle state of a recording.
type State string

// Recording states.
const (
	StateStarting       State = "starting"        // Process being spawned
	StateRunning        State = "running"         // ffmpeg capturing
	StateFixingRotation State = "fixing_rotation" // Post-pass rewriting the rotate tag
	StateCompleted      State = "completed"       // Exited cleanly
	StateCancelled      State = "cancelled"       // Interrupted via Cancel, completed benignly
	StateFailed         State = "failed"          // Launch, tool, or fixup failure
)
