package recorder

import (
	"regexp"
	"strings"
)

// Outcome is the verdict on a finished ffmpeg process.
type Outcome int

// Exit outcomes.
const (
	OutcomeSuccess Outcome = iota
	OutcomeCancelled
	OutcomeFailed
)

// sigintExitCode is ffmpeg's exit code when it shuts down cleanly after
// receiving SIGINT ("Exiting normally, received signal 2").
const sigintExitCode = 255

// benignGrabWarning matches the harmless x11grab startup diagnostic about
// the input thread queue. This is a brittle heuristic: it depends on the
// exact wording of a tool-version-dependent message and only fires when the
// warning is the sole stderr content. Kept deliberately narrow.
var benignGrabWarning = regexp.MustCompile(
	`^\[x11grab @ 0x[0-9a-f]+\] Thread message queue blocking; ` +
		`consider raising the thread_queue_size option \(current value: \d+\)$`)

// Classify maps an ffmpeg exit to an outcome. interrupted reports whether
// Cancel was called on the handle before the process exited; a SIGINT exit
// code alone is not enough to count as a cancellation.
func Classify(exitCode int, interrupted bool, stderr string) Outcome {
	if exitCode == 0 {
		return OutcomeSuccess
	}
	if interrupted && exitCode == sigintExitCode {
		return OutcomeCancelled
	}
	if isBenignGrabWarning(stderr) {
		return OutcomeSuccess
	}
	return OutcomeFailed
}

// isBenignGrabWarning reports whether stderr consists of exactly one line,
// and that line is the known-harmless device-grab warning.
func isBenignGrabWarning(stderr string) bool {
	trimmed := strings.TrimRight(stderr, "\n")
	if trimmed == "" || strings.Contains(trimmed, "\n") {
		return false
	}
	return benignGrabWarning.MatchString(trimmed)
}
