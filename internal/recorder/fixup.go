package recorder

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/smazurov/recordscreen/internal/ffmpeg"
)

// applyRotation stream-copies the finished recording into a sibling temp
// file while writing the rotation tag, then replaces the original. Only the
// final rename is atomic; if the copy or the delete fails, the original
// file is left in place. This pass is synchronous and not cancellable.
func (r *Recording) applyRotation() error {
	tmpPath := ffmpeg.TempPath(r.outputPath)
	args := ffmpeg.BuildRotateArgs(r.outputPath, tmpPath, r.opts.Rotate)

	r.logger.Info("Rewriting rotation metadata", "rotate", r.opts.Rotate, "tmp", tmpPath)

	cmd := exec.Command(ffmpegBin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("rotation metadata pass: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	if err := os.Remove(r.outputPath); err != nil {
		return fmt.Errorf("removing original recording: %w", err)
	}
	if err := os.Rename(tmpPath, r.outputPath); err != nil {
		return fmt.Errorf("replacing recording with rotated copy: %w", err)
	}
	return nil
}
