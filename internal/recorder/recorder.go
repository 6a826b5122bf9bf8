// Package recorder launches and supervises ffmpeg screen/stream recordings.
//
// Each Start call owns at most one live ffmpeg process. The handle exposes
// an event-driven completion (Wait) and a fire-and-forget Cancel that sends
// SIGINT. The process reference is cleared the moment the process exits, so
// Cancel is always safe, including after completion.
package recorder

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/smazurov/recordscreen/internal/ffmpeg"
)

// ffmpegBin is the binary invoked for both the recording and the rotation
// pass. Overridden in tests.
var ffmpegBin = "ffmpeg"

// Result carries the captured output of the primary ffmpeg invocation.
type Result struct {
	Stdout string
	Stderr string
}

// ExitError is returned from Wait when ffmpeg exits with a status that is
// neither success nor a benign cancellation.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("ffmpeg exited with code %d: %s", e.Code, strings.TrimSpace(e.Stderr))
}

// Recording is the handle for one in-flight recording.
type Recording struct {
	outputPath string
	opts       ffmpeg.Options
	logger     *slog.Logger

	mu          sync.Mutex
	cmd         *exec.Cmd // nil before start failure and after exit
	interrupted bool
	state       State

	done   chan struct{}
	result Result
	err    error
}

// Start spawns ffmpeg with the argument list built from opts. It always
// returns a handle: a spawn failure (missing binary, unexecutable path) is
// carried into the handle and surfaces from Wait, not from Start.
func Start(outputPath string, opts ffmpeg.Options, logger *slog.Logger) *Recording {
	r := &Recording{
		outputPath: outputPath,
		opts:       opts,
		logger:     logger,
		state:      StateStarting,
		done:       make(chan struct{}),
	}

	args := ffmpeg.BuildArgs(outputPath, opts)
	cmd := exec.Command(ffmpegBin, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		r.finish(Result{}, fmt.Errorf("creating stdout pipe: %w", err), StateFailed)
		return r
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		r.finish(Result{}, fmt.Errorf("creating stderr pipe: %w", err), StateFailed)
		return r
	}

	if err := cmd.Start(); err != nil {
		r.finish(Result{}, fmt.Errorf("starting %s: %w", ffmpegBin, err), StateFailed)
		return r
	}

	r.logger.Info("Recording started", "pid", cmd.Process.Pid, "output", outputPath)

	r.mu.Lock()
	r.cmd = cmd
	r.state = StateRunning
	r.mu.Unlock()

	go r.supervise(cmd, stdout, stderr)
	return r
}

// OutputPath returns the recording's target file.
func (r *Recording) OutputPath() string {
	return r.outputPath
}

// State returns the current lifecycle state.
func (r *Recording) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Done returns a channel closed when the recording has settled.
func (r *Recording) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the recording settles or ctx is done. A cancelled
// recording resolves normally; tool failures, launch failures, and rotation
// fixup failures are returned as errors.
func (r *Recording) Wait(ctx context.Context) (Result, error) {
	select {
	case <-r.done:
		return r.result, r.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Cancel sends SIGINT to the ffmpeg process if it is still running. Calling
// it before start, after exit, or repeatedly is a safe no-op. Cancel does
// not wait for the process to exit.
func (r *Recording) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cmd == nil || r.cmd.Process == nil {
		return
	}
	r.interrupted = true
	r.logger.Info("Sending SIGINT to recording", "pid", r.cmd.Process.Pid)
	if err := r.cmd.Process.Signal(os.Interrupt); err != nil && !errors.Is(err, os.ErrProcessDone) {
		r.logger.Warn("Failed to send SIGINT", "error", err)
	}
}

// supervise waits for the primary process, classifies its exit, and runs
// the rotation fixup when requested. Runs in its own goroutine; it is the
// only writer of result and err.
func (r *Recording) supervise(cmd *exec.Cmd, stdout, stderr io.Reader) {
	var outBuf, errBuf strings.Builder
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		r.collect(stdout, &outBuf)
	}()
	go func() {
		defer wg.Done()
		r.collect(stderr, &errBuf)
	}()
	wg.Wait()

	waitErr := cmd.Wait()

	// Clear the process reference first so a late Cancel is a no-op.
	r.mu.Lock()
	r.cmd = nil
	interrupted := r.interrupted
	r.mu.Unlock()

	result := Result{Stdout: outBuf.String(), Stderr: errBuf.String()}

	code, err := exitCode(waitErr)
	if err != nil {
		r.finish(result, err, StateFailed)
		return
	}

	switch Classify(code, interrupted, result.Stderr) {
	case OutcomeFailed:
		r.finish(result, &ExitError{Code: code, Stderr: result.Stderr}, StateFailed)
		return
	case OutcomeCancelled:
		r.logger.Info("Recording interrupted", "exit_code", code)
		r.settle(result, StateCancelled)
	case OutcomeSuccess:
		r.logger.Info("Recording finished", "exit_code", code)
		r.settle(result, StateCompleted)
	}
}

// settle completes a benign exit, running the rotation fixup first when one
// was requested. A fixup failure replaces the otherwise-successful result.
func (r *Recording) settle(result Result, state State) {
	if r.opts.Rotate != 0 {
		r.setState(StateFixingRotation)
		if err := r.applyRotation(); err != nil {
			r.finish(result, err, StateFailed)
			return
		}
	}
	r.finish(result, nil, state)
}

// collect appends each output line to buf and mirrors it into the logger at
// the level ffmpeg reported for it.
func (r *Recording) collect(reader io.Reader, buf *strings.Builder) {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		buf.WriteString(line)
		buf.WriteByte('\n')

		level, msg := ffmpeg.ParseLevel(line)
		r.logger.Log(context.Background(), level, msg)
	}
	if err := scanner.Err(); err != nil {
		r.logger.Warn("Error reading process output", "error", err)
	}
}

// finish records the terminal result and releases waiters. Called exactly
// once per handle.
func (r *Recording) finish(result Result, err error, state State) {
	r.mu.Lock()
	r.result = result
	r.err = err
	r.state = state
	r.mu.Unlock()
	close(r.done)
}

func (r *Recording) setState(state State) {
	r.mu.Lock()
	r.state = state
	r.mu.Unlock()
}

// exitCode extracts the exit code from cmd.Wait's error. Errors other than
// a process exit status (I/O failures and the like) are passed through.
func exitCode(waitErr error) (int, error) {
	if waitErr == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("waiting for %s: %w", ffmpegBin, waitErr)
}
