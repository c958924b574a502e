package watermark

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strconv"
	"time"

	"github.com/samber/oops"
)

// DefaultTimeout bounds a single FFmpeg run.
const DefaultTimeout = 300 * time.Second

// ErrFFmpegNotFound is returned when the configured executable is not
// installed or not on PATH.
var ErrFFmpegNotFound = errors.New("ffmpeg executable not found, ensure FFmpeg is installed and on PATH")

// TimeoutError reports a run that exceeded the executor timeout.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("ffmpeg timed out after %s", e.Timeout)
}

// ExitError reports a run that finished with a non-zero exit code. The
// captured stderr is kept for operator-facing failure notices.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("ffmpeg failed with exit code %d: %s", e.Code, e.Stderr)
}

// Executor runs FFmpeg transform jobs with a bounded runtime.
type Executor struct {
	path    string
	timeout time.Duration
}

// NewExecutor creates an executor for the given ffmpeg path.
func NewExecutor(path string) *Executor {
	if path == "" {
		path = "ffmpeg"
	}
	return &Executor{path: path, timeout: DefaultTimeout}
}

// ApplyText runs a drawtext graph over input and writes output.
// Audio is stream-copied for video, never re-encoded.
func (e *Executor) ApplyText(ctx context.Context, input, output string, g *Graph, quality int, isVideo bool) error {
	args := []string{"-i", input, "-y", "-vf", g.String()}
	if isVideo {
		args = append(args,
			"-preset", "medium",
			"-crf", strconv.Itoa(VideoCRF(quality)),
			"-c:a", "copy",
		)
	} else {
		args = append(args, "-q:v", strconv.Itoa(ImageQScale(quality)))
	}
	args = append(args, output)

	return e.run(ctx, args)
}

// ApplyOverlay runs an overlay graph compositing watermarkPath over
// input. For video the watermark input loops until the main stream
// ends; for images a single composited frame is emitted.
func (e *Executor) ApplyOverlay(ctx context.Context, input, watermarkPath, output string, g *Graph, quality int, isVideo bool) error {
	var args []string
	if isVideo {
		args = []string{
			"-i", input,
			"-stream_loop", "-1",
			"-i", watermarkPath,
			"-y",
			"-filter_complex", g.String(),
			"-preset", "medium",
			"-crf", strconv.Itoa(OverlayVideoCRF(quality)),
			"-c:a", "copy",
			"-shortest",
			output,
		}
	} else {
		args = []string{
			"-i", input,
			"-i", watermarkPath,
			"-y",
			"-filter_complex", g.String(),
			"-frames:v", "1",
			"-q:v", strconv.Itoa(OverlayImageQScale(quality)),
			output,
		}
	}

	return e.run(ctx, args)
}

func (e *Executor) run(ctx context.Context, args []string) error {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.path, args...)
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{Timeout: e.timeout}
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return ErrFFmpegNotFound
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitErr.ExitCode(), Stderr: stderr.String()}
	}

	return oops.With("args", args, "context", "ffmpeg invocation failed").Wrap(err)
}
