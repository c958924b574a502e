package watermark

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/teleole/channel-manager-bot/internal/modules/channel/domain"
)

func writeStub(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestExecutorSuccess(t *testing.T) {
	e := NewExecutor(writeStub(t, "exit 0"))

	g := CompileText(textRule(), false, "")
	if err := e.ApplyText(context.Background(), "in.jpg", "out.jpg", g, 75, false); err != nil {
		t.Fatalf("ApplyText: %v", err)
	}
}

func TestExecutorExitError(t *testing.T) {
	e := NewExecutor(writeStub(t, "echo 'no such codec' >&2; exit 1"))

	g := CompileText(textRule(), true, "")
	err := e.ApplyText(context.Background(), "in.mp4", "out.mp4", g, 75, true)

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("want ExitError, got %v", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.Code)
	}
	if exitErr.Stderr != "no such codec\n" {
		t.Errorf("stderr = %q", exitErr.Stderr)
	}
}

func TestExecutorMissingBinary(t *testing.T) {
	e := NewExecutor(filepath.Join(t.TempDir(), "ffmpeg"))

	g := CompileText(textRule(), false, "")
	err := e.ApplyText(context.Background(), "in.jpg", "out.jpg", g, 75, false)
	if !errors.Is(err, ErrFFmpegNotFound) {
		t.Fatalf("want ErrFFmpegNotFound, got %v", err)
	}
}

func TestExecutorTimeout(t *testing.T) {
	e := NewExecutor(writeStub(t, "sleep 5"))
	e.timeout = 100 * time.Millisecond

	r := textRule()
	r.Kind = domain.WatermarkKindImage
	g := CompileOverlay(r, true)
	err := e.ApplyOverlay(context.Background(), "in.mp4", "wm.png", "out.mp4", g, 75, true)

	var timeoutErr *TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("want TimeoutError, got %v", err)
	}
}
