package builder

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/wasmhub-labs/wasmhub/internal/platform"
)

// writeScript drops a build script into dir.
func writeScript(t *testing.T, dir, body string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test scripts use /bin/sh")
	}
	path := filepath.Join(dir, platform.UnixBuildScript)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatal(err)
	}
}

func TestRunSuccess(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "echo building\n")

	var stdout, stderr bytes.Buffer
	runner := &Runner{Stdout: &stdout, Stderr: &stderr}

	result, err := runner.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !result.Success() {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
	if !strings.Contains(result.Stdout, "building") {
		t.Errorf("captured stdout = %q", result.Stdout)
	}
	if !strings.Contains(stdout.String(), "building") {
		t.Error("output was not streamed to the configured writer")
	}
}

func TestRunFailure(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "echo broken >&2\nexit 3\n")

	runner := &Runner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	result, err := runner.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("nonzero exit should not be a Go error, got: %v", err)
	}
	if result.Success() {
		t.Error("Success() = true for a failing script")
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
	if !strings.Contains(result.Stderr, "broken") {
		t.Errorf("captured stderr = %q", result.Stderr)
	}
}

func TestRunMissingScript(t *testing.T) {
	runner := &Runner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	if _, err := runner.Run(context.Background(), t.TempDir()); err == nil {
		t.Error("expected error when the build script is missing")
	}
}
