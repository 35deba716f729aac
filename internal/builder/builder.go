package builder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/wasmhub-labs/wasmhub/internal/platform"
)

// Runner invokes a project's platform build script.
type Runner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Output captures the result of a build script run.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the script exited zero.
func (o *Output) Success() bool { return o.ExitCode == 0 }

// Run executes the platform build script (build.sh or build.bat) found in
// dir, streaming output to the configured writers. A nonzero script exit
// is reported in Output, not as a Go error; errors are reserved for a
// missing script or a failure to start it.
func (r *Runner) Run(ctx context.Context, dir string) (*Output, error) {
	script := platform.BuildScript()
	scriptPath := filepath.Join(dir, script)
	if _, err := os.Stat(scriptPath); err != nil {
		return nil, fmt.Errorf("build script not found at %s: %w", scriptPath, err)
	}

	argv := platform.ScriptArgv(script)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err := cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing build script: %w", err)
	}

	output.ExitCode = 0
	return output, nil
}
