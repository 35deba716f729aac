package toolchain

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single version probe. A toolchain that takes
// longer than this to print its version is treated as absent.
const DefaultTimeout = 10 * time.Second

// Status is the result of probing one executable.
type Status struct {
	Found   bool
	Version string
}

// Probe runs `<binary> --version` and captures the first line of stdout.
// A missing executable, a nonzero exit, and a timeout all collapse to
// not-found; the caller never needs to distinguish them.
func Probe(ctx context.Context, binary string) Status {
	cmd := exec.CommandContext(ctx, binary, "--version")
	out, err := cmd.Output()
	if err != nil {
		return Status{}
	}
	return Status{Found: true, Version: firstLine(string(out))}
}

// ProbeWithTimeout probes under the default bounded timeout.
func ProbeWithTimeout(binary string) Status {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()
	return Probe(ctx, binary)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
